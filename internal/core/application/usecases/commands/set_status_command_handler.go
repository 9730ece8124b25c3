package commands

import (
	"context"

	"paquexpress/internal/core/domain/model/parcel"
)

// SetStatusCommandHandler handles generic status changes.
// The aggregate enforces the transition table; the handler pairs the row
// update with its ledger entry in one transaction and passes the status read
// at the start so concurrent writers conflict instead of racing.
type SetStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewSetStatusCommandHandler creates a handler for status changes.
func NewSetStatusCommandHandler(uowFactory ParcelUoWFactory) SetStatusCommandHandler {
	return SetStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
func (h SetStatusCommandHandler) Handle(ctx context.Context, cmd SetStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	target, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	previous := target.Status()
	if err = target.ChangeStatus(cmd.Target()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, target, previous); err != nil {
		return err
	}

	entry, err := parcel.NewHistoryEntry(target.ID(), &previous, cmd.Target(), cmd.Observations())
	if err != nil {
		return err
	}
	if err = uow.HistoryRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
