package commands

import (
	"context"

	"paquexpress/internal/core/domain/model/parcel"
)

// ConfirmDeliveryCommandHandler handles delivery confirmation.
// Moves the parcel to its terminal delivered state, records the delivery
// details and appends the matching ledger entry in the same transaction.
type ConfirmDeliveryCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation.
func NewConfirmDeliveryCommandHandler(uowFactory ParcelUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery confirmation. Only parcels in assigned or
// en_route accept delivery; anything else surfaces as
// parcel.ErrInvalidTransition and nothing is written.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
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
	if err = target.Deliver(cmd.Point(), cmd.EvidencePhoto(), cmd.Observations()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, target, previous); err != nil {
		return err
	}

	entry, err := parcel.NewHistoryEntry(target.ID(), &previous, parcel.Delivered, cmd.Observations())
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
