package commands

import (
	"context"

	"paquexpress/internal/core/domain/model/parcel"
)

// AssignAgentCommandHandler handles manual parcel assignment.
// The parcel update and its ledger entry commit in one transaction; the update
// carries the status observed at read time, so a concurrent transition
// surfaces as errs.ErrConcurrencyConflict instead of silently overwriting it.
type AssignAgentCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignAgentCommandHandler creates a handler for manual assignment.
func NewAssignAgentCommandHandler(uowFactory UoWFactory) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command. The agent must exist but does not
// have to be active: an administrator may pre-assign work to an agent pending
// activation. Only login checks the active flag.
func (h AssignAgentCommandHandler) Handle(ctx context.Context, cmd AssignAgentCommand) error {
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

	assignee, err := uow.AgentRepository().Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	parcelRepo := uow.ParcelRepository()
	target, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	previous := target.Status()
	if err = target.Assign(assignee.ID()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, target, previous); err != nil {
		return err
	}

	entry, err := parcel.NewHistoryEntry(target.ID(), &previous, parcel.Assigned, nil)
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
