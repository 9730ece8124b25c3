package commands

import (
	"context"

	"paquexpress/internal/core/domain/model/parcel"
)

// CreateParcelCommandHandler handles the business logic for parcel registration.
// The parcel row and its single creation ledger entry commit in one
// transaction; when an agent was named the entry records the assigned status
// directly, as the parcel never held pending.
type CreateParcelCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel registration.
func NewCreateParcelCommandHandler(uowFactory UoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel creation command and returns the identifier of
// the newly registered parcel. Tracking code uniqueness is enforced by storage
// and surfaces as errs.ErrValueAlreadyExists.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	newParcel, err := parcel.NewParcel(
		cmd.TrackingCode(), cmd.DestinationAddress(), cmd.Recipient(),
		cmd.RecipientPhone(), cmd.Instructions(), cmd.WeightKg())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// existence is the only requirement on the assignee: pre-assigning to an
	// inactive agent is allowed, unlike login
	if cmd.AgentID() != nil {
		assignee, err := uow.AgentRepository().Get(ctx, *cmd.AgentID())
		if err != nil {
			return 0, err
		}

		if err = newParcel.Assign(assignee.ID()); err != nil {
			return 0, err
		}
	}

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return 0, err
	}

	creationEntry, err := parcel.NewHistoryEntry(newParcel.ID(), nil, newParcel.Status(), nil)
	if err != nil {
		return 0, err
	}
	if err = uow.HistoryRepository().Add(ctx, creationEntry); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newParcel.ID(), nil
}
