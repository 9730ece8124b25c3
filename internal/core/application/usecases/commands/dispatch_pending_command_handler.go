package commands

import (
	"context"
	"errors"

	"paquexpress/internal/core/domain/model/parcel"
	"paquexpress/internal/core/domain/services"
)

var (
	ErrNoPendingParcels = errors.New("no pending parcels found")
	ErrNoActiveAgents   = errors.New("no active agents found")
)

// autoDispatchNote is recorded in the ledger for automatic assignments so they
// can be told apart from manual ones.
var autoDispatchNote = "automatic assignment"

// DispatchPendingCommandHandler orchestrates automatic parcel assignment.
// Takes the oldest pending parcel and hands it to the least loaded active
// agent via the ParcelDispatcher domain service. The parcel update and ledger
// entry commit in one transaction.
//
// Example:
//
//	handler := NewDispatchPendingCommandHandler(uowFactory)
//	cmd := NewDispatchPendingCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoPendingParcels):
//	    log.Println("Nothing to dispatch")
//	case errors.Is(err, ErrNoActiveAgents):
//	    log.Println("No agents available")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	default:
//	    log.Println("Parcel dispatched")
//	}
type DispatchPendingCommandHandler struct {
	uowFactory UoWFactory
}

// NewDispatchPendingCommandHandler creates a handler for automatic dispatch.
func NewDispatchPendingCommandHandler(uowFactory UoWFactory) DispatchPendingCommandHandler {
	return DispatchPendingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispatch command.
// Returns ErrNoPendingParcels when the queue is empty and ErrNoActiveAgents
// when nobody can take the parcel.
func (h DispatchPendingCommandHandler) Handle(ctx context.Context, cmd DispatchPendingCommand) error {
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

	pending, err := parcelRepo.GetAllInPendingStatus(ctx)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return ErrNoPendingParcels
	}
	target := pending[0]

	agents, err := uow.AgentRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}
	if len(agents) == 0 {
		return ErrNoActiveAgents
	}

	activeLoad, err := parcelRepo.CountActiveByAgent(ctx)
	if err != nil {
		return err
	}

	previous := target.Status()
	if _, err = services.NewParcelDispatcher().Dispatch(target, agents, activeLoad); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, target, previous); err != nil {
		return err
	}

	entry, err := parcel.NewHistoryEntry(target.ID(), &previous, parcel.Assigned, &autoDispatchNote)
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
