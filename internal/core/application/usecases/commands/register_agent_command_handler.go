package commands

import (
	"context"

	"paquexpress/internal/core/domain/model/agent"
)

// RegisterAgentCommandHandler handles the business logic for agent registration.
// Hashes the raw password, creates the aggregate and persists it; employee code
// and email uniqueness is enforced by storage and surfaces as
// errs.ErrValueAlreadyExists.
type RegisterAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewRegisterAgentCommandHandler creates a handler for agent registration.
func NewRegisterAgentCommandHandler(uowFactory AgentUoWFactory) RegisterAgentCommandHandler {
	return RegisterAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the identifier of the
// newly registered agent.
func (h RegisterAgentCommandHandler) Handle(ctx context.Context, cmd RegisterAgentCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	passwordHash, err := agent.HashPassword(cmd.RawPassword())
	if err != nil {
		return 0, err
	}

	newAgent, err := agent.NewAgent(
		cmd.EmployeeCode(), cmd.Name(), cmd.Email(), passwordHash, cmd.Phone(), cmd.Vehicle())
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

	if err = uow.AgentRepository().Add(ctx, newAgent); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newAgent.ID(), nil
}
