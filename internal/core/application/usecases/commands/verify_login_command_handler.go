package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"paquexpress/internal/core/domain/model/agent"
	"paquexpress/internal/core/ports"
	"paquexpress/internal/pkg/errs"
)

// LoginResult carries the outcome of a successful credential verification.
type LoginResult struct {
	AgentID int64
	Token   string
}

// VerifyLoginCommandHandler checks agent credentials and issues a session token.
//
// An unknown email and a wrong password both surface as
// agent.ErrInvalidCredentials so a caller cannot probe which emails are
// registered. A correct password on a deactivated agent surfaces as
// agent.ErrAgentInactive.
type VerifyLoginCommandHandler struct {
	uowFactory AgentUoWFactory
	sessions   ports.SessionStore
}

// NewVerifyLoginCommandHandler creates a handler for login verification.
func NewVerifyLoginCommandHandler(
	uowFactory AgentUoWFactory,
	sessions ports.SessionStore,
) VerifyLoginCommandHandler {
	return VerifyLoginCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
	}
}

// Handle verifies the credentials, stores a fresh session token and returns it
// along with the agent's identifier.
func (h VerifyLoginCommandHandler) Handle(ctx context.Context, cmd VerifyLoginCommand) (LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoginResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loginAgent, err := uow.AgentRepository().GetByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LoginResult{}, agent.ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, err
	}

	if err = loginAgent.VerifyPassword(cmd.RawPassword()); err != nil {
		return LoginResult{}, err
	}

	token := fmt.Sprintf("%d.%d.%s", loginAgent.ID(), time.Now().UTC().Unix(), uuid.NewString())
	if err = h.sessions.Put(ctx, token, loginAgent.ID()); err != nil {
		return LoginResult{}, err
	}

	return LoginResult{AgentID: loginAgent.ID(), Token: token}, nil
}
