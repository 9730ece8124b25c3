package commands

import (
	"errors"
	"fmt"

	"paquexpress/internal/pkg/errs"
	"paquexpress/internal/pkg/guard"
)

var ErrAssignAgentCommandIsNotConstructed = errors.New(
	"AssignAgentCommand must be created via NewAssignAgentCommand constructor",
)

// AssignAgentCommand represents a request to assign (or re-assign) a parcel
// to a specific agent.
type AssignAgentCommand struct { //nolint:recvcheck //using for validation
	parcelID int64
	agentID  int64

	guard guard.ConstructorGuard
}

// NewAssignAgentCommand creates a command to assign a parcel to an agent.
func NewAssignAgentCommand(parcelID, agentID int64) (AssignAgentCommand, error) {
	cmd := AssignAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setAgentID(agentID),
	); err != nil {
		return AssignAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignAgentCommandIsNotConstructed)
}

// ParcelID returns the parcel to assign.
func (c AssignAgentCommand) ParcelID() int64 { return c.parcelID }

// AgentID returns the agent receiving the assignment.
func (c AssignAgentCommand) AgentID() int64 { return c.agentID }

func (c *AssignAgentCommand) setParcelID(parcelID int64) error {
	if parcelID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("parcelID",
			fmt.Errorf("%d is not a valid identifier", parcelID))
	}

	c.parcelID = parcelID
	return nil
}

func (c *AssignAgentCommand) setAgentID(agentID int64) error {
	if agentID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("agentID",
			fmt.Errorf("%d is not a valid identifier", agentID))
	}

	c.agentID = agentID
	return nil
}
