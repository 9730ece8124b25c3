package commands

import (
	"errors"

	"paquexpress/internal/pkg/guard"
)

var ErrDispatchPendingCommandIsNotConstructed = errors.New(
	"DispatchPendingCommand must be created via NewDispatchPendingCommand constructor",
)

// DispatchPendingCommand triggers the automatic assignment of the oldest
// pending parcel to the least loaded active agent.
//
// Example:
//
//	cmd := NewDispatchPendingCommand()
//	handler := NewDispatchPendingCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Nothing to dispatch or no available agents: %v", err)
//	}
type DispatchPendingCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchPendingCommand creates a new command to trigger automatic dispatch.
// This is a parameterless command.
func NewDispatchPendingCommand() DispatchPendingCommand {
	return DispatchPendingCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *DispatchPendingCommand) Validate() error {
	return c.guard.Validate(
		ErrDispatchPendingCommandIsNotConstructed,
	)
}
