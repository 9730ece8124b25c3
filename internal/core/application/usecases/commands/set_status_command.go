package commands

import (
	"errors"
	"fmt"

	"paquexpress/internal/core/domain/model/parcel"
	"paquexpress/internal/pkg/errs"
	"paquexpress/internal/pkg/guard"
)

var ErrSetStatusCommandIsNotConstructed = errors.New(
	"SetStatusCommand must be created via NewSetStatusCommand constructor",
)

// SetStatusCommand represents a generic administrative status change, such as
// marking a parcel en_route or cancelling it.
type SetStatusCommand struct { //nolint:recvcheck //using for validation
	parcelID     int64
	target       parcel.Status
	observations *string

	guard guard.ConstructorGuard
}

// NewSetStatusCommand creates a command to move a parcel to the target status.
// The target must be a valid status; whether the transition is legal is
// decided by the aggregate against its current state.
func NewSetStatusCommand(parcelID int64, target parcel.Status, observations *string) (SetStatusCommand, error) {
	cmd := SetStatusCommand{
		observations: observations,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setTarget(target),
	); err != nil {
		return SetStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetStatusCommandIsNotConstructed)
}

// ParcelID returns the parcel to update.
func (c SetStatusCommand) ParcelID() int64 { return c.parcelID }

// Target returns the requested status.
func (c SetStatusCommand) Target() parcel.Status { return c.target }

// Observations returns the optional free text recorded in the ledger.
func (c SetStatusCommand) Observations() *string { return c.observations }

func (c *SetStatusCommand) setParcelID(parcelID int64) error {
	if parcelID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("parcelID",
			fmt.Errorf("%d is not a valid identifier", parcelID))
	}

	c.parcelID = parcelID
	return nil
}

func (c *SetStatusCommand) setTarget(target parcel.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
