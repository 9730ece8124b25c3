package commands

import (
	"errors"
	"fmt"

	"paquexpress/internal/pkg/errs"
	"paquexpress/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand represents a request to register a new parcel.
// An optional agent identifier requests immediate assignment, in which case
// the parcel is created already assigned and the ledger records both the
// creation and the assignment.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	trackingCode       string
	destinationAddress string
	recipient          string
	recipientPhone     *string
	instructions       *string
	weightKg           *float64
	agentID            *int64

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// Required fields must be present; full field validation happens in the
// aggregate constructor.
func NewCreateParcelCommand(
	trackingCode, destinationAddress, recipient string,
	recipientPhone, instructions *string,
	weightKg *float64,
	agentID *int64,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		recipientPhone: recipientPhone,
		instructions:   instructions,
		weightKg:       weightKg,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingCode(trackingCode),
		cmd.setDestinationAddress(destinationAddress),
		cmd.setRecipient(recipient),
		cmd.setAgentID(agentID),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// TrackingCode returns the unique shipment code.
func (c CreateParcelCommand) TrackingCode() string { return c.trackingCode }

// DestinationAddress returns the delivery destination.
func (c CreateParcelCommand) DestinationAddress() string { return c.destinationAddress }

// Recipient returns the recipient name.
func (c CreateParcelCommand) Recipient() string { return c.recipient }

// RecipientPhone returns the optional recipient contact number.
func (c CreateParcelCommand) RecipientPhone() *string { return c.recipientPhone }

// Instructions returns the optional delivery instructions.
func (c CreateParcelCommand) Instructions() *string { return c.instructions }

// WeightKg returns the optional weight in kilograms.
func (c CreateParcelCommand) WeightKg() *float64 { return c.weightKg }

// AgentID returns the optional agent for immediate assignment.
func (c CreateParcelCommand) AgentID() *int64 { return c.agentID }

func (c *CreateParcelCommand) setTrackingCode(trackingCode string) error {
	if trackingCode == "" {
		return errs.NewValueIsRequiredError("trackingCode")
	}

	c.trackingCode = trackingCode
	return nil
}

func (c *CreateParcelCommand) setDestinationAddress(destinationAddress string) error {
	if destinationAddress == "" {
		return errs.NewValueIsRequiredError("destinationAddress")
	}

	c.destinationAddress = destinationAddress
	return nil
}

func (c *CreateParcelCommand) setRecipient(recipient string) error {
	if recipient == "" {
		return errs.NewValueIsRequiredError("recipient")
	}

	c.recipient = recipient
	return nil
}

func (c *CreateParcelCommand) setAgentID(agentID *int64) error {
	if agentID != nil && *agentID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("agentID",
			fmt.Errorf("%d is not a valid identifier", *agentID))
	}

	c.agentID = agentID
	return nil
}
