package parcel

import (
	"errors"
	"fmt"
	"time"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel constructor")

	// ErrParcelIDAlreadyAssigned is returned when AttachID is called on a
	// parcel that already carries a persistent identifier.
	ErrParcelIDAlreadyAssigned = errors.New("parcel already has an identifier")

	// ErrInvalidTransition is returned when a requested status change violates
	// the transition table, including any attempt to move a terminal parcel.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// newInvalidTransitionError wraps ErrInvalidTransition with the offending edge.
func newInvalidTransitionError(from, to Status) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

// Parcel represents a tracked shipment. It is the aggregate root that manages
// the parcel lifecycle from creation through assignment to delivery.
//
// Parcel follows these invariants:
//   - Tracking code is unique (enforced by storage) and immutable
//   - Status transitions follow the table in Status.CanTransitionTo
//   - An agent is bound iff the parcel has progressed past Pending
//   - Once delivered, delivery timestamp/geo/evidence are never cleared
//   - Can only be created through NewParcel or RestoreParcel
//
// The parcel row is a projection: the history ledger is the source of truth
// for past states, so every mutation here is paired by the application layer
// with a HistoryEntry in the same unit of work.
type Parcel struct {
	// id is the surrogate identifier assigned by storage; zero until persisted
	id int64

	// trackingCode is the unique immutable shipment code
	trackingCode string

	// destinationAddress is the delivery destination
	destinationAddress string

	// recipient is the name of the person receiving the shipment
	recipient string

	// recipientPhone is an optional contact number for the recipient
	recipientPhone *string

	// instructions holds optional free-text delivery instructions
	instructions *string

	// weightKg is the optional parcel weight in kilograms (>= 0)
	weightKg *float64

	// status is the current lifecycle state
	status Status

	// agentID is the assigned agent, nil while Pending
	agentID *int64

	// createdAt is the creation timestamp (UTC)
	createdAt time.Time

	// assignedAt is set on every (re-)assignment
	assignedAt *time.Time

	// deliveredAt, deliveryPoint, evidencePhoto, observations are the delivery
	// detail fields, populated on delivery confirmation and never cleared
	deliveredAt   *time.Time
	deliveryPoint *kernel.GeoPoint
	evidencePhoto *string
	observations  *string

	// isConstructed ensures the parcel was created via a constructor
	isConstructed bool
}

// NewParcel creates a parcel in Pending status with a UTC creation timestamp.
// Validates tracking code, destination, recipient and the optional weight;
// validation errors for all fields are joined.
func NewParcel(
	trackingCode, destinationAddress, recipient string,
	recipientPhone, instructions *string,
	weightKg *float64,
) (*Parcel, error) {
	p := &Parcel{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setTrackingCode(trackingCode),
		p.setDestinationAddress(destinationAddress),
		p.setRecipient(recipient),
		p.setRecipientPhone(recipientPhone),
		p.setWeightKg(weightKg),
	); err != nil {
		return nil, err
	}

	p.instructions = instructions
	return p, nil
}

// RestoreParcel reconstructs a parcel from persistence.
// All field invariants are re-validated; the status/agent pairing is checked
// so the "agent bound iff past pending" invariant cannot be silently broken
// by a corrupt row.
func RestoreParcel(
	id int64,
	trackingCode, destinationAddress, recipient string,
	recipientPhone, instructions *string,
	weightKg *float64,
	status Status,
	agentID *int64,
	createdAt time.Time,
	assignedAt, deliveredAt *time.Time,
	deliveryPoint *kernel.GeoPoint,
	evidencePhoto, observations *string,
) (*Parcel, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid identifier", id))
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if status != Pending && agentID == nil && status != Cancelled {
		return nil, errs.NewValueIsInvalidErrorWithCause("agentID",
			fmt.Errorf("status %s requires an assigned agent", status))
	}
	if deliveryPoint != nil {
		if err := deliveryPoint.Validate(); err != nil {
			return nil, err
		}
	}

	p, err := NewParcel(trackingCode, destinationAddress, recipient, recipientPhone, instructions, weightKg)
	if err != nil {
		return nil, err
	}

	p.id = id
	p.status = status
	p.agentID = agentID
	p.createdAt = createdAt
	p.assignedAt = assignedAt
	p.deliveredAt = deliveredAt
	p.deliveryPoint = deliveryPoint
	p.evidencePhoto = evidencePhoto
	p.observations = observations
	return p, nil
}

// Validate ensures the Parcel instance was properly constructed.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// AttachID binds the storage-assigned surrogate identifier to a freshly
// created parcel. Fails if an identifier is already present.
func (p *Parcel) AttachID(id int64) error {
	if p.id != 0 {
		return ErrParcelIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid identifier", id))
	}

	p.id = id
	return nil
}

// ID returns the surrogate identifier, or zero if the parcel is not yet persisted.
func (p *Parcel) ID() int64 { return p.id }

// TrackingCode returns the unique immutable shipment code.
func (p *Parcel) TrackingCode() string { return p.trackingCode }

// DestinationAddress returns the delivery destination.
func (p *Parcel) DestinationAddress() string { return p.destinationAddress }

// Recipient returns the recipient name.
func (p *Parcel) Recipient() string { return p.recipient }

// RecipientPhone returns the optional recipient contact number.
func (p *Parcel) RecipientPhone() *string { return p.recipientPhone }

// Instructions returns the optional delivery instructions.
func (p *Parcel) Instructions() *string { return p.instructions }

// WeightKg returns the optional weight in kilograms.
func (p *Parcel) WeightKg() *float64 { return p.weightKg }

// Status returns the current lifecycle state.
func (p *Parcel) Status() Status { return p.status }

// AgentID returns the assigned agent's identifier, nil while Pending.
func (p *Parcel) AgentID() *int64 { return p.agentID }

// CreatedAt returns the creation timestamp.
func (p *Parcel) CreatedAt() time.Time { return p.createdAt }

// AssignedAt returns the latest assignment timestamp, nil if never assigned.
func (p *Parcel) AssignedAt() *time.Time { return p.assignedAt }

// DeliveredAt returns the delivery timestamp, nil until delivered.
func (p *Parcel) DeliveredAt() *time.Time { return p.deliveredAt }

// DeliveryPoint returns the confirmed delivery coordinates, nil until delivered.
func (p *Parcel) DeliveryPoint() *kernel.GeoPoint { return p.deliveryPoint }

// EvidencePhoto returns the opaque evidence blob reference, nil if absent.
func (p *Parcel) EvidencePhoto() *string { return p.evidencePhoto }

// Observations returns the free-text observations, nil if absent.
func (p *Parcel) Observations() *string { return p.observations }

// Assign binds the parcel to an agent and moves it to Assigned.
// Allowed from Pending, Assigned (re-assignment) and EnRoute; refreshes the
// assignment timestamp on every call. The caller is responsible for verifying
// the agent exists — active status is deliberately not required here.
func (p *Parcel) Assign(agentID int64) error {
	if agentID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("agentID",
			fmt.Errorf("%d is not a valid identifier", agentID))
	}
	if !p.status.CanTransitionTo(Assigned) {
		return newInvalidTransitionError(p.status, Assigned)
	}

	now := time.Now().UTC()
	p.status = Assigned
	p.agentID = &agentID
	p.assignedAt = &now
	return nil
}

// Deliver confirms delivery with validated coordinates, optional evidence and
// observations. Allowed only from Assigned or EnRoute; populates the delivery
// detail fields and moves the parcel to the terminal Delivered state.
func (p *Parcel) Deliver(point kernel.GeoPoint, evidencePhoto, observations *string) error {
	if err := point.Validate(); err != nil {
		return err
	}
	if !p.status.CanBeDelivered() {
		return newInvalidTransitionError(p.status, Delivered)
	}

	now := time.Now().UTC()
	p.status = Delivered
	p.deliveredAt = &now
	p.deliveryPoint = &point
	p.evidencePhoto = evidencePhoto
	p.observations = observations
	return nil
}

// Cancel moves the parcel to the terminal Cancelled state.
// Allowed from any non-terminal state. Delivery fields, if any, are preserved.
func (p *Parcel) Cancel() error {
	if !p.status.CanTransitionTo(Cancelled) {
		return newInvalidTransitionError(p.status, Cancelled)
	}

	p.status = Cancelled
	return nil
}

// ChangeStatus applies a generic administrative status change, enforcing the
// full transition table. Derived timestamps follow the target: Assigned
// refreshes the assignment timestamp (and requires an already-bound agent so
// the assignment invariant holds), Delivered sets the delivery timestamp.
// Delivery detail fields are never cleared.
func (p *Parcel) ChangeStatus(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if !p.status.CanTransitionTo(target) {
		return newInvalidTransitionError(p.status, target)
	}
	if target == Assigned && p.agentID == nil {
		return fmt.Errorf("%w: cannot mark %s parcel assigned without an agent", ErrInvalidTransition, p.status)
	}

	now := time.Now().UTC()
	switch target {
	case Assigned:
		p.assignedAt = &now
	case Delivered:
		p.deliveredAt = &now
	}

	p.status = target
	return nil
}

func (p *Parcel) setTrackingCode(trackingCode string) error {
	if trackingCode == "" {
		return errs.NewValueIsRequiredError("trackingCode")
	}
	if len(trackingCode) < 3 || len(trackingCode) > 50 {
		return errs.NewValueIsOutOfRangeError("trackingCode length", len(trackingCode), 3, 50)
	}

	p.trackingCode = trackingCode
	return nil
}

func (p *Parcel) setDestinationAddress(destinationAddress string) error {
	if destinationAddress == "" {
		return errs.NewValueIsRequiredError("destinationAddress")
	}
	if len(destinationAddress) < 5 {
		return errs.NewValueIsInvalidErrorWithCause("destinationAddress",
			fmt.Errorf("must be at least 5 characters"))
	}

	p.destinationAddress = destinationAddress
	return nil
}

func (p *Parcel) setRecipient(recipient string) error {
	if recipient == "" {
		return errs.NewValueIsRequiredError("recipient")
	}
	if len(recipient) < 2 || len(recipient) > 255 {
		return errs.NewValueIsOutOfRangeError("recipient length", len(recipient), 2, 255)
	}

	p.recipient = recipient
	return nil
}

func (p *Parcel) setRecipientPhone(recipientPhone *string) error {
	if recipientPhone != nil && len(*recipientPhone) > 20 {
		return errs.NewValueIsOutOfRangeError("recipientPhone length", len(*recipientPhone), 0, 20)
	}

	p.recipientPhone = recipientPhone
	return nil
}

func (p *Parcel) setWeightKg(weightKg *float64) error {
	if weightKg != nil && *weightKg < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg",
			fmt.Errorf("%f is not greater than or equal to 0", *weightKg))
	}

	p.weightKg = weightKg
	return nil
}
