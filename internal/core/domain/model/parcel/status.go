package parcel

import (
	"fmt"

	"paquexpress/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel.
// It implements a state machine with an exhaustive transition table so orders
// follow the correct delivery workflow and illegal values are rejected at the
// boundary, not at the database.
//
// State transitions:
//
//	Pending ──> Assigned ──> EnRoute ──> Delivered
//	               ^  │         │
//	               └──┴─────────┘
//	          (re-assignment allowed)
//
//	any non-terminal ──> Cancelled
//
// Delivered and Cancelled are terminal: no further transition succeeds.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: created but not yet bound to an agent.
	Pending

	// Assigned indicates the parcel is bound to an agent awaiting pickup.
	// Parcels can be re-assigned while in this status.
	Assigned

	// EnRoute indicates the assigned agent is carrying the parcel.
	EnRoute

	// Delivered is a terminal state reached by delivery confirmation.
	Delivered

	// Cancelled is a terminal state reachable from any non-terminal state.
	Cancelled
)

// getStatusStrings returns the wire/storage names of all statuses.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Assigned:  "assigned",
		EnRoute:   "en_route",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns only valid statuses, to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Assigned:  "assigned",
		EnRoute:   "en_route",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// Validate checks if the Status value is one of the five known states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status.
// Implements the fmt.Stringer interface and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ParseStatus converts a wire name back to a Status.
// Returns an error for any string outside the five known states, so arbitrary
// strings can never flow into a status field.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid parcel status", s))
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanBeDelivered reports whether a delivery confirmation is allowed from this
// status. Only parcels in Assigned or EnRoute can be confirmed delivered.
func (s Status) CanBeDelivered() bool {
	return s == Assigned || s == EnRoute
}

// CanTransitionTo reports whether the transition table permits moving from
// the current status to target. The table is exhaustive:
//
//	Pending  -> Assigned, Cancelled
//	Assigned -> Assigned (re-assign), EnRoute, Delivered, Cancelled
//	EnRoute  -> Assigned (re-assign), Delivered, Cancelled
//	Delivered, Cancelled -> (none)
//
// Pending is never a target: parcels enter it only at creation.
func (s Status) CanTransitionTo(target Status) bool {
	if target.Validate() != nil {
		return false
	}

	switch s {
	case Pending:
		return target == Assigned || target == Cancelled
	case Assigned:
		return target == Assigned || target == EnRoute || target == Delivered || target == Cancelled
	case EnRoute:
		return target == Assigned || target == Delivered || target == Cancelled
	default:
		return false
	}
}
