package agent

import (
	"fmt"

	"paquexpress/internal/pkg/errs"
)

// Status represents the administrative state of a field agent.
// Inactive agents may still hold parcel assignments but cannot log in.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Active agents can log in and receive new assignments.
	Active

	// Inactive agents are blocked from logging in. An external administrative
	// process flips agents between Active and Inactive.
	Inactive
)

// getStatusStrings returns the wire/storage names of all statuses.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "unknown",
		Active:   "active",
		Inactive: "inactive",
	}
}

// getValidStatusStrings returns only valid statuses, to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Active:   "active",
		Inactive: "inactive",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Active and Inactive; Unknown and any other value fail.
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
// Returns an error for any string that is not a valid status name.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid agent status", s))
}
