package agent

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"paquexpress/internal/pkg/errs"
)

var (
	// ErrAgentIsNotConstructed is returned when an Agent instance was not
	// created through NewAgent or RestoreAgent. This ensures all agents are
	// properly validated.
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent or RestoreAgent constructor")

	// ErrAgentIDAlreadyAssigned is returned when AttachID is called on an
	// agent that already carries a persistent identifier.
	ErrAgentIDAlreadyAssigned = errors.New("agent already has an identifier")
)

// Agent represents a field operative eligible for parcel assignment and
// delivery confirmation.
//
// Agent follows these invariants:
//   - Employee code and email are globally unique (enforced by storage)
//   - Identity fields are immutable after registration; only status changes
//   - Only the derived password hash is ever held, never the raw password
//   - Can only be created through NewAgent or RestoreAgent
type Agent struct {
	// id is the surrogate identifier assigned by storage; zero until persisted
	id int64

	// employeeCode is the unique human-assigned code, e.g. "AGE001"
	employeeCode string

	// name is the agent's display name
	name string

	// email is the unique login identity
	email string

	// passwordHash is the stored "salt$digest" credential
	passwordHash string

	// phone is an optional contact number
	phone *string

	// vehicle is an optional vehicle descriptor
	vehicle *string

	// status is the administrative state (active/inactive)
	status Status

	// createdAt is the registration timestamp (UTC)
	createdAt time.Time

	// isConstructed ensures the agent was created via a constructor
	isConstructed bool
}

// NewAgent registers a new agent. The password must already be transformed by
// HashPassword; raw passwords never reach the aggregate. New agents start
// Active with a UTC creation timestamp.
func NewAgent(employeeCode, name, email, passwordHash string, phone, vehicle *string) (*Agent, error) {
	a := &Agent{
		status:        Active,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		a.setEmployeeCode(employeeCode),
		a.setName(name),
		a.setEmail(email),
		a.setPasswordHash(passwordHash),
		a.setPhone(phone),
		a.setVehicle(vehicle),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAgent reconstructs an agent from persistence.
// All invariants are re-validated so corrupt rows cannot produce an invalid aggregate.
func RestoreAgent(
	id int64,
	employeeCode, name, email, passwordHash string,
	phone, vehicle *string,
	status Status,
	createdAt time.Time,
) (*Agent, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid identifier", id))
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	a, err := NewAgent(employeeCode, name, email, passwordHash, phone, vehicle)
	if err != nil {
		return nil, err
	}

	a.id = id
	a.status = status
	a.createdAt = createdAt
	return a, nil
}

// Validate ensures the Agent instance was properly constructed.
func (a *Agent) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAgentIsNotConstructed
	}
	return nil
}

// AttachID binds the storage-assigned surrogate identifier to a freshly
// created agent. Fails if an identifier is already present.
func (a *Agent) AttachID(id int64) error {
	if a.id != 0 {
		return ErrAgentIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid identifier", id))
	}

	a.id = id
	return nil
}

// ID returns the surrogate identifier, or zero if the agent is not yet persisted.
func (a *Agent) ID() int64 { return a.id }

// EmployeeCode returns the unique employee code.
func (a *Agent) EmployeeCode() string { return a.employeeCode }

// Name returns the display name.
func (a *Agent) Name() string { return a.name }

// Email returns the unique login email.
func (a *Agent) Email() string { return a.email }

// PasswordHash returns the stored "salt$digest" credential.
func (a *Agent) PasswordHash() string { return a.passwordHash }

// Phone returns the optional contact number, nil if absent.
func (a *Agent) Phone() *string { return a.phone }

// Vehicle returns the optional vehicle descriptor, nil if absent.
func (a *Agent) Vehicle() *string { return a.vehicle }

// Status returns the administrative state.
func (a *Agent) Status() Status { return a.status }

// CreatedAt returns the registration timestamp.
func (a *Agent) CreatedAt() time.Time { return a.createdAt }

// IsActive reports whether the agent may log in.
func (a *Agent) IsActive() bool { return a.status == Active }

// Activate flips the agent to Active. Idempotent.
func (a *Agent) Activate() { a.status = Active }

// Deactivate flips the agent to Inactive. Idempotent. Existing parcel
// assignments are untouched; only login is blocked.
func (a *Agent) Deactivate() { a.status = Inactive }

// VerifyPassword checks a raw password against the stored credential and the
// agent's administrative state. Returns ErrInvalidCredentials on mismatch or
// malformed stored digest, ErrAgentInactive when the password is correct but
// the agent is deactivated.
func (a *Agent) VerifyPassword(rawPassword string) error {
	if !VerifyPassword(rawPassword, a.passwordHash) {
		return ErrInvalidCredentials
	}
	if !a.IsActive() {
		return ErrAgentInactive
	}
	return nil
}

func (a *Agent) setEmployeeCode(employeeCode string) error {
	if employeeCode == "" {
		return errs.NewValueIsRequiredError("employeeCode")
	}
	if len(employeeCode) < 3 || len(employeeCode) > 20 {
		return errs.NewValueIsOutOfRangeError("employeeCode length", len(employeeCode), 3, 20)
	}

	a.employeeCode = employeeCode
	return nil
}

func (a *Agent) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) < 2 || len(name) > 255 {
		return errs.NewValueIsOutOfRangeError("name length", len(name), 2, 255)
	}

	a.name = name
	return nil
}

func (a *Agent) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	if len(email) > 255 {
		return errs.NewValueIsOutOfRangeError("email length", len(email), 3, 255)
	}

	a.email = email
	return nil
}

func (a *Agent) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}

	a.passwordHash = passwordHash
	return nil
}

func (a *Agent) setPhone(phone *string) error {
	if phone != nil && len(*phone) > 20 {
		return errs.NewValueIsOutOfRangeError("phone length", len(*phone), 0, 20)
	}

	a.phone = phone
	return nil
}

func (a *Agent) setVehicle(vehicle *string) error {
	if vehicle != nil && len(*vehicle) > 100 {
		return errs.NewValueIsOutOfRangeError("vehicle length", len(*vehicle), 0, 100)
	}

	a.vehicle = vehicle
	return nil
}
