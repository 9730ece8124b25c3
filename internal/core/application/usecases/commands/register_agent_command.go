package commands

import (
	"errors"

	"paquexpress/internal/pkg/errs"
	"paquexpress/internal/pkg/guard"
)

var ErrRegisterAgentCommandIsNotConstructed = errors.New(
	"RegisterAgentCommand must be created via NewRegisterAgentCommand constructor",
)

// RegisterAgentCommand represents a request to register a new delivery agent.
// Carries the raw password; hashing happens in the handler so the credential
// transform stays in one place.
type RegisterAgentCommand struct { //nolint:recvcheck //using for validation
	employeeCode string
	name         string
	email        string
	rawPassword  string
	phone        *string
	vehicle      *string

	guard guard.ConstructorGuard
}

// NewRegisterAgentCommand creates a command to register a new agent.
// Required fields must be present; full field validation happens in the
// aggregate constructor.
func NewRegisterAgentCommand(
	employeeCode, name, email, rawPassword string,
	phone, vehicle *string,
) (RegisterAgentCommand, error) {
	cmd := RegisterAgentCommand{
		phone:   phone,
		vehicle: vehicle,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmployeeCode(employeeCode),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setRawPassword(rawPassword),
	); err != nil {
		return RegisterAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAgentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAgentCommandIsNotConstructed)
}

// EmployeeCode returns the unique employee code.
func (c RegisterAgentCommand) EmployeeCode() string { return c.employeeCode }

// Name returns the agent's display name.
func (c RegisterAgentCommand) Name() string { return c.name }

// Email returns the unique login email.
func (c RegisterAgentCommand) Email() string { return c.email }

// RawPassword returns the raw password to be hashed by the handler.
func (c RegisterAgentCommand) RawPassword() string { return c.rawPassword }

// Phone returns the optional contact number.
func (c RegisterAgentCommand) Phone() *string { return c.phone }

// Vehicle returns the optional vehicle descriptor.
func (c RegisterAgentCommand) Vehicle() *string { return c.vehicle }

func (c *RegisterAgentCommand) setEmployeeCode(employeeCode string) error {
	if employeeCode == "" {
		return errs.NewValueIsRequiredError("employeeCode")
	}

	c.employeeCode = employeeCode
	return nil
}

func (c *RegisterAgentCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterAgentCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterAgentCommand) setRawPassword(rawPassword string) error {
	if rawPassword == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.rawPassword = rawPassword
	return nil
}
