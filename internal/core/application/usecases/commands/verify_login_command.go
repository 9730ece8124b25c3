package commands

import (
	"errors"

	"paquexpress/internal/pkg/errs"
	"paquexpress/internal/pkg/guard"
)

var ErrVerifyLoginCommandIsNotConstructed = errors.New(
	"VerifyLoginCommand must be created via NewVerifyLoginCommand constructor",
)

// VerifyLoginCommand represents a login attempt with email and raw password.
type VerifyLoginCommand struct { //nolint:recvcheck //using for validation
	email       string
	rawPassword string

	guard guard.ConstructorGuard
}

// NewVerifyLoginCommand creates a command to verify agent credentials.
func NewVerifyLoginCommand(email, rawPassword string) (VerifyLoginCommand, error) {
	cmd := VerifyLoginCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setRawPassword(rawPassword),
	); err != nil {
		return VerifyLoginCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyLoginCommand) Validate() error {
	return c.guard.Validate(ErrVerifyLoginCommandIsNotConstructed)
}

// Email returns the login email.
func (c VerifyLoginCommand) Email() string { return c.email }

// RawPassword returns the raw password to verify.
func (c VerifyLoginCommand) RawPassword() string { return c.rawPassword }

func (c *VerifyLoginCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *VerifyLoginCommand) setRawPassword(rawPassword string) error {
	if rawPassword == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.rawPassword = rawPassword
	return nil
}
