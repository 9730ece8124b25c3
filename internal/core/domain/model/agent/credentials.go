package agent

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"paquexpress/internal/pkg/errs"
)

// MinPasswordLength is the minimum accepted raw password length.
const MinPasswordLength = 6

// saltBytes is the number of random bytes generated per credential salt.
const saltBytes = 16

// digestSeparator joins the hex-encoded salt and digest in the stored
// credential. '$' can never appear in hex output, so splitting is unambiguous.
const digestSeparator = "$"

var (
	// ErrInvalidCredentials is returned when email/password verification fails.
	// A malformed stored digest is deliberately indistinguishable from a wrong
	// password: a corrupt credential row must never leak its corruption.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAgentInactive is returned when credentials are correct but the agent
	// has been administratively deactivated.
	ErrAgentInactive = errors.New("agent is inactive")
)

// HashPassword transforms a raw password into the stored credential form
// "salt$digest", where salt is a random per-credential hex string and digest
// is the hex SHA-256 of salt concatenated with the password. Only this
// derived form is ever persisted.
func HashPassword(rawPassword string) (string, error) {
	if len(rawPassword) < MinPasswordLength {
		return "", errs.NewValueIsInvalidErrorWithCause("password",
			fmt.Errorf("must be at least %d characters", MinPasswordLength))
	}

	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate credential salt: %w", err)
	}
	salt := hex.EncodeToString(buf)

	digest := sha256.Sum256([]byte(salt + rawPassword))
	return salt + digestSeparator + hex.EncodeToString(digest[:]), nil
}

// VerifyPassword recomputes the digest of a raw password with the stored salt
// and compares it to the stored digest in constant time. Returns false for a
// wrong password and for any malformed stored credential (wrong field count).
func VerifyPassword(rawPassword string, storedHash string) bool {
	parts := strings.Split(storedHash, digestSeparator)
	if len(parts) != 2 {
		return false
	}
	salt, stored := parts[0], parts[1]

	digest := sha256.Sum256([]byte(salt + rawPassword))
	computed := hex.EncodeToString(digest[:])

	return subtle.ConstantTimeCompare([]byte(computed), []byte(stored)) == 1
}
