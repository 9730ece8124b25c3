package ports

import (
	"context"
	"errors"
)

// ErrSessionNotFound is returned when a token is unknown or has expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps opaque login tokens mapped to agent identifiers.
// Entries expire after the configured session lifetime.
type SessionStore interface {
	// Put stores a token for an agent, resetting its lifetime.
	Put(ctx context.Context, token string, agentID int64) error

	// Get resolves a token to the owning agent's identifier.
	// Returns ErrSessionNotFound for unknown or expired tokens.
	Get(ctx context.Context, token string) (int64, error)

	// Delete removes a token. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}
