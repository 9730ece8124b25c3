// Package sessionstore implements the session token store on Redis.
// Tokens are opaque strings mapped to agent identifiers; Redis key expiry
// implements the session lifetime, so expired tokens simply disappear.
package sessionstore

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"paquexpress/internal/core/ports"
	"paquexpress/internal/pkg/errs"
)

// keyPrefix namespaces session keys so the database can be shared.
const keyPrefix = "session:"

// Store keeps login sessions in Redis with a fixed lifetime per entry.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a session store writing through the given client.
// ttl is the session lifetime applied to every stored token.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

// Put stores a token for an agent, resetting its lifetime.
func (s *Store) Put(ctx context.Context, token string, agentID int64) error {
	err := s.client.Set(ctx, keyPrefix+token, agentID, s.ttl).Err()
	if err != nil {
		return errs.NewUnavailableError("session store put", err)
	}
	return nil
}

// Get resolves a token to the owning agent's identifier.
// Returns ports.ErrSessionNotFound for unknown or expired tokens.
func (s *Store) Get(ctx context.Context, token string) (int64, error) {
	value, err := s.client.Get(ctx, keyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ports.ErrSessionNotFound
	}
	if err != nil {
		return 0, errs.NewUnavailableError("session store get", err)
	}

	agentID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, ports.ErrSessionNotFound
	}
	return agentID, nil
}

// Delete removes a token. Deleting an unknown token is not an error.
func (s *Store) Delete(ctx context.Context, token string) error {
	err := s.client.Del(ctx, keyPrefix+token).Err()
	if err != nil {
		return errs.NewUnavailableError("session store delete", err)
	}
	return nil
}
