// Package ports defines repository interfaces for the parcel delivery domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"paquexpress/internal/core/domain/model/agent"
)

// AgentRepository defines the persistence contract for agent aggregates.
type AgentRepository interface {
	// Add persists a new agent aggregate and attaches the storage-assigned
	// identifier to it. Returns ErrValueAlreadyExists when the employee code
	// or email collides with an existing agent.
	Add(ctx context.Context, aggregate *agent.Agent) error

	// Update persists changes to an existing agent aggregate.
	Update(ctx context.Context, aggregate *agent.Agent) error

	// Get retrieves an agent aggregate by its identifier.
	// Returns ErrObjectNotFound when no such agent exists.
	Get(ctx context.Context, id int64) (*agent.Agent, error)

	// GetByEmail retrieves an agent aggregate by its unique login email.
	// Returns ErrObjectNotFound when no such agent exists.
	GetByEmail(ctx context.Context, email string) (*agent.Agent, error)

	// GetAllActive retrieves every agent eligible for assignment, ordered by
	// identifier so selection among equals is deterministic.
	GetAllActive(ctx context.Context) ([]*agent.Agent, error)
}
