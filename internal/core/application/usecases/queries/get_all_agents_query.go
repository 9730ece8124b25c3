package queries

import (
	"errors"
	"time"

	"paquexpress/internal/core/domain/model/agent"
	"paquexpress/internal/pkg/guard"
)

var ErrGetAllAgentsQueryIsNotConstructed = errors.New(
	"GetAllAgentsQuery must be created via NewGetAllAgentsQuery constructor",
)

// GetAllAgentsQuery retrieves every active agent together with its current
// active workload, for monitoring and manual assignment decisions.
// Deactivated agents are excluded from the roster.
type GetAllAgentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllAgentsQuery creates a parameterless query for the agent roster.
func NewGetAllAgentsQuery() GetAllAgentsQuery {
	return GetAllAgentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllAgentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllAgentsQueryIsNotConstructed)
}

// GetAllAgentsQueryResponse is the read model for one agent in the roster.
// ActiveParcels counts assigned and en-route parcels only.
type GetAllAgentsQueryResponse struct {
	ID            int64
	EmployeeCode  string
	Name          string
	Email         string
	Phone         *string
	Vehicle       *string
	Status        agent.Status
	CreatedAt     time.Time
	ActiveParcels int
}
