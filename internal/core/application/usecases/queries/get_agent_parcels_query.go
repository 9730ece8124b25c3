package queries

import (
	"errors"
	"fmt"
	"time"

	"paquexpress/internal/core/domain/model/parcel"
	"paquexpress/internal/pkg/errs"
	"paquexpress/internal/pkg/guard"
)

var ErrGetAgentParcelsQueryIsNotConstructed = errors.New(
	"GetAgentParcelsQuery must be created via NewGetAgentParcelsQuery constructor",
)

// GetAgentParcelsQuery retrieves the active workload of one agent: parcels
// currently assigned or en route, excluding finished deliveries.
type GetAgentParcelsQuery struct {
	agentID int64

	guard guard.ConstructorGuard
}

// NewGetAgentParcelsQuery creates a query for an agent's active parcels.
func NewGetAgentParcelsQuery(agentID int64) (GetAgentParcelsQuery, error) {
	if agentID <= 0 {
		return GetAgentParcelsQuery{}, errs.NewValueIsInvalidErrorWithCause("agentID",
			fmt.Errorf("%d is not a valid identifier", agentID))
	}

	return GetAgentParcelsQuery{
		agentID: agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAgentParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentParcelsQueryIsNotConstructed)
}

// AgentID returns the requested agent identifier.
func (q GetAgentParcelsQuery) AgentID() int64 { return q.agentID }

// GetAgentParcelsQueryResponse is the read model for one active parcel of an agent.
type GetAgentParcelsQueryResponse struct {
	ID                 int64
	TrackingCode       string
	DestinationAddress string
	Recipient          string
	Status             parcel.Status
	AssignedAt         *time.Time
}
