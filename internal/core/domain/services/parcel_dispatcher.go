package services

import (
	"errors"
	"math"

	"paquexpress/internal/core/domain/model/agent"
	"paquexpress/internal/core/domain/model/parcel"
)

// ErrAgentNotFound is returned when no suitable agent is available for parcel
// dispatch. This occurs when no agents are provided or none of the provided
// agents is active.
var ErrAgentNotFound = errors.New("agent not found")

// ParcelDispatcher is a domain service responsible for finding and assigning
// the best agent for a pending parcel based on current workload.
//
// Business rules:
//   - Only active agents are considered
//   - Selection prioritizes the lowest number of active parcels
//   - Ties break on the lowest agent identifier, so repeated runs over the
//     same state pick the same agent
type ParcelDispatcher struct{}

// NewParcelDispatcher creates a new ParcelDispatcher instance.
func NewParcelDispatcher() ParcelDispatcher {
	return ParcelDispatcher{}
}

// Dispatch finds the least loaded active agent and assigns the parcel to it.
// activeLoad maps agent identifiers to their current number of assigned or
// en-route parcels; agents absent from the map carry no load.
//
// Returns ErrAgentNotFound when no active agent is available, or the
// transition error when the parcel cannot accept an assignment.
func (d ParcelDispatcher) Dispatch(
	p *parcel.Parcel,
	agents []*agent.Agent,
	activeLoad map[int64]int,
) (*agent.Agent, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	bestAgent, err := d.findLeastLoadedAgent(agents, activeLoad)
	if err != nil {
		return nil, err
	}

	if err = p.Assign(bestAgent.ID()); err != nil {
		return nil, err
	}

	return bestAgent, nil
}

func (d ParcelDispatcher) findLeastLoadedAgent(
	agents []*agent.Agent,
	activeLoad map[int64]int,
) (*agent.Agent, error) {
	var (
		bestAgent *agent.Agent
		bestLoad  = math.MaxInt
	)

	for _, a := range agents {
		if err := a.Validate(); err != nil {
			return nil, err
		}

		if !a.IsActive() {
			continue
		}

		load := activeLoad[a.ID()]
		if load < bestLoad || (load == bestLoad && bestAgent != nil && a.ID() < bestAgent.ID()) {
			bestLoad = load
			bestAgent = a
		}
	}

	if bestAgent == nil {
		return nil, ErrAgentNotFound
	}

	return bestAgent, nil
}
