package queries

import (
	"context"

	"paquexpress/internal/core/domain/model/parcel"
	"paquexpress/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAgentParcelsQueryHandler retrieves an agent's active parcels from the
// database, ordered by assignment time so the oldest work appears first.
type GetAgentParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentParcelsQueryHandler creates a handler for agent workload queries.
// Requires a GORM database connection for query execution.
func NewGetAgentParcelsQueryHandler(db *gorm.DB) GetAgentParcelsQueryHandler {
	return GetAgentParcelsQueryHandler{db: db}
}

// Handle executes the query to retrieve an agent's assigned and en-route
// parcels. Returns errs.ErrObjectNotFound when the agent does not exist.
func (h GetAgentParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetAgentParcelsQuery,
) ([]GetAgentParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(1) FROM agents WHERE id = ?`, query.AgentID()).
		Scan(&exists).Error
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, errs.NewObjectNotFoundError("agentId", query.AgentID())
	}

	parcels := make([]GetAgentParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_code,
			destination_address,
			recipient,
			status,
			assigned_at
		FROM parcels
		WHERE agent_id = ? AND status IN (?, ?)
		ORDER BY assigned_at, id
	`, query.AgentID(), int(parcel.Assigned), int(parcel.EnRoute)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAgentParcelsQueryResponse
		var status int

		err = rows.Scan(
			&resp.ID,
			&resp.TrackingCode,
			&resp.DestinationAddress,
			&resp.Recipient,
			&status,
			&resp.AssignedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.Status = parcel.Status(status)
		parcels = append(parcels, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
