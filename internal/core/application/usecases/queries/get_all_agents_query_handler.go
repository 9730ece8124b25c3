package queries

import (
	"context"

	"paquexpress/internal/core/domain/model/agent"
	"paquexpress/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GetAllAgentsQueryHandler retrieves the active-agent roster with per-agent
// active workload in a single query. Deactivated agents are not listed.
type GetAllAgentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllAgentsQueryHandler creates a handler for agent roster queries.
// Requires a GORM database connection for query execution.
func NewGetAllAgentsQueryHandler(db *gorm.DB) GetAllAgentsQueryHandler {
	return GetAllAgentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all active agents ordered by identifier.
func (h GetAllAgentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllAgentsQuery,
) ([]GetAllAgentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	agents := make([]GetAllAgentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.employee_code,
			a.name,
			a.email,
			a.phone,
			a.vehicle,
			a.status,
			a.created_at,
			COUNT(p.id) AS active_parcels
		FROM agents a
		LEFT JOIN parcels p ON p.agent_id = a.id AND p.status IN (?, ?)
		WHERE a.status = ?
		GROUP BY a.id, a.employee_code, a.name, a.email, a.phone, a.vehicle, a.status, a.created_at
		ORDER BY a.id
	`, int(parcel.Assigned), int(parcel.EnRoute), int(agent.Active)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllAgentsQueryResponse
		var status int

		err = rows.Scan(
			&resp.ID,
			&resp.EmployeeCode,
			&resp.Name,
			&resp.Email,
			&resp.Phone,
			&resp.Vehicle,
			&status,
			&resp.CreatedAt,
			&resp.ActiveParcels,
		)
		if err != nil {
			return nil, err
		}

		resp.Status = agent.Status(status)
		agents = append(agents, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return agents, nil
}
