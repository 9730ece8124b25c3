package queries

import (
	"context"

	"paquexpress/internal/core/domain/model/parcel"
	"paquexpress/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetParcelQueryHandler retrieves a single parcel from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelQueryHandler creates a handler for parcel retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle executes the query to retrieve a parcel by identifier.
// Returns errs.ErrObjectNotFound when no such parcel exists.
func (h GetParcelQueryHandler) Handle(
	ctx context.Context,
	query GetParcelQuery,
) (GetParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_code,
			destination_address,
			recipient,
			recipient_phone,
			instructions,
			weight_kg,
			status,
			agent_id,
			created_at,
			assigned_at,
			delivered_at,
			delivery_latitude,
			delivery_longitude,
			evidence_photo,
			observations
		FROM parcels
		WHERE id = ?
	`, query.ParcelID()).Rows()
	if err != nil {
		return GetParcelQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetParcelQueryResponse{}, err
		}
		return GetParcelQueryResponse{}, errs.NewObjectNotFoundError("parcelId", query.ParcelID())
	}

	var resp GetParcelQueryResponse
	var status int

	err = rows.Scan(
		&resp.ID,
		&resp.TrackingCode,
		&resp.DestinationAddress,
		&resp.Recipient,
		&resp.RecipientPhone,
		&resp.Instructions,
		&resp.WeightKg,
		&status,
		&resp.AgentID,
		&resp.CreatedAt,
		&resp.AssignedAt,
		&resp.DeliveredAt,
		&resp.DeliveryLatitude,
		&resp.DeliveryLongitude,
		&resp.EvidencePhoto,
		&resp.Observations,
	)
	if err != nil {
		return GetParcelQueryResponse{}, err
	}

	resp.Status = parcel.Status(status)
	return resp, nil
}
