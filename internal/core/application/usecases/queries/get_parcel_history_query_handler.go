package queries

import (
	"context"

	"paquexpress/internal/core/domain/model/parcel"
	"paquexpress/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetParcelHistoryQueryHandler retrieves a parcel's status ledger from the
// database, oldest entry first.
type GetParcelHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelHistoryQueryHandler creates a handler for ledger queries.
// Requires a GORM database connection for query execution.
func NewGetParcelHistoryQueryHandler(db *gorm.DB) GetParcelHistoryQueryHandler {
	return GetParcelHistoryQueryHandler{db: db}
}

// Handle executes the query to retrieve a parcel's ledger entries.
// Returns errs.ErrObjectNotFound when the parcel itself does not exist.
func (h GetParcelHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetParcelHistoryQuery,
) ([]GetParcelHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(1) FROM parcels WHERE id = ?`, query.ParcelID()).
		Scan(&exists).Error
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, errs.NewObjectNotFoundError("parcelId", query.ParcelID())
	}

	entries := make([]GetParcelHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			parcel_id,
			previous_status,
			next_status,
			changed_at,
			observations
		FROM parcel_status_history
		WHERE parcel_id = ?
		ORDER BY changed_at, id
	`, query.ParcelID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetParcelHistoryQueryResponse
		var previous *int
		var next int

		err = rows.Scan(
			&entry.ID,
			&entry.ParcelID,
			&previous,
			&next,
			&entry.ChangedAt,
			&entry.Observations,
		)
		if err != nil {
			return nil, err
		}

		if previous != nil {
			p := parcel.Status(*previous)
			entry.Previous = &p
		}
		entry.Next = parcel.Status(next)
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
