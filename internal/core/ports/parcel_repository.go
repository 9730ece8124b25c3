package ports

import (
	"context"

	"paquexpress/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate and attaches the storage-assigned
	// identifier to it. Returns ErrValueAlreadyExists when the tracking code
	// collides with an existing parcel.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate, but only if the
	// stored row still holds expectedStatus. When another writer got there
	// first the row is left untouched and ErrConcurrencyConflict is returned,
	// so the caller's stale transition never overwrites a newer one.
	Update(ctx context.Context, aggregate *parcel.Parcel, expectedStatus parcel.Status) error

	// Get retrieves a parcel aggregate by its identifier.
	// Returns ErrObjectNotFound when no such parcel exists.
	Get(ctx context.Context, id int64) (*parcel.Parcel, error)

	// GetAllInPendingStatus retrieves parcels awaiting assignment, oldest first.
	// Used by the automatic dispatch workflow.
	GetAllInPendingStatus(ctx context.Context) ([]*parcel.Parcel, error)

	// CountActiveByAgent returns, per agent identifier, the number of parcels
	// currently assigned or en route. Agents with no active load are absent
	// from the map.
	CountActiveByAgent(ctx context.Context) (map[int64]int, error)
}
