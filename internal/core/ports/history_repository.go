package ports

import (
	"context"

	"paquexpress/internal/core/domain/model/parcel"
)

// HistoryRepository defines the persistence contract for the status history
// ledger. Entries are append-only; there is no update or delete.
type HistoryRepository interface {
	// Add appends a ledger entry and attaches the storage-assigned identifier
	// to it. Must run inside the same transaction as the parcel mutation the
	// entry describes.
	Add(ctx context.Context, entry *parcel.HistoryEntry) error

	// GetAllByParcelID retrieves every ledger entry for a parcel in
	// chronological order. Returns an empty slice for an unknown parcel.
	GetAllByParcelID(ctx context.Context, parcelID int64) ([]*parcel.HistoryEntry, error)
}
