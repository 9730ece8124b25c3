// Package historyrepo provides data transfer objects and mapping functions
// for the parcel status history ledger. The ledger is append-only: rows are
// inserted alongside the parcel mutation they describe and never touched again.
package historyrepo

import (
	"time"

	"paquexpress/internal/core/domain/model/parcel"
)

// HistoryEntryDTO represents the database structure for ledger entries.
// PreviousStatus is NULL only for the creation entry.
type HistoryEntryDTO struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	ParcelID       int64 `gorm:"index;not null"`
	PreviousStatus *int
	NextStatus     int       `gorm:"not null"`
	ChangedAt      time.Time `gorm:"index;not null"`
	Observations   *string
}

// TableName specifies the database table name for ledger entries.
func (HistoryEntryDTO) TableName() string {
	return "parcel_status_history"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry *parcel.HistoryEntry) HistoryEntryDTO {
	var previous *int
	if p := entry.Previous(); p != nil {
		v := int(*p)
		previous = &v
	}

	return HistoryEntryDTO{
		ID:             entry.ID(),
		ParcelID:       entry.ParcelID(),
		PreviousStatus: previous,
		NextStatus:     int(entry.Next()),
		ChangedAt:      entry.ChangedAt(),
		Observations:   entry.Observations(),
	}
}

// toDomain converts a database row to a ledger entry using RestoreHistoryEntry.
func toDomain(dto HistoryEntryDTO) (*parcel.HistoryEntry, error) {
	var previous *parcel.Status
	if dto.PreviousStatus != nil {
		p := parcel.Status(*dto.PreviousStatus)
		previous = &p
	}

	return parcel.RestoreHistoryEntry(
		dto.ID,
		dto.ParcelID,
		previous,
		parcel.Status(dto.NextStatus),
		dto.ChangedAt,
		dto.Observations,
	)
}
