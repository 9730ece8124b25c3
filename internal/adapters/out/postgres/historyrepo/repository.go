package historyrepo

import (
	"context"

	"paquexpress/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GormHistoryRepository implements HistoryRepository using GORM.
// No aggregate tracking: ledger entries are records, not aggregates.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM history repository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Add appends a ledger entry and attaches the generated identifier to it.
func (r *GormHistoryRepository) Add(ctx context.Context, entry *parcel.HistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if entry.ID() == 0 {
		if err := entry.AttachID(dto.ID); err != nil {
			return err
		}
	}

	return nil
}

// GetAllByParcelID retrieves a parcel's ledger entries in chronological order.
func (r *GormHistoryRepository) GetAllByParcelID(ctx context.Context, parcelID int64) ([]*parcel.HistoryEntry, error) {
	var dtos []HistoryEntryDTO
	err := r.db.WithContext(ctx).
		Where("parcel_id = ?", parcelID).
		Order("changed_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*parcel.HistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
