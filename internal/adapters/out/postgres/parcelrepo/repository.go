package parcelrepo

import (
	"context"
	"errors"

	"paquexpress/internal/core/domain/model/parcel"
	"paquexpress/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel and attaches the generated identifier to the aggregate.
// A tracking code collision surfaces as errs.ErrValueAlreadyExists.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return errs.NewValueAlreadyExistsError("trackingCode", aggregate.TrackingCode())
		}
		return err
	}

	if aggregate.ID() == 0 {
		if err := aggregate.AttachID(dto.ID); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing parcel, guarded by the status the caller observed
// when it read the row. When the stored status no longer matches, nothing is
// written and errs.ErrConcurrencyConflict is returned: the caller's transition
// was computed against stale state.
func (r *GormParcelRepository) Update(
	ctx context.Context,
	aggregate *parcel.Parcel,
	expectedStatus parcel.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expectedStatus.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expectedStatus)).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("parcelId", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a parcel by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id int64) (*parcel.Parcel, error) {
	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcelId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInPendingStatus retrieves parcels awaiting assignment, oldest first.
func (r *GormParcelRepository) GetAllInPendingStatus(ctx context.Context) ([]*parcel.Parcel, error) {
	var dtos []ParcelDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", int(parcel.Pending)).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}

// CountActiveByAgent returns the number of assigned or en-route parcels per agent.
func (r *GormParcelRepository) CountActiveByAgent(ctx context.Context) (map[int64]int, error) {
	rows, err := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Select("agent_id, COUNT(id) AS active").
		Where("agent_id IS NOT NULL AND status IN (?, ?)", int(parcel.Assigned), int(parcel.EnRoute)).
		Group("agent_id").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	load := make(map[int64]int)
	for rows.Next() {
		var agentID int64
		var active int
		if err = rows.Scan(&agentID, &active); err != nil {
			return nil, err
		}
		load[agentID] = active
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return load, nil
}
