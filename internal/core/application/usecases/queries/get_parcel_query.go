// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
//
// Query handlers read committed state directly from the database, so a caller
// always observes the latest committed transition, never a cached one.
package queries

import (
	"errors"
	"fmt"
	"time"

	"paquexpress/internal/core/domain/model/parcel"
	"paquexpress/internal/pkg/errs"
	"paquexpress/internal/pkg/guard"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

// GetParcelQuery retrieves the full current state of a single parcel.
type GetParcelQuery struct {
	parcelID int64

	guard guard.ConstructorGuard
}

// NewGetParcelQuery creates a query to retrieve a parcel by identifier.
func NewGetParcelQuery(parcelID int64) (GetParcelQuery, error) {
	if parcelID <= 0 {
		return GetParcelQuery{}, errs.NewValueIsInvalidErrorWithCause("parcelID",
			fmt.Errorf("%d is not a valid identifier", parcelID))
	}

	return GetParcelQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// ParcelID returns the requested parcel identifier.
func (q GetParcelQuery) ParcelID() int64 { return q.parcelID }

// GetParcelQueryResponse is the read model for a single parcel.
// Optional columns stay nil when the underlying row holds NULL.
type GetParcelQueryResponse struct {
	ID                 int64
	TrackingCode       string
	DestinationAddress string
	Recipient          string
	RecipientPhone     *string
	Instructions       *string
	WeightKg           *float64
	Status             parcel.Status
	AgentID            *int64
	CreatedAt          time.Time
	AssignedAt         *time.Time
	DeliveredAt        *time.Time
	DeliveryLatitude   *float64
	DeliveryLongitude  *float64
	EvidencePhoto      *string
	Observations       *string
}
