package queries

import (
	"errors"
	"fmt"
	"time"

	"paquexpress/internal/core/domain/model/parcel"
	"paquexpress/internal/pkg/errs"
	"paquexpress/internal/pkg/guard"
)

var ErrGetParcelHistoryQueryIsNotConstructed = errors.New(
	"GetParcelHistoryQuery must be created via NewGetParcelHistoryQuery constructor",
)

// GetParcelHistoryQuery retrieves the status ledger of a parcel in
// chronological order. Reading the entries in sequence reconstructs every
// state the parcel has held.
type GetParcelHistoryQuery struct {
	parcelID int64

	guard guard.ConstructorGuard
}

// NewGetParcelHistoryQuery creates a query to retrieve a parcel's ledger.
func NewGetParcelHistoryQuery(parcelID int64) (GetParcelHistoryQuery, error) {
	if parcelID <= 0 {
		return GetParcelHistoryQuery{}, errs.NewValueIsInvalidErrorWithCause("parcelID",
			fmt.Errorf("%d is not a valid identifier", parcelID))
	}

	return GetParcelHistoryQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelHistoryQueryIsNotConstructed)
}

// ParcelID returns the requested parcel identifier.
func (q GetParcelHistoryQuery) ParcelID() int64 { return q.parcelID }

// GetParcelHistoryQueryResponse is the read model for one ledger entry.
// Previous is nil only for the creation entry.
type GetParcelHistoryQueryResponse struct {
	ID           int64
	ParcelID     int64
	Previous     *parcel.Status
	Next         parcel.Status
	ChangedAt    time.Time
	Observations *string
}
