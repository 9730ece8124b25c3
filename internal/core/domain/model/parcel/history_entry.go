package parcel

import (
	"errors"
	"fmt"
	"time"

	"paquexpress/internal/pkg/errs"
)

var (
	// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not
	// created through NewHistoryEntry or RestoreHistoryEntry.
	ErrHistoryEntryIsNotConstructed = errors.New(
		"HistoryEntry must be created via NewHistoryEntry or RestoreHistoryEntry constructor")

	// ErrHistoryEntryIDAlreadyAssigned is returned when AttachID is called on
	// an entry that already carries a persistent identifier.
	ErrHistoryEntryIDAlreadyAssigned = errors.New("history entry already has an identifier")
)

// HistoryEntry is one immutable record of a status transition in the ledger.
// The ordered sequence of entries for a parcel, read chronologically, exactly
// reconstructs the sequence of statuses the parcel has held; the parcel row
// itself is only the current projection.
//
// Previous is nil only for the synthetic creation entry. Entries are written
// in the same unit of work as the parcel update they describe and are never
// mutated or deleted afterwards.
type HistoryEntry struct {
	id           int64
	parcelID     int64
	previous     *Status
	next         Status
	changedAt    time.Time
	observations *string

	isConstructed bool
}

// NewHistoryEntry creates a ledger entry for a transition of the given parcel.
// previous is nil for the creation entry; next must be a valid status.
// The change timestamp is set to the current UTC time.
func NewHistoryEntry(parcelID int64, previous *Status, next Status, observations *string) (*HistoryEntry, error) {
	if parcelID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("parcelID",
			fmt.Errorf("%d is not a valid identifier", parcelID))
	}
	if previous != nil {
		if err := previous.Validate(); err != nil {
			return nil, err
		}
	}
	if err := next.Validate(); err != nil {
		return nil, err
	}

	return &HistoryEntry{
		parcelID:      parcelID,
		previous:      previous,
		next:          next,
		changedAt:     time.Now().UTC(),
		observations:  observations,
		isConstructed: true,
	}, nil
}

// RestoreHistoryEntry reconstructs a ledger entry from persistence.
func RestoreHistoryEntry(
	id, parcelID int64,
	previous *Status,
	next Status,
	changedAt time.Time,
	observations *string,
) (*HistoryEntry, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid identifier", id))
	}

	entry, err := NewHistoryEntry(parcelID, previous, next, observations)
	if err != nil {
		return nil, err
	}

	entry.id = id
	entry.changedAt = changedAt
	return entry, nil
}

// Validate ensures the entry was properly constructed.
func (e *HistoryEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrHistoryEntryIsNotConstructed
	}
	return nil
}

// AttachID binds the storage-assigned surrogate identifier to a fresh entry.
func (e *HistoryEntry) AttachID(id int64) error {
	if e.id != 0 {
		return ErrHistoryEntryIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid identifier", id))
	}

	e.id = id
	return nil
}

// ID returns the surrogate identifier, or zero if the entry is not yet persisted.
func (e *HistoryEntry) ID() int64 { return e.id }

// ParcelID returns the owning parcel's identifier.
func (e *HistoryEntry) ParcelID() int64 { return e.parcelID }

// Previous returns the status before the transition, nil for the creation entry.
func (e *HistoryEntry) Previous() *Status { return e.previous }

// Next returns the status after the transition.
func (e *HistoryEntry) Next() Status { return e.next }

// ChangedAt returns the transition timestamp.
func (e *HistoryEntry) ChangedAt() time.Time { return e.changedAt }

// Observations returns the optional free text describing the cause.
func (e *HistoryEntry) Observations() *string { return e.observations }
