package commands

import (
	"errors"
	"fmt"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/pkg/errs"
	"paquexpress/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents a delivery confirmation with the point of
// delivery and optional evidence. Coordinates are validated at construction,
// before any storage is touched.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	parcelID      int64
	point         kernel.GeoPoint
	evidencePhoto *string
	observations  *string

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to confirm a parcel delivery.
func NewConfirmDeliveryCommand(
	parcelID int64,
	latitude, longitude float64,
	evidencePhoto, observations *string,
) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		evidencePhoto: evidencePhoto,
		observations:  observations,
		guard:         guard.NewConstructorGuard(),
	}

	point, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return ConfirmDeliveryCommand{}, err
	}
	cmd.point = point

	if err := cmd.setParcelID(parcelID); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// ParcelID returns the parcel being delivered.
func (c ConfirmDeliveryCommand) ParcelID() int64 { return c.parcelID }

// Point returns the validated delivery coordinates.
func (c ConfirmDeliveryCommand) Point() kernel.GeoPoint { return c.point }

// EvidencePhoto returns the optional evidence blob reference.
func (c ConfirmDeliveryCommand) EvidencePhoto() *string { return c.evidencePhoto }

// Observations returns the optional delivery observations.
func (c ConfirmDeliveryCommand) Observations() *string { return c.observations }

func (c *ConfirmDeliveryCommand) setParcelID(parcelID int64) error {
	if parcelID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("parcelID",
			fmt.Errorf("%d is not a valid identifier", parcelID))
	}

	c.parcelID = parcelID
	return nil
}
