// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. Implements the repository pattern for the parcel
// aggregate, handling conversion between domain entities and database rows.
package parcelrepo

import (
	"time"

	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/domain/model/parcel"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// The tracking code carries a unique index backing the domain's uniqueness
// rule; status and agent are indexed for the dispatch and workload queries.
type ParcelDTO struct {
	ID                 int64    `gorm:"primaryKey;autoIncrement"`
	TrackingCode       string   `gorm:"type:varchar(50);uniqueIndex;not null"`
	DestinationAddress string   `gorm:"not null"`
	Recipient          string   `gorm:"type:varchar(255);not null"`
	RecipientPhone     *string  `gorm:"type:varchar(20)"`
	Instructions       *string
	WeightKg           *float64
	Status             int    `gorm:"index;not null"`
	AgentID            *int64 `gorm:"index"`
	CreatedAt          time.Time
	AssignedAt         *time.Time
	DeliveredAt        *time.Time
	DeliveryLatitude   *float64
	DeliveryLongitude  *float64
	EvidencePhoto      *string
	Observations       *string
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	dto := ParcelDTO{
		ID:                 aggregate.ID(),
		TrackingCode:       aggregate.TrackingCode(),
		DestinationAddress: aggregate.DestinationAddress(),
		Recipient:          aggregate.Recipient(),
		RecipientPhone:     aggregate.RecipientPhone(),
		Instructions:       aggregate.Instructions(),
		WeightKg:           aggregate.WeightKg(),
		Status:             int(aggregate.Status()),
		AgentID:            aggregate.AgentID(),
		CreatedAt:          aggregate.CreatedAt(),
		AssignedAt:         aggregate.AssignedAt(),
		DeliveredAt:        aggregate.DeliveredAt(),
		EvidencePhoto:      aggregate.EvidencePhoto(),
		Observations:       aggregate.Observations(),
	}

	if point := aggregate.DeliveryPoint(); point != nil {
		lat, lng := point.Latitude(), point.Longitude()
		dto.DeliveryLatitude = &lat
		dto.DeliveryLongitude = &lng
	}

	return dto
}

// toDomain converts a database row to a parcel aggregate using RestoreParcel,
// re-validating every invariant on the way.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	var point *kernel.GeoPoint
	if dto.DeliveryLatitude != nil && dto.DeliveryLongitude != nil {
		p, err := kernel.NewGeoPoint(*dto.DeliveryLatitude, *dto.DeliveryLongitude)
		if err != nil {
			return nil, err
		}
		point = &p
	}

	return parcel.RestoreParcel(
		dto.ID,
		dto.TrackingCode,
		dto.DestinationAddress,
		dto.Recipient,
		dto.RecipientPhone,
		dto.Instructions,
		dto.WeightKg,
		parcel.Status(dto.Status),
		dto.AgentID,
		dto.CreatedAt,
		dto.AssignedAt,
		dto.DeliveredAt,
		point,
		dto.EvidencePhoto,
		dto.Observations,
	)
}
