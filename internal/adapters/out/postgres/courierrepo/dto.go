// Package courierrepo implements courier persistence over GORM, mapping the
// courier aggregate to and from its relational representation.
package courierrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/courier"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/kernel"
)

// CourierDTO is the database row for a courier aggregate. Profile fields
// stay empty strings until the corresponding registration step fills them.
type CourierDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ChatID         int64      `gorm:"uniqueIndex;not null"`
	FullName       string     `gorm:"type:varchar(255)"`
	Phone          string     `gorm:"type:varchar(32)"`
	City           string     `gorm:"type:varchar(255)"`
	District       string     `gorm:"type:varchar(255)"`
	CardNumber     string     `gorm:"type:varchar(32)"`
	Verified       bool       `gorm:"not null;index"`
	Available      bool       `gorm:"not null;index"`
	GeoLatitude    *float64   `gorm:"type:double precision"`
	GeoLongitude   *float64   `gorm:"type:double precision"`
	GeoUpdatedAt   *time.Time
	CurrentOrderID *uuid.UUID `gorm:"type:uuid;index"`
	Rating         float64    `gorm:"not null;default:0"`
}

// TableName overrides GORM's default naming to use "couriers".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier aggregate to its database row.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	dto := CourierDTO{
		ID:         aggregate.ID().Bytes(),
		ChatID:     aggregate.ChatID(),
		FullName:   aggregate.FullName(),
		Phone:      aggregate.Phone(),
		City:       aggregate.City(),
		District:   aggregate.District(),
		CardNumber: aggregate.CardNumber(),
		Verified:   aggregate.IsVerified(),
		Available:  aggregate.IsAvailable(),
		Rating:     aggregate.Rating(),
	}

	if geo := aggregate.Geolocation(); geo != nil {
		latitude := geo.Point.Latitude()
		longitude := geo.Point.Longitude()
		updatedAt := geo.UpdatedAt
		dto.GeoLatitude = &latitude
		dto.GeoLongitude = &longitude
		dto.GeoUpdatedAt = &updatedAt
	}

	if orderID := aggregate.CurrentOrderID(); orderID != nil {
		raw := orderID.Bytes()
		dto.CurrentOrderID = &raw
	}

	return dto
}

// toDomain reconstructs the courier aggregate from its database row.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var geolocation *courier.Geolocation
	if dto.GeoLatitude != nil && dto.GeoLongitude != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.GeoLatitude, *dto.GeoLongitude)
		if pointErr != nil {
			return nil, pointErr
		}

		geolocation = &courier.Geolocation{Point: point}
		if dto.GeoUpdatedAt != nil {
			geolocation.UpdatedAt = *dto.GeoUpdatedAt
		}
	}

	var currentOrderID *kernel.UUID
	if dto.CurrentOrderID != nil {
		orderID, orderErr := kernel.UUIDFromBytes((*dto.CurrentOrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		currentOrderID = &orderID
	}

	return courier.RestoreCourier(
		id,
		dto.ChatID,
		dto.FullName,
		dto.Phone,
		dto.City,
		dto.District,
		dto.CardNumber,
		dto.Verified,
		dto.Available,
		geolocation,
		currentOrderID,
		dto.Rating,
	)
}
