// Package orderrepo implements order persistence over GORM, mapping the
// order aggregate to and from its relational representation.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/kernel"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/order"
)

// OrderDTO is the database row for an order aggregate. The pickup address
// is flattened into the row; latitude and longitude stay NULL when the
// address was never geocoded.
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	CourierID   *uuid.UUID `gorm:"type:uuid;index"`
	Street      string     `gorm:"type:varchar(255);not null"`
	HouseNumber string     `gorm:"type:varchar(32)"`
	Entrance    string     `gorm:"type:varchar(255)"`
	Floor       string     `gorm:"type:varchar(32)"`
	Apartment   string     `gorm:"type:varchar(32)"`
	Latitude    *float64   `gorm:"type:double precision"`
	Longitude   *float64   `gorm:"type:double precision"`
	Status      string     `gorm:"type:varchar(16);not null;index"`
	Price       int        `gorm:"not null"`
	CreatedAt   time.Time  `gorm:"not null;index"`
	CompletedAt *time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database row.
func fromDomain(aggregate *order.Order) OrderDTO {
	address := aggregate.Address()

	dto := OrderDTO{
		ID:          aggregate.ID().Bytes(),
		ClientID:    aggregate.ClientID().Bytes(),
		Street:      address.Street,
		HouseNumber: address.HouseNumber,
		Entrance:    address.Entrance,
		Floor:       address.Floor,
		Apartment:   address.Apartment,
		Status:      string(aggregate.Status()),
		Price:       aggregate.Price(),
		CreatedAt:   aggregate.CreatedAt(),
		CompletedAt: aggregate.CompletedAt(),
	}

	if courierID := aggregate.Courier(); courierID != nil {
		raw := courierID.Bytes()
		dto.CourierID = &raw
	}

	if address.Location != nil {
		latitude := address.Location.Latitude()
		longitude := address.Location.Longitude()
		dto.Latitude = &latitude
		dto.Longitude = &longitude
	}

	return dto
}

// toDomain reconstructs the order aggregate from its database row.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	address := order.Address{
		Street:      dto.Street,
		HouseNumber: dto.HouseNumber,
		Entrance:    dto.Entrance,
		Floor:       dto.Floor,
		Apartment:   dto.Apartment,
	}
	if dto.Latitude != nil && dto.Longitude != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if pointErr != nil {
			return nil, pointErr
		}
		address.Location = &point
	}

	return order.RestoreOrder(
		id,
		clientID,
		address,
		dto.Price,
		order.Status(dto.Status),
		courierID,
		dto.CreatedAt,
		dto.CompletedAt,
	)
}
