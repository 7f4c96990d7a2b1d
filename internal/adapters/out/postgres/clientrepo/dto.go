// Package clientrepo implements client persistence over GORM, mapping the
// client aggregate to and from its relational representation.
package clientrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/client"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/kernel"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/order"
)

// ClientDTO is the database row for a client aggregate. Saved addresses
// live in a child table; the order history is derived from the orders table
// rather than duplicated here.
type ClientDTO struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey"`
	ChatID    int64        `gorm:"uniqueIndex;not null"`
	Phone     string       `gorm:"type:varchar(32)"`
	Addresses []AddressDTO `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "clients".
func (ClientDTO) TableName() string {
	return "clients"
}

// AddressDTO is one saved pickup address of a client.
type AddressDTO struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	ClientID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Street      string    `gorm:"type:varchar(255);not null"`
	HouseNumber string    `gorm:"type:varchar(32)"`
	Entrance    string    `gorm:"type:varchar(255)"`
	Floor       string    `gorm:"type:varchar(32)"`
	Apartment   string    `gorm:"type:varchar(32)"`
	Latitude    *float64  `gorm:"type:double precision"`
	Longitude   *float64  `gorm:"type:double precision"`
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming to use "client_addresses".
func (AddressDTO) TableName() string {
	return "client_addresses"
}

// fromDomain converts a client aggregate to its database row.
func fromDomain(aggregate *client.Client) ClientDTO {
	clientID := aggregate.ID().Bytes()
	addresses := aggregate.Addresses()

	addressDTOs := make([]AddressDTO, 0, len(addresses))
	for _, address := range addresses {
		dto := AddressDTO{
			ClientID:    clientID,
			Street:      address.Street,
			HouseNumber: address.HouseNumber,
			Entrance:    address.Entrance,
			Floor:       address.Floor,
			Apartment:   address.Apartment,
		}
		if address.Location != nil {
			latitude := address.Location.Latitude()
			longitude := address.Location.Longitude()
			dto.Latitude = &latitude
			dto.Longitude = &longitude
		}
		addressDTOs = append(addressDTOs, dto)
	}

	return ClientDTO{
		ID:        clientID,
		ChatID:    aggregate.ChatID(),
		Phone:     aggregate.Phone(),
		Addresses: addressDTOs,
	}
}

// toDomain reconstructs the client aggregate from its database row and the
// identifiers of its orders.
func toDomain(dto ClientDTO, orderIDs []kernel.UUID) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	addresses := make([]order.Address, 0, len(dto.Addresses))
	for _, addressDTO := range dto.Addresses {
		address := order.Address{
			Street:      addressDTO.Street,
			HouseNumber: addressDTO.HouseNumber,
			Entrance:    addressDTO.Entrance,
			Floor:       addressDTO.Floor,
			Apartment:   addressDTO.Apartment,
		}
		if addressDTO.Latitude != nil && addressDTO.Longitude != nil {
			point, pointErr := kernel.NewGeoPoint(*addressDTO.Latitude, *addressDTO.Longitude)
			if pointErr != nil {
				return nil, pointErr
			}
			address.Location = &point
		}
		addresses = append(addresses, address)
	}

	return client.RestoreClient(id, dto.ChatID, dto.Phone, addresses, orderIDs)
}
