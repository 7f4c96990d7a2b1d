package orderrepo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/kernel"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/order"
)

func Test_OrderDTO_RoundTripPreservesState(t *testing.T) {
	point, err := kernel.NewGeoPoint(55.7558, 37.6173)
	require.NoError(t, err)
	createdAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	original, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		order.Address{Street: "Ленина 5", Entrance: "2", Floor: "5", Apartment: "10", Location: &point},
		149, createdAt,
	)
	require.NoError(t, err)

	courierID := kernel.NewUUID()
	require.NoError(t, original.Assign(courierID))

	restored, err := toDomain(fromDomain(original))
	require.NoError(t, err)

	assert.True(t, restored.IsEqual(original))
	assert.Equal(t, original.ClientID(), restored.ClientID())
	require.NotNil(t, restored.Courier())
	assert.Equal(t, courierID, *restored.Courier())
	assert.Equal(t, original.Address(), restored.Address())
	assert.Equal(t, order.StatusAssigned, restored.Status())
	assert.Equal(t, 149, restored.Price())
	assert.Equal(t, createdAt, restored.CreatedAt())
	assert.Nil(t, restored.CompletedAt())
}

func Test_OrderDTO_UngeocodedAddressStaysWithoutLocation(t *testing.T) {
	original, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		order.Address{Street: "Ленина 5", Entrance: "вход со двора", Floor: "1", Apartment: "1"},
		149, time.Now(),
	)
	require.NoError(t, err)

	restored, err := toDomain(fromDomain(original))
	require.NoError(t, err)

	assert.Nil(t, restored.Address().Location)
	assert.Nil(t, restored.Courier())
	assert.Equal(t, order.StatusCreated, restored.Status())
}
