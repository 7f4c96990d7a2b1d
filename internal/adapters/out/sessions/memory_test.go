package sessions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RomanElektrik/musorok-bot/internal/core/ports"
)

func Test_MemoryStore_MissingKeyReturnsZeroSession(t *testing.T) {
	store := NewMemoryStore()

	session, err := store.Get(context.Background(), ports.RoleClient, 42)

	require.NoError(t, err)
	assert.Equal(t, ports.Session{}, session)
}

func Test_MemoryStore_PutThenGet(t *testing.T) {
	store := NewMemoryStore()
	want := ports.Session{
		Step:  "confirm",
		Draft: ports.DraftAddress{Street: "Ленина 5", Entrance: "2", Floor: "5", Apartment: "10"},
		Price: 149,
	}

	require.NoError(t, store.Put(context.Background(), ports.RoleClient, 42, want))

	got, err := store.Get(context.Background(), ports.RoleClient, 42)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func Test_MemoryStore_RolesAreIsolated(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Put(context.Background(), ports.RoleClient, 42, ports.Session{Step: "address"}))

	courierSession, err := store.Get(context.Background(), ports.RoleCourier, 42)

	require.NoError(t, err)
	assert.Equal(t, ports.Session{}, courierSession)
}

func Test_MemoryStore_DeleteResetsSession(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Put(context.Background(), ports.RoleCourier, 42, ports.Session{Step: "passport"}))

	require.NoError(t, store.Delete(context.Background(), ports.RoleCourier, 42))
	require.NoError(t, store.Delete(context.Background(), ports.RoleCourier, 42))

	session, err := store.Get(context.Background(), ports.RoleCourier, 42)
	require.NoError(t, err)
	assert.Equal(t, ports.Session{}, session)
}
