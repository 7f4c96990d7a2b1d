// Package ports defines the contracts between the application core and the
// infrastructure adapters: aggregate repositories, the unit of work, the
// conversation session store, geocoding, and outbound messaging.
package ports

import (
	"context"

	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/courier"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetByChatID retrieves the courier registered under the external
	// user ID, or errs.ObjectNotFoundError when none exists.
	GetByChatID(ctx context.Context, chatID int64) (*courier.Courier, error)

	// GetAllAvailable retrieves all couriers with verified and available
	// both set, in storage order. Geolocation plays no part in the filter.
	GetAllAvailable(ctx context.Context) ([]*courier.Courier, error)
}
