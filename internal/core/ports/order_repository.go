package ports

import (
	"context"

	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/kernel"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstInCreatedStatus retrieves the oldest order still in created
	// status. Used by assignment to pick up pending orders.
	GetFirstInCreatedStatus(ctx context.Context) (*order.Order, error)

	// GetAllInCreatedStatus retrieves every order still waiting for a
	// courier, oldest first. Used by the assignment retry job.
	GetAllInCreatedStatus(ctx context.Context) ([]*order.Order, error)
}
