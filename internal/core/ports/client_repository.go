package ports

import (
	"context"

	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/client"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/kernel"
)

// ClientRepository defines the persistence contract for client aggregates.
type ClientRepository interface {
	// Add persists a new client aggregate to storage.
	Add(ctx context.Context, client *client.Client) error

	// Update persists changes to an existing client aggregate.
	Update(ctx context.Context, client *client.Client) error

	// Get retrieves a client aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)

	// GetByChatID retrieves the client registered under the external
	// user ID, or errs.ObjectNotFoundError when none exists.
	GetByChatID(ctx context.Context, chatID int64) (*client.Client, error)
}
