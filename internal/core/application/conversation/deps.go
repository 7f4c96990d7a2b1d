package conversation

import (
	"context"
	"time"

	"github.com/RomanElektrik/musorok-bot/internal/core/application/usecases/commands"
	"github.com/RomanElektrik/musorok-bot/internal/core/application/usecases/queries"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/courier"
)

// Consumer-side contracts for the use case handlers the flows invoke.
// Each mirrors the Handle signature of one command or query handler so the
// concrete handlers satisfy them without adapters.
type (
	// ClientRegistrar registers a customer on first contact.
	ClientRegistrar interface {
		Handle(ctx context.Context, cmd commands.CreateClientCommand) error
	}

	// OrderPlacer places a confirmed pickup order.
	OrderPlacer interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}

	// CourierRegistrar registers a courier on first contact.
	CourierRegistrar interface {
		Handle(ctx context.Context, cmd commands.CreateCourierCommand) error
	}

	// ProfileUpdater applies a registration step's profile data.
	ProfileUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateCourierProfileCommand) error
	}

	// CourierVerifier grants identity verification.
	CourierVerifier interface {
		Handle(ctx context.Context, cmd commands.VerifyCourierCommand) error
	}

	// AvailabilitySetter toggles a courier's shift state.
	AvailabilitySetter interface {
		Handle(ctx context.Context, cmd commands.SetCourierAvailabilityCommand) error
	}

	// LocationUpdater records a courier's shared position.
	LocationUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateCourierLocationCommand) error
	}

	// OrderAssigner assigns a courier to a pending order.
	OrderAssigner interface {
		Handle(ctx context.Context, cmd commands.AssignCourierCommand) (commands.AssignmentResult, error)
	}

	// CourierOrdersReader lists a courier's recent orders.
	CourierOrdersReader interface {
		Handle(ctx context.Context, query queries.GetCourierOrdersQuery) ([]queries.GetCourierOrdersQueryResponse, error)
	}

	// CourierBalanceReader reports a courier's completed-order earnings.
	CourierBalanceReader interface {
		Handle(ctx context.Context, query queries.GetCourierBalanceQuery) (queries.GetCourierBalanceQueryResponse, error)
	}

	// CourierReader loads a courier record outside a transaction, used by
	// the courier flow to branch on the persisted verified flag.
	CourierReader interface {
		GetByChatID(ctx context.Context, chatID int64) (*courier.Courier, error)
	}

	// Scheduler runs a function after a delay. The flows use it for the
	// deferred assignment and menu-redisplay follow-ups so pending work is
	// owned by the runtime and cancellable on shutdown.
	Scheduler interface {
		AfterFunc(d time.Duration, fn func())
	}
)
