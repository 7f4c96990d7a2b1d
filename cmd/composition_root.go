package cmd

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/RomanElektrik/musorok-bot/internal/adapters/out/postgres"
	"github.com/RomanElektrik/musorok-bot/internal/adapters/out/sessions"
	"github.com/RomanElektrik/musorok-bot/internal/core/application/usecases/commands"
	"github.com/RomanElektrik/musorok-bot/internal/core/application/usecases/queries"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/courier"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/services"
	"github.com/RomanElektrik/musorok-bot/internal/core/ports"
)

// CompositionRoot wires the infrastructure into the application layer. Each
// Create method builds a fresh handler over the shared connection.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	log        *slog.Logger
}

// NewCompositionRoot creates the wiring over the given database connection.
func NewCompositionRoot(config Config, gormDB *gorm.DB, log *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		log:        log,
	}
}

func (c *CompositionRoot) CreateCreateClientCommandHandler() commands.CreateClientCommandHandler {
	var f commands.ClientUoWFactory = FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateClientCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	return commands.NewCreateCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCourierProfileCommandHandler() commands.UpdateCourierProfileCommandHandler {
	return commands.NewUpdateCourierProfileCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateVerifyCourierCommandHandler() commands.VerifyCourierCommandHandler {
	return commands.NewVerifyCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateSetCourierAvailabilityCommandHandler() commands.SetCourierAvailabilityCommandHandler {
	return commands.NewSetCourierAvailabilityCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCourierLocationCommandHandler() commands.UpdateCourierLocationCommandHandler {
	return commands.NewUpdateCourierLocationCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.ClientOrderUoWFactory = FuncClientOrderUoWFactory(func() commands.ClientOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateProgressOrderCommandHandler() commands.ProgressOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProgressOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f, c.CreateCourierPicker())
}

func (c *CompositionRoot) CreateGetCourierOrdersQueryHandler() queries.GetCourierOrdersQueryHandler {
	return queries.NewGetCourierOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierBalanceQueryHandler() queries.GetCourierBalanceQueryHandler {
	return queries.NewGetCourierBalanceQueryHandler(c.gormDB)
}

// CreateCourierPicker selects the assignment strategy. The default picks
// the first available courier; ASSIGN_STRATEGY=nearest ranks by distance to
// the order's geocoded address.
func (c *CompositionRoot) CreateCourierPicker() services.CourierPicker {
	if c.config.AssignStrategy == AssignStrategyNearest {
		return services.NewNearestCourierPicker()
	}
	return services.NewFirstAvailablePicker()
}

// CreateSessionStore selects the session backend. Redis is used when
// SESSION_BACKEND=redis; everything else falls back to the in-process map.
func (c *CompositionRoot) CreateSessionStore() ports.SessionStore {
	if c.config.SessionBackend == SessionBackendRedis {
		client := redis.NewClient(&redis.Options{Addr: c.config.RedisAddr})
		return sessions.NewRedisStore(client)
	}
	return sessions.NewMemoryStore()
}

// CreateCourierReader exposes non-transactional courier reads to the
// conversation layer.
func (c *CompositionRoot) CreateCourierReader() *CourierReader {
	return &CourierReader{uowFactory: c.uowFactory}
}

// CourierReader reads couriers outside a transaction. A unit of work that
// was never begun hands out repositories on the main connection.
type CourierReader struct {
	uowFactory *postgres.GormUnitOfWorkFactory
}

// GetByChatID loads the courier registered under the external user ID.
func (r *CourierReader) GetByChatID(ctx context.Context, chatID int64) (*courier.Courier, error) {
	return r.uowFactory.Create().CourierRepository().GetByChatID(ctx, chatID)
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncClientOrderUoWFactory func() commands.ClientOrderUoW

func (f FuncClientOrderUoWFactory) Create() commands.ClientOrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
