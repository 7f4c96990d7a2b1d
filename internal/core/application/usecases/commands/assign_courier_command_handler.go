package commands

import (
	"context"
	"errors"

	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/courier"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/order"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/services"
	"github.com/RomanElektrik/musorok-bot/internal/pkg/errs"
)

var (
	// ErrNoOrderFound is returned when no pending order exists to assign.
	ErrNoOrderFound = errors.New("no order found")
	// ErrNoAvailableCouriers is returned when no verified courier is on shift.
	// The order stays in created status for a later retry.
	ErrNoAvailableCouriers = errors.New("no available couriers found")
)

// AssignmentResult reports a successful assignment back to the caller so
// both sides of the conversation can be notified.
type AssignmentResult struct {
	Order        *order.Order
	Courier      *courier.Courier
	ClientChatID int64
}

// AssignCourierCommandHandler orchestrates courier assignment. It loads the
// pending order, asks the configured picker to choose between the verified
// on-shift couriers, and updates the order within a single transaction.
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
	picker     services.CourierPicker
}

// NewAssignCourierCommandHandler creates a handler for courier assignment.
func NewAssignCourierCommandHandler(uowFactory UoWFactory, picker services.CourierPicker) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		picker:     picker,
	}
}

// Handle processes the assignment command.
// Returns ErrNoOrderFound when there is nothing to assign and
// ErrNoAvailableCouriers when every courier is off shift; the order is left
// in created status in the latter case.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) (AssignmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignmentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	clientRepo := uow.ClientRepository()
	courierRepo := uow.CourierRepository()
	orderRepo := uow.OrderRepository()

	var (
		orderEntity *order.Order
		err         error
	)
	if cmd.OrderID() != nil {
		orderEntity, err = orderRepo.Get(ctx, *cmd.OrderID())
	} else {
		orderEntity, err = orderRepo.GetFirstInCreatedStatus(ctx)
	}
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AssignmentResult{}, ErrNoOrderFound
	}
	if err != nil {
		return AssignmentResult{}, err
	}
	if orderEntity.Status() != order.StatusCreated {
		return AssignmentResult{}, ErrNoOrderFound
	}

	couriers, err := courierRepo.GetAllAvailable(ctx)
	if err != nil {
		return AssignmentResult{}, err
	}
	if len(couriers) == 0 {
		return AssignmentResult{}, ErrNoAvailableCouriers
	}

	picked, err := h.picker.Pick(orderEntity, couriers)
	if errors.Is(err, services.ErrCourierNotFound) {
		return AssignmentResult{}, ErrNoAvailableCouriers
	}
	if err != nil {
		return AssignmentResult{}, err
	}

	if err = orderEntity.Assign(picked.ID()); err != nil {
		return AssignmentResult{}, err
	}

	if err = orderRepo.Update(ctx, orderEntity); err != nil {
		return AssignmentResult{}, err
	}

	clientEntity, err := clientRepo.Get(ctx, orderEntity.ClientID())
	if err != nil {
		return AssignmentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignmentResult{}, err
	}

	return AssignmentResult{
		Order:        orderEntity,
		Courier:      picked,
		ClientChatID: clientEntity.ChatID(),
	}, nil
}
