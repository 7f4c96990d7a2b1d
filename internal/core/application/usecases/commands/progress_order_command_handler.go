package commands

import (
	"context"
	"time"
)

// ProgressOrderCommandHandler applies lifecycle transitions to orders.
// Invalid transitions surface as domain errors from the order aggregate.
type ProgressOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewProgressOrderCommandHandler creates a handler for order lifecycle transitions.
func NewProgressOrderCommandHandler(uowFactory OrderUoWFactory) ProgressOrderCommandHandler {
	return ProgressOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the progress command.
func (h ProgressOrderCommandHandler) Handle(ctx context.Context, cmd ProgressOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	orderEntity, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	switch cmd.Action() {
	case OrderActionStart:
		err = orderEntity.Start()
	case OrderActionComplete:
		err = orderEntity.Complete(h.now())
	case OrderActionCancel:
		err = orderEntity.Cancel()
	default:
		err = ErrUnknownOrderAction
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
