package commands

import (
	"context"
	"time"

	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/order"
)

// CreateOrderCommandHandler places a new order and links it to the owning
// client's history in a single transaction.
type CreateOrderCommandHandler struct {
	uowFactory ClientOrderUoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory ClientOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the order creation command. The customer must already be
// registered; the order is created in created status with no courier.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	clientRepo := uow.ClientRepository()
	orderRepo := uow.OrderRepository()

	clientEntity, err := clientRepo.GetByChatID(ctx, cmd.ChatID())
	if err != nil {
		return err
	}

	orderEntity, err := order.NewOrder(cmd.OrderID(), clientEntity.ID(), cmd.Address(), cmd.Price(), h.now())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, orderEntity); err != nil {
		return err
	}

	if err = clientEntity.AppendOrder(orderEntity.ID()); err != nil {
		return err
	}
	clientEntity.AddAddress(cmd.Address())

	if err = clientRepo.Update(ctx, clientEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
