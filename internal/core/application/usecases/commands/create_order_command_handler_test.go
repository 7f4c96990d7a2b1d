package commands_test

import (
	"context"
	"testing"

	"github.com/RomanElektrik/musorok-bot/internal/core/application/usecases/commands"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/client"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/kernel"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/order"
	"github.com/RomanElektrik/musorok-bot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	address := order.Address{Street: "Ленина 10"}
	cmd, _ := commands.NewCreateOrderCommand(42, address, 149)
	existing, _ := client.NewClient(kernel.NewUUID(), 42)

	clientRepo := new(MockClientRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		clientRepo.On("GetByChatID", ctx, int64(42)).Return(existing, nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		clientRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClientOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)

	// The placed order lands in the client's history.
	require.Len(t, existing.OrderIDs(), 1)
	assert.True(t, existing.OrderIDs()[0].IsEqual(cmd.OrderID()))
	require.Len(t, existing.Addresses(), 1)

	addedOrder := orderRepo.Calls[0].Arguments.Get(1).(*order.Order)
	assert.True(t, addedOrder.ID().IsEqual(cmd.OrderID()))
	assert.Equal(t, order.StatusCreated, addedOrder.Status())
	assert.True(t, addedOrder.ClientID().IsEqual(existing.ID()))

	clientRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownClient(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewCreateOrderCommand(42, order.Address{Street: "Ленина 10"}, 149)

	clientRepo := new(MockClientRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		clientRepo.On("GetByChatID", ctx, int64(42)).
			Return(nil, errs.NewObjectNotFoundError("chatID", int64(42))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClientOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewCreateOrderCommandHandler(new(MockClientOrderUoWFactory))

	err := h.Handle(context.Background(), commands.CreateOrderCommand{})

	require.Error(t, err)
}
