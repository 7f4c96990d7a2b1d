package commands_test

import (
	"context"
	"testing"

	"github.com/RomanElektrik/musorok-bot/internal/core/application/usecases/commands"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/client"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/kernel"
	"github.com/RomanElektrik/musorok-bot/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateClientCommandHandler_Handle_NewClient(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewCreateClientCommand(42)

	repo := new(MockClientRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(repo).Once(),
		repo.On("GetByChatID", ctx, int64(42)).
			Return(nil, errs.NewObjectNotFoundError("chatID", int64(42))).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*client.Client")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClientUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateClientCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateClientCommandHandler_Handle_ExistingClientIsNoop(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewCreateClientCommand(42)
	existing, _ := client.NewClient(kernel.NewUUID(), 42)

	repo := new(MockClientRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(repo).Once(),
		repo.On("GetByChatID", ctx, int64(42)).Return(existing, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockClientUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateClientCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateClientCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewCreateClientCommandHandler(new(MockClientUoWFactory))

	err := h.Handle(context.Background(), commands.CreateClientCommand{})

	require.Error(t, err)
}
