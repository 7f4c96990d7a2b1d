package commands

import (
	"context"
	"errors"

	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/client"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/kernel"
	"github.com/RomanElektrik/musorok-bot/internal/pkg/errs"
)

// CreateClientCommandHandler registers customers on first contact.
// The operation is idempotent: a chat ID that already has a client record
// leaves storage untouched.
type CreateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewCreateClientCommandHandler creates a handler for customer registration.
func NewCreateClientCommandHandler(uowFactory ClientUoWFactory) CreateClientCommandHandler {
	return CreateClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the client creation command.
func (h CreateClientCommandHandler) Handle(ctx context.Context, cmd CreateClientCommand) error {
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

	_, err := clientRepo.GetByChatID(ctx, cmd.ChatID())
	if err == nil {
		return uow.Commit(ctx)
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	clientEntity, err := client.NewClient(kernel.NewUUID(), cmd.ChatID())
	if err != nil {
		return err
	}

	if err = clientRepo.Add(ctx, clientEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
