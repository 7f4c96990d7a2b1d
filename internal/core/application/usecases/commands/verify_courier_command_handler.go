package commands

import (
	"context"
)

// VerifyCourierCommandHandler grants identity verification to a courier.
type VerifyCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewVerifyCourierCommandHandler creates a handler for courier verification.
func NewVerifyCourierCommandHandler(uowFactory CourierUoWFactory) VerifyCourierCommandHandler {
	return VerifyCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the verification command.
func (h VerifyCourierCommandHandler) Handle(ctx context.Context, cmd VerifyCourierCommand) error {
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

	courierRepo := uow.CourierRepository()

	courierEntity, err := courierRepo.GetByChatID(ctx, cmd.ChatID())
	if err != nil {
		return err
	}

	courierEntity.Verify()

	if err = courierRepo.Update(ctx, courierEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
