package commands

import (
	"context"
)

// SetCourierAvailabilityCommandHandler toggles a courier's shift state.
// Going on shift requires verification; courier.ErrCourierNotVerified is
// passed through so the conversation can redirect into registration.
type SetCourierAvailabilityCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewSetCourierAvailabilityCommandHandler creates a handler for availability toggles.
func NewSetCourierAvailabilityCommandHandler(uowFactory CourierUoWFactory) SetCourierAvailabilityCommandHandler {
	return SetCourierAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability command.
func (h SetCourierAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetCourierAvailabilityCommand) error {
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

	if cmd.Available() {
		if err = courierEntity.MarkAvailable(); err != nil {
			return err
		}
	} else {
		courierEntity.MarkUnavailable()
	}

	if err = courierRepo.Update(ctx, courierEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
