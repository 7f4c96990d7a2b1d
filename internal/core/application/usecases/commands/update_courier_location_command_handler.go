package commands

import (
	"context"
	"time"
)

// UpdateCourierLocationCommandHandler persists a courier's shared position
// with the time it was reported.
type UpdateCourierLocationCommandHandler struct {
	uowFactory CourierUoWFactory
	now        func() time.Time
}

// NewUpdateCourierLocationCommandHandler creates a handler for location updates.
func NewUpdateCourierLocationCommandHandler(uowFactory CourierUoWFactory) UpdateCourierLocationCommandHandler {
	return UpdateCourierLocationCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the location update command.
func (h UpdateCourierLocationCommandHandler) Handle(ctx context.Context, cmd UpdateCourierLocationCommand) error {
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

	if err = courierEntity.UpdateLocation(cmd.Point(), h.now()); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, courierEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
