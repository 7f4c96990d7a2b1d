package commands

import (
	"context"
)

// UpdateCourierProfileCommandHandler persists registration-step profile
// changes to the courier aggregate.
type UpdateCourierProfileCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewUpdateCourierProfileCommandHandler creates a handler for profile updates.
func NewUpdateCourierProfileCommandHandler(uowFactory CourierUoWFactory) UpdateCourierProfileCommandHandler {
	return UpdateCourierProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile update command.
func (h UpdateCourierProfileCommandHandler) Handle(ctx context.Context, cmd UpdateCourierProfileCommand) error {
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

	if cmd.FullName() != nil {
		if err = courierEntity.SetFullName(*cmd.FullName()); err != nil {
			return err
		}
	}
	if cmd.CityText() != nil {
		if err = courierEntity.SetCity(*cmd.CityText()); err != nil {
			return err
		}
	}
	if cmd.Phone() != nil {
		if err = courierEntity.SetPhone(*cmd.Phone()); err != nil {
			return err
		}
	}
	if cmd.CardNumber() != nil {
		courierEntity.SetCardNumber(*cmd.CardNumber())
	}

	if err = courierRepo.Update(ctx, courierEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
