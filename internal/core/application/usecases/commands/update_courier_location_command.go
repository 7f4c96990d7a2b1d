package commands

import (
	"errors"

	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/kernel"
	"github.com/RomanElektrik/musorok-bot/internal/pkg/guard"
)

var ErrUpdateCourierLocationCommandIsNotConstructed = errors.New(
	"UpdateCourierLocationCommand must be created via NewUpdateCourierLocationCommand constructor",
)

// UpdateCourierLocationCommand records a courier's shared position.
type UpdateCourierLocationCommand struct { //nolint:recvcheck //using for validation
	chatID int64
	point  kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateCourierLocationCommand creates a command carrying the courier's
// reported coordinates.
func NewUpdateCourierLocationCommand(chatID int64, latitude, longitude float64) (UpdateCourierLocationCommand, error) {
	command := UpdateCourierLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setChatID(chatID); err != nil {
		return UpdateCourierLocationCommand{}, err
	}

	point, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return UpdateCourierLocationCommand{}, err
	}
	command.point = point

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCourierLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierLocationCommandIsNotConstructed)
}

// ChatID returns the external user ID from the command.
func (c UpdateCourierLocationCommand) ChatID() int64 {
	return c.chatID
}

// Point returns the reported coordinates.
func (c UpdateCourierLocationCommand) Point() kernel.GeoPoint {
	return c.point
}

func (c *UpdateCourierLocationCommand) setChatID(chatID int64) error {
	if chatID == 0 {
		return ErrChatIDIsRequired
	}

	c.chatID = chatID
	return nil
}
