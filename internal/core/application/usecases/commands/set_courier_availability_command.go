package commands

import (
	"errors"

	"github.com/RomanElektrik/musorok-bot/internal/pkg/guard"
)

var ErrSetCourierAvailabilityCommandIsNotConstructed = errors.New(
	"SetCourierAvailabilityCommand must be created via NewSetCourierAvailabilityCommand constructor",
)

// SetCourierAvailabilityCommand puts a courier on or off shift.
type SetCourierAvailabilityCommand struct { //nolint:recvcheck //using for validation
	chatID    int64
	available bool

	guard guard.ConstructorGuard
}

// NewSetCourierAvailabilityCommand creates a command to toggle a courier's
// shift state.
func NewSetCourierAvailabilityCommand(chatID int64, available bool) (SetCourierAvailabilityCommand, error) {
	command := SetCourierAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := command.setChatID(chatID); err != nil {
		return SetCourierAvailabilityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCourierAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetCourierAvailabilityCommandIsNotConstructed)
}

// ChatID returns the external user ID from the command.
func (c SetCourierAvailabilityCommand) ChatID() int64 {
	return c.chatID
}

// Available returns the desired shift state.
func (c SetCourierAvailabilityCommand) Available() bool {
	return c.available
}

func (c *SetCourierAvailabilityCommand) setChatID(chatID int64) error {
	if chatID == 0 {
		return ErrChatIDIsRequired
	}

	c.chatID = chatID
	return nil
}
