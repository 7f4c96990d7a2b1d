package commands

import (
	"errors"

	"github.com/RomanElektrik/musorok-bot/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand registers a courier on first contact with the courier
// agent. The new courier starts unverified and unavailable; issuing the
// command for an already known chat ID is a no-op.
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	chatID int64

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a courier by their
// external user ID.
func NewCreateCourierCommand(chatID int64) (CreateCourierCommand, error) {
	command := CreateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setChatID(chatID); err != nil {
		return CreateCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// ChatID returns the external user ID from the command.
func (c CreateCourierCommand) ChatID() int64 {
	return c.chatID
}

func (c *CreateCourierCommand) setChatID(chatID int64) error {
	if chatID == 0 {
		return ErrChatIDIsRequired
	}

	c.chatID = chatID
	return nil
}
