package commands

import (
	"errors"

	"github.com/RomanElektrik/musorok-bot/internal/pkg/guard"
)

var (
	ErrCreateClientCommandIsNotConstructed = errors.New(
		"CreateClientCommand must be created via NewCreateClientCommand constructor",
	)
	ErrChatIDIsRequired = errors.New("chat ID is required")
)

// CreateClientCommand registers a customer on first contact with the
// customer agent. Issuing it for an already known chat ID is a no-op.
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	chatID int64

	guard guard.ConstructorGuard
}

// NewCreateClientCommand creates a command to register a customer by their
// external user ID.
func NewCreateClientCommand(chatID int64) (CreateClientCommand, error) {
	command := CreateClientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setChatID(chatID); err != nil {
		return CreateClientCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

// ChatID returns the external user ID from the command.
func (c CreateClientCommand) ChatID() int64 {
	return c.chatID
}

func (c *CreateClientCommand) setChatID(chatID int64) error {
	if chatID == 0 {
		return ErrChatIDIsRequired
	}

	c.chatID = chatID
	return nil
}
