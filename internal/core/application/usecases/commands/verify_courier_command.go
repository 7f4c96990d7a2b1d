package commands

import (
	"errors"

	"github.com/RomanElektrik/musorok-bot/internal/pkg/guard"
)

var ErrVerifyCourierCommandIsNotConstructed = errors.New(
	"VerifyCourierCommand must be created via NewVerifyCourierCommand constructor",
)

// VerifyCourierCommand marks a courier as identity-verified. It is issued
// when any photo arrives at the passport step; the photo content itself is
// never inspected.
type VerifyCourierCommand struct { //nolint:recvcheck //using for validation
	chatID int64

	guard guard.ConstructorGuard
}

// NewVerifyCourierCommand creates a command to verify a courier by their
// external user ID.
func NewVerifyCourierCommand(chatID int64) (VerifyCourierCommand, error) {
	command := VerifyCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setChatID(chatID); err != nil {
		return VerifyCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyCourierCommand) Validate() error {
	return c.guard.Validate(ErrVerifyCourierCommandIsNotConstructed)
}

// ChatID returns the external user ID from the command.
func (c VerifyCourierCommand) ChatID() int64 {
	return c.chatID
}

func (c *VerifyCourierCommand) setChatID(chatID int64) error {
	if chatID == 0 {
		return ErrChatIDIsRequired
	}

	c.chatID = chatID
	return nil
}
