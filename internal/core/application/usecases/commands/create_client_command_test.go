package commands_test

import (
	"testing"

	"github.com/RomanElektrik/musorok-bot/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateClientCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCreateClientCommand(42)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, int64(42), cmd.ChatID())
	})

	t.Run("zero_chat_id", func(t *testing.T) {
		_, err := commands.NewCreateClientCommand(0)
		require.ErrorIs(t, err, commands.ErrChatIDIsRequired)
	})

	t.Run("not_constructed", func(t *testing.T) {
		var cmd commands.CreateClientCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateClientCommandIsNotConstructed)
	})
}
