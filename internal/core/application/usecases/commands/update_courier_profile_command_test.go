package commands_test

import (
	"testing"

	"github.com/RomanElektrik/musorok-bot/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewUpdateCourierProfileCommand(t *testing.T) {
	t.Run("single_field", func(t *testing.T) {
		cmd, err := commands.NewUpdateCourierProfileCommand(777, strPtr("Иванов Иван"), nil, nil, nil)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Иванов Иван", *cmd.FullName())
		assert.Nil(t, cmd.CityText())
	})

	t.Run("no_fields", func(t *testing.T) {
		_, err := commands.NewUpdateCourierProfileCommand(777, nil, nil, nil, nil)
		require.ErrorIs(t, err, commands.ErrNothingToUpdate)
	})

	t.Run("zero_chat_id", func(t *testing.T) {
		_, err := commands.NewUpdateCourierProfileCommand(0, strPtr("x"), nil, nil, nil)
		require.ErrorIs(t, err, commands.ErrChatIDIsRequired)
	})
}
