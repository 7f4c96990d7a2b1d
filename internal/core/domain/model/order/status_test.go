package order_test

import (
	"testing"

	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	for _, s := range []order.Status{
		order.StatusCreated,
		order.StatusAssigned,
		order.StatusInProgress,
		order.StatusCompleted,
		order.StatusCancelled,
	} {
		t.Run(string(s), func(t *testing.T) {
			require.NoError(t, s.Validate())
		})
	}

	t.Run("unknown_value_is_invalid", func(t *testing.T) {
		require.Error(t, order.Status("paid").Validate())
		require.Error(t, order.Status("").Validate())
	})
}

func TestStatus_ForwardTransitions(t *testing.T) {
	t.Run("full_happy_path", func(t *testing.T) {
		s := order.StatusCreated

		s, err := s.Assign()
		require.NoError(t, err)
		assert.Equal(t, order.StatusAssigned, s)

		s, err = s.Start()
		require.NoError(t, err)
		assert.Equal(t, order.StatusInProgress, s)

		s, err = s.Complete()
		require.NoError(t, err)
		assert.Equal(t, order.StatusCompleted, s)
		assert.True(t, s.IsTerminal())
	})

	t.Run("no_backward_or_skipping_transitions", func(t *testing.T) {
		_, err := order.StatusAssigned.Assign()
		require.Error(t, err)

		_, err = order.StatusCreated.Start()
		require.Error(t, err)

		_, err = order.StatusAssigned.Complete()
		require.Error(t, err)

		_, err = order.StatusCompleted.Start()
		require.Error(t, err)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("any_non_terminal_status_can_cancel", func(t *testing.T) {
		for _, s := range []order.Status{order.StatusCreated, order.StatusAssigned, order.StatusInProgress} {
			cancelled, err := s.Cancel()
			require.NoError(t, err)
			assert.Equal(t, order.StatusCancelled, cancelled)
		}
	})

	t.Run("terminal_statuses_cannot_cancel", func(t *testing.T) {
		_, err := order.StatusCompleted.Cancel()
		require.Error(t, err)

		_, err = order.StatusCancelled.Cancel()
		require.Error(t, err)
	})
}
