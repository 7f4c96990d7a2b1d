package conversation

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RomanElektrik/musorok-bot/internal/core/application/usecases/commands"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/kernel"
)

type notifierFixture struct {
	notifier         *AssignmentNotifier
	assigner         *MockOrderAssigner
	clientMessenger  *recorderMessenger
	courierMessenger *recorderMessenger
}

func newNotifierFixture() *notifierFixture {
	f := &notifierFixture{
		assigner:         &MockOrderAssigner{},
		clientMessenger:  &recorderMessenger{},
		courierMessenger: &recorderMessenger{},
	}
	f.notifier = NewAssignmentNotifier(
		f.assigner, f.clientMessenger, f.courierMessenger, slog.New(slog.DiscardHandler),
	)
	return f
}

func TestAssignmentNotifier_NotifiesBothPartiesOnSuccess(t *testing.T) {
	f := newNotifierFixture()
	result := assignmentResult(t)
	f.assigner.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AssignCourierCommand) bool {
		return cmd.OrderID() != nil && *cmd.OrderID() == result.Order.ID()
	})).Return(result, nil)

	f.notifier.AssignOrder(context.Background(), result.Order.ID(), clientChat)

	f.assigner.AssertExpectations(t)

	require.Len(t, f.courierMessenger.sent, 1)
	courierMsg := f.courierMessenger.sent[0]
	assert.Equal(t, result.Courier.ChatID(), courierMsg.ChatID)
	assert.Equal(t, newOrderText(result.Order.Address(), result.Order.Price()), courierMsg.Reply.Text)
	require.Len(t, courierMsg.Reply.Keyboard, 2)
	assert.Equal(t, "Принять заказ №"+result.Order.ID().String(), courierMsg.Reply.Keyboard[0][0].Label)
	assert.Equal(t, btnRejectOrder, courierMsg.Reply.Keyboard[1][0].Label)

	require.Len(t, f.clientMessenger.sent, 1)
	assert.Equal(t, clientChat, f.clientMessenger.sent[0].ChatID)
	assert.Equal(t, textCourierFound, f.clientMessenger.sent[0].Reply.Text)
}

func TestAssignmentNotifier_NoCouriersTellsCustomerToWait(t *testing.T) {
	f := newNotifierFixture()
	f.assigner.On("Handle", mock.Anything, mock.Anything).
		Return(commands.AssignmentResult{}, commands.ErrNoAvailableCouriers)

	f.notifier.AssignOrder(context.Background(), kernel.NewUUID(), clientChat)

	assert.Empty(t, f.courierMessenger.sent)
	require.Len(t, f.clientMessenger.sent, 1)
	assert.Equal(t, textNoCouriers, f.clientMessenger.sent[0].Reply.Text)
}

func TestAssignmentNotifier_MissingOrderStaysSilent(t *testing.T) {
	f := newNotifierFixture()
	f.assigner.On("Handle", mock.Anything, mock.Anything).
		Return(commands.AssignmentResult{}, commands.ErrNoOrderFound)

	f.notifier.AssignOrder(context.Background(), kernel.NewUUID(), clientChat)

	assert.Empty(t, f.clientMessenger.sent)
	assert.Empty(t, f.courierMessenger.sent)
}

func TestAssignmentNotifier_UnexpectedErrorReportsFailure(t *testing.T) {
	f := newNotifierFixture()
	f.assigner.On("Handle", mock.Anything, mock.Anything).
		Return(commands.AssignmentResult{}, errors.New("db down"))

	f.notifier.AssignOrder(context.Background(), kernel.NewUUID(), clientChat)

	require.Len(t, f.clientMessenger.sent, 1)
	assert.Equal(t, textAssignFailed, f.clientMessenger.sent[0].Reply.Text)
}

func TestAssignmentNotifier_AssignOldestSwallowsEmptyBacklog(t *testing.T) {
	f := newNotifierFixture()
	f.assigner.On("Handle", mock.Anything, mock.Anything).
		Return(commands.AssignmentResult{}, commands.ErrNoOrderFound)

	err := f.notifier.AssignOldest(context.Background())

	require.NoError(t, err)
	assert.Empty(t, f.clientMessenger.sent)
	assert.Empty(t, f.courierMessenger.sent)
}

func TestAssignmentNotifier_AssignOldestNotifiesOnSuccess(t *testing.T) {
	f := newNotifierFixture()
	result := assignmentResult(t)
	f.assigner.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AssignCourierCommand) bool {
		return cmd.OrderID() == nil
	})).Return(result, nil)

	err := f.notifier.AssignOldest(context.Background())

	require.NoError(t, err)
	require.Len(t, f.courierMessenger.sent, 1)
	require.Len(t, f.clientMessenger.sent, 1)
}

func TestAssignmentNotifier_AssignOldestPropagatesUnexpectedErrors(t *testing.T) {
	f := newNotifierFixture()
	wantErr := errors.New("db down")
	f.assigner.On("Handle", mock.Anything, mock.Anything).
		Return(commands.AssignmentResult{}, wantErr)

	err := f.notifier.AssignOldest(context.Background())

	require.ErrorIs(t, err, wantErr)
}
