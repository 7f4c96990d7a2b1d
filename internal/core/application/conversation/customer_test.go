package conversation

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RomanElektrik/musorok-bot/internal/core/application/usecases/commands"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/kernel"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/order"
	"github.com/RomanElektrik/musorok-bot/internal/core/ports"
)

const clientChat = int64(100500)

type customerFixture struct {
	flow      *CustomerFlow
	sessions  *fakeSessionStore
	messenger *recorderMessenger
	geocoder  *fakeGeocoder
	registrar *MockClientRegistrar
	placer    *MockOrderPlacer
	assigner  *MockOrderAssigner
	scheduler *immediateScheduler
}

func newCustomerFixture(t *testing.T) *customerFixture {
	t.Helper()

	point, err := kernel.NewGeoPoint(55.7558, 37.6173)
	require.NoError(t, err)

	f := &customerFixture{
		sessions:  newFakeSessionStore(),
		messenger: &recorderMessenger{},
		geocoder:  &fakeGeocoder{point: point},
		registrar: &MockClientRegistrar{},
		placer:    &MockOrderPlacer{},
		assigner:  &MockOrderAssigner{},
		scheduler: &immediateScheduler{},
	}

	log := slog.New(slog.DiscardHandler)
	notifier := NewAssignmentNotifier(f.assigner, f.messenger, &recorderMessenger{}, log)
	f.flow = NewCustomerFlow(CustomerFlowDeps{
		Sessions:  f.sessions,
		Messenger: f.messenger,
		Geocoder:  f.geocoder,
		Registrar: f.registrar,
		Placer:    f.placer,
		Notifier:  notifier,
		Scheduler: f.scheduler,
		Log:       log,
	})
	return f
}

func (f *customerFixture) session(t *testing.T) ports.Session {
	t.Helper()
	session, err := f.sessions.Get(context.Background(), ports.RoleClient, clientChat)
	require.NoError(t, err)
	return session
}

func assignmentResult(t *testing.T) commands.AssignmentResult {
	t.Helper()

	ord, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		order.Address{Street: "Ленина 5", Entrance: "2", Floor: "5", Apartment: "10"},
		OrderPrice, time.Now(),
	)
	require.NoError(t, err)

	picked := verifiedCourier(t, 777)
	require.NoError(t, ord.Assign(picked.ID()))

	return commands.AssignmentResult{Order: ord, Courier: picked, ClientChatID: clientChat}
}

func TestCustomerFlow_StartRegistersClientAndShowsMenu(t *testing.T) {
	f := newCustomerFixture(t)
	f.registrar.On("Handle", mock.Anything, mock.Anything).Return(nil)

	f.flow.Start(context.Background(), clientChat)

	f.registrar.AssertExpectations(t)
	assert.Equal(t, StepIdle, f.session(t).Step)
	require.Len(t, f.messenger.sent, 1)
	assert.Equal(t, textClientWelcome, f.messenger.sent[0].Reply.Text)
	assert.Equal(t, clientMainKeyboard(), f.messenger.sent[0].Reply.Keyboard)
}

func TestCustomerFlow_TextWithoutSessionAsksToPressStart(t *testing.T) {
	f := newCustomerFixture(t)

	f.flow.HandleText(context.Background(), clientChat, "привет")

	assert.Equal(t, StepIdle, f.session(t).Step)
	assert.Equal(t, textClientPressStart, f.messenger.lastText())
}

func TestCustomerFlow_OrderButtonStartsAddressStep(t *testing.T) {
	f := newCustomerFixture(t)
	f.sessions.Put(context.Background(), ports.RoleClient, clientChat, ports.Session{Step: StepIdle})

	f.flow.HandleText(context.Background(), clientChat, btnOrderPickup)

	assert.Equal(t, StepAddress, f.session(t).Step)
	assert.Equal(t, textAskAddress, f.messenger.lastText())
}

func TestCustomerFlow_AddressTextMovesToEntranceStep(t *testing.T) {
	f := newCustomerFixture(t)
	f.sessions.Put(context.Background(), ports.RoleClient, clientChat, ports.Session{Step: StepAddress})

	f.flow.HandleText(context.Background(), clientChat, "ул. Ленина, д. 5")

	session := f.session(t)
	assert.Equal(t, StepEntrance, session.Step)
	assert.Equal(t, "ул. Ленина, д. 5", session.Draft.Street)
	assert.Equal(t, textAskEntrance, f.messenger.lastText())
}

func TestCustomerFlow_EntranceDetailsParsedIntoDraft(t *testing.T) {
	f := newCustomerFixture(t)
	f.sessions.Put(context.Background(), ports.RoleClient, clientChat, ports.Session{
		Step:  StepEntrance,
		Draft: ports.DraftAddress{Street: "Ленина 5"},
	})

	f.flow.HandleText(context.Background(), clientChat, "2, 5, 10")

	session := f.session(t)
	assert.Equal(t, StepConfirm, session.Step)
	assert.Equal(t, "2", session.Draft.Entrance)
	assert.Equal(t, "5", session.Draft.Floor)
	assert.Equal(t, "10", session.Draft.Apartment)
	assert.Equal(t, OrderPrice, session.Price)
	assert.True(t, session.Draft.Geocoded)
	assert.Equal(t, orderSummaryText(session.Draft, OrderPrice), f.messenger.lastText())
}

func TestCustomerFlow_FreeFormEntranceKeptWholeWithDefaults(t *testing.T) {
	f := newCustomerFixture(t)
	f.sessions.Put(context.Background(), ports.RoleClient, clientChat, ports.Session{
		Step:  StepEntrance,
		Draft: ports.DraftAddress{Street: "Ленина 5"},
	})

	f.flow.HandleText(context.Background(), clientChat, "вход со двора")

	session := f.session(t)
	assert.Equal(t, "вход со двора", session.Draft.Entrance)
	assert.Equal(t, "1", session.Draft.Floor)
	assert.Equal(t, "1", session.Draft.Apartment)
}

func TestCustomerFlow_GeocodingFailureStillConfirmsOrder(t *testing.T) {
	f := newCustomerFixture(t)
	f.geocoder.err = errors.New("geocoder down")
	f.sessions.Put(context.Background(), ports.RoleClient, clientChat, ports.Session{
		Step:  StepEntrance,
		Draft: ports.DraftAddress{Street: "Ленина 5"},
	})

	f.flow.HandleText(context.Background(), clientChat, "2, 5, 10")

	session := f.session(t)
	assert.Equal(t, StepConfirm, session.Step)
	assert.False(t, session.Draft.Geocoded)
}

func TestCustomerFlow_PayPlacesOrderAndSchedulesFollowUps(t *testing.T) {
	f := newCustomerFixture(t)
	f.sessions.Put(context.Background(), ports.RoleClient, clientChat, ports.Session{
		Step:  StepConfirm,
		Draft: ports.DraftAddress{Street: "Ленина 5", Entrance: "2", Floor: "5", Apartment: "10"},
		Price: OrderPrice,
	})

	f.placer.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		return cmd.ChatID() == clientChat &&
			cmd.Price() == OrderPrice &&
			cmd.Address().Street == "Ленина 5"
	})).Return(nil)
	f.assigner.On("Handle", mock.Anything, mock.Anything).Return(assignmentResult(t), nil)

	f.flow.HandleText(context.Background(), clientChat, btnPay)

	f.placer.AssertExpectations(t)
	f.placer.AssertNumberOfCalls(t, "Handle", 1)
	f.assigner.AssertNumberOfCalls(t, "Handle", 1)
	assert.Equal(t, []time.Duration{AssignmentDelay, MenuRedisplayDelay}, f.scheduler.delays)
	assert.Equal(t, StepIdle, f.session(t).Step)
	assert.Contains(t, f.messenger.texts(), textOrderPaid)
	assert.Contains(t, f.messenger.texts(), textCourierFound)
	assert.Contains(t, f.messenger.texts(), textWhatNext)
}

func TestCustomerFlow_PaymentFailureKeepsConfirmStep(t *testing.T) {
	f := newCustomerFixture(t)
	f.sessions.Put(context.Background(), ports.RoleClient, clientChat, ports.Session{
		Step:  StepConfirm,
		Draft: ports.DraftAddress{Street: "Ленина 5", Entrance: "2"},
		Price: OrderPrice,
	})

	f.placer.On("Handle", mock.Anything, mock.Anything).Return(errors.New("db down"))

	f.flow.HandleText(context.Background(), clientChat, btnPay)

	assert.Equal(t, StepConfirm, f.session(t).Step)
	assert.Equal(t, textOrderCreateFailed, f.messenger.lastText())
	assert.Empty(t, f.scheduler.delays)
}

func TestCustomerFlow_EditAddressReturnsToAddressStep(t *testing.T) {
	f := newCustomerFixture(t)
	f.sessions.Put(context.Background(), ports.RoleClient, clientChat, ports.Session{
		Step:  StepConfirm,
		Draft: ports.DraftAddress{Street: "Ленина 5"},
		Price: OrderPrice,
	})

	f.flow.HandleText(context.Background(), clientChat, btnEditAddress)

	assert.Equal(t, StepAddress, f.session(t).Step)
	assert.Equal(t, textAskAddress, f.messenger.lastText())
}

func TestCustomerFlow_CancelResetsFromAnyStep(t *testing.T) {
	steps := []string{StepIdle, StepAddress, StepEntrance, StepConfirm}
	for _, step := range steps {
		t.Run(step, func(t *testing.T) {
			f := newCustomerFixture(t)
			f.sessions.Put(context.Background(), ports.RoleClient, clientChat, ports.Session{
				Step:  step,
				Draft: ports.DraftAddress{Street: "Ленина 5"},
			})

			f.flow.HandleText(context.Background(), clientChat, btnCancel)

			session := f.session(t)
			assert.Equal(t, StepIdle, session.Step)
			assert.Empty(t, session.Draft.Street)
			assert.Equal(t, textOrderCancelled, f.messenger.lastText())
		})
	}
}

func TestCustomerFlow_IdleTextShowsHint(t *testing.T) {
	f := newCustomerFixture(t)
	f.sessions.Put(context.Background(), ports.RoleClient, clientChat, ports.Session{Step: StepIdle})

	f.flow.HandleText(context.Background(), clientChat, "что-то непонятное")

	assert.Equal(t, textClientIdleHint, f.messenger.lastText())
}

func TestParseEntranceDetails(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		entrance  string
		floor     string
		apartment string
	}{
		{"three parts", "2, 5, 10", "2", "5", "10"},
		{"extra parts ignored", "2, 5, 10, домофон 10к", "2", "5", "10"},
		{"two parts fall back", "2, 5", "2, 5", "1", "1"},
		{"free text", "вход со двора", "вход со двора", "1", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entrance, floor, apartment := parseEntranceDetails(tt.input)
			assert.Equal(t, tt.entrance, entrance)
			assert.Equal(t, tt.floor, floor)
			assert.Equal(t, tt.apartment, apartment)
		})
	}
}
