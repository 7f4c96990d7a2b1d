package conversation

import (
	"context"
	"fmt"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/RomanElektrik/musorok-bot/internal/core/application/usecases/commands"
	"github.com/RomanElektrik/musorok-bot/internal/core/application/usecases/queries"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/courier"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/kernel"
	"github.com/RomanElektrik/musorok-bot/internal/core/ports"
)

// fakeSessionStore is an in-memory SessionStore for flow tests.
type fakeSessionStore struct {
	sessions map[string]ports.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]ports.Session)}
}

func sessionKey(role ports.Role, chatID int64) string {
	return fmt.Sprintf("%s:%d", role, chatID)
}

func (s *fakeSessionStore) Get(_ context.Context, role ports.Role, chatID int64) (ports.Session, error) {
	return s.sessions[sessionKey(role, chatID)], nil
}

func (s *fakeSessionStore) Put(_ context.Context, role ports.Role, chatID int64, session ports.Session) error {
	s.sessions[sessionKey(role, chatID)] = session
	return nil
}

func (s *fakeSessionStore) Delete(_ context.Context, role ports.Role, chatID int64) error {
	delete(s.sessions, sessionKey(role, chatID))
	return nil
}

// sentMessage is one reply captured by recorderMessenger.
type sentMessage struct {
	ChatID int64
	Reply  ports.Reply
}

// recorderMessenger records every outgoing reply.
type recorderMessenger struct {
	sent []sentMessage
	err  error
}

func (m *recorderMessenger) Send(_ context.Context, chatID int64, reply ports.Reply) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMessage{ChatID: chatID, Reply: reply})
	return nil
}

func (m *recorderMessenger) lastText() string {
	if len(m.sent) == 0 {
		return ""
	}
	return m.sent[len(m.sent)-1].Reply.Text
}

func (m *recorderMessenger) texts() []string {
	texts := make([]string, 0, len(m.sent))
	for _, msg := range m.sent {
		texts = append(texts, msg.Reply.Text)
	}
	return texts
}

// immediateScheduler runs scheduled functions synchronously and records the
// requested delays, so tests can assert on deferred work without sleeping.
type immediateScheduler struct {
	delays []time.Duration
}

func (s *immediateScheduler) AfterFunc(d time.Duration, fn func()) {
	s.delays = append(s.delays, d)
	fn()
}

type MockClientRegistrar struct {
	mock.Mock
}

func (m *MockClientRegistrar) Handle(ctx context.Context, cmd commands.CreateClientCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockOrderPlacer struct {
	mock.Mock
}

func (m *MockOrderPlacer) Handle(ctx context.Context, cmd commands.CreateOrderCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockCourierRegistrar struct {
	mock.Mock
}

func (m *MockCourierRegistrar) Handle(ctx context.Context, cmd commands.CreateCourierCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockProfileUpdater struct {
	mock.Mock
}

func (m *MockProfileUpdater) Handle(ctx context.Context, cmd commands.UpdateCourierProfileCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockCourierVerifier struct {
	mock.Mock
}

func (m *MockCourierVerifier) Handle(ctx context.Context, cmd commands.VerifyCourierCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockAvailabilitySetter struct {
	mock.Mock
}

func (m *MockAvailabilitySetter) Handle(ctx context.Context, cmd commands.SetCourierAvailabilityCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockLocationUpdater struct {
	mock.Mock
}

func (m *MockLocationUpdater) Handle(ctx context.Context, cmd commands.UpdateCourierLocationCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockOrderAssigner struct {
	mock.Mock
}

func (m *MockOrderAssigner) Handle(
	ctx context.Context,
	cmd commands.AssignCourierCommand,
) (commands.AssignmentResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.AssignmentResult), args.Error(1)
}

type MockCourierOrdersReader struct {
	mock.Mock
}

func (m *MockCourierOrdersReader) Handle(
	ctx context.Context,
	query queries.GetCourierOrdersQuery,
) ([]queries.GetCourierOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetCourierOrdersQueryResponse), args.Error(1)
}

type MockCourierBalanceReader struct {
	mock.Mock
}

func (m *MockCourierBalanceReader) Handle(
	ctx context.Context,
	query queries.GetCourierBalanceQuery,
) (queries.GetCourierBalanceQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetCourierBalanceQueryResponse), args.Error(1)
}

type MockCourierReader struct {
	mock.Mock
}

func (m *MockCourierReader) GetByChatID(ctx context.Context, chatID int64) (*courier.Courier, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

// fakeGeocoder returns a fixed point, or an error when set.
type fakeGeocoder struct {
	point kernel.GeoPoint
	err   error
}

func (g *fakeGeocoder) Geocode(context.Context, string) (kernel.GeoPoint, error) {
	if g.err != nil {
		return kernel.GeoPoint{}, g.err
	}
	return g.point, nil
}
