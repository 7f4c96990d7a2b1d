package conversation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/RomanElektrik/musorok-bot/internal/core/application/usecases/commands"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/kernel"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/order"
	"github.com/RomanElektrik/musorok-bot/internal/core/ports"
)

// Customer session steps.
const (
	StepIdle     = "idle"
	StepAddress  = "address"
	StepEntrance = "entrance"
	StepConfirm  = "confirm"
)

// CustomerFlow drives the customer conversation:
// address entry, confirmation, payment, and order creation.
//
// State machine: idle → address → entrance → confirm → idle. The cancel
// button resets to idle from any step; payment failures keep the session at
// confirm so the user can retry.
type CustomerFlow struct {
	sessions  ports.SessionStore
	messenger ports.Messenger
	geocoder  ports.Geocoder
	registrar ClientRegistrar
	placer    OrderPlacer
	notifier  *AssignmentNotifier
	scheduler Scheduler
	log       *slog.Logger
}

// CustomerFlowDeps collects the collaborators of a CustomerFlow.
type CustomerFlowDeps struct {
	Sessions  ports.SessionStore
	Messenger ports.Messenger
	Geocoder  ports.Geocoder
	Registrar ClientRegistrar
	Placer    OrderPlacer
	Notifier  *AssignmentNotifier
	Scheduler Scheduler
	Log       *slog.Logger
}

// NewCustomerFlow creates the customer conversation machine.
func NewCustomerFlow(deps CustomerFlowDeps) *CustomerFlow {
	return &CustomerFlow{
		sessions:  deps.Sessions,
		messenger: deps.Messenger,
		geocoder:  deps.Geocoder,
		registrar: deps.Registrar,
		placer:    deps.Placer,
		notifier:  deps.Notifier,
		scheduler: deps.Scheduler,
		log:       deps.Log.With("component", "customer-flow"),
	}
}

// Start handles the customer's start command: registers the client if this
// is their first contact, resets the session, and shows the main menu.
func (f *CustomerFlow) Start(ctx context.Context, chatID int64) {
	cmd, err := commands.NewCreateClientCommand(chatID)
	if err != nil {
		f.log.Error("build create client command", "error", err)
		return
	}
	if err = f.registrar.Handle(ctx, cmd); err != nil {
		f.log.Error("create client", "chatID", chatID, "error", err)
	}

	f.setStep(ctx, chatID, ports.Session{Step: StepIdle})
	f.send(ctx, chatID, ports.Reply{Text: textClientWelcome, Keyboard: clientMainKeyboard()})
}

// HandleText processes a free-text or button message from the customer.
func (f *CustomerFlow) HandleText(ctx context.Context, chatID int64, text string) {
	// Cancel resets from any step, even mid-confirmation.
	if text == btnCancel {
		f.setStep(ctx, chatID, ports.Session{Step: StepIdle})
		f.send(ctx, chatID, ports.Reply{Text: textOrderCancelled, Keyboard: clientMainKeyboard()})
		return
	}

	if text == btnOrderPickup {
		f.setStep(ctx, chatID, ports.Session{Step: StepAddress})
		f.send(ctx, chatID, ports.Reply{Text: textAskAddress, Keyboard: cancelKeyboard()})
		return
	}

	session, err := f.sessions.Get(ctx, ports.RoleClient, chatID)
	if err != nil {
		f.log.Error("get session", "chatID", chatID, "error", err)
		return
	}

	if session.Step == "" {
		f.setStep(ctx, chatID, ports.Session{Step: StepIdle})
		f.send(ctx, chatID, ports.Reply{Text: textClientPressStart, Keyboard: clientMainKeyboard()})
		return
	}

	switch session.Step {
	case StepAddress:
		f.handleAddress(ctx, chatID, session, text)
	case StepEntrance:
		f.handleEntrance(ctx, chatID, session, text)
	case StepConfirm:
		f.handleConfirm(ctx, chatID, session, text)
	default:
		f.send(ctx, chatID, ports.Reply{Text: textClientIdleHint, Keyboard: clientMainKeyboard()})
	}
}

func (f *CustomerFlow) handleAddress(ctx context.Context, chatID int64, session ports.Session, text string) {
	session.Draft = ports.DraftAddress{Street: text}
	session.Step = StepEntrance
	f.setStep(ctx, chatID, session)

	f.send(ctx, chatID, ports.Reply{Text: textAskEntrance, Keyboard: cancelKeyboard()})
}

func (f *CustomerFlow) handleEntrance(ctx context.Context, chatID int64, session ports.Session, text string) {
	entrance, floor, apartment := parseEntranceDetails(text)
	session.Draft.Entrance = entrance
	session.Draft.Floor = floor
	session.Draft.Apartment = apartment

	// Geocoding is best effort; the order is placed without a location
	// when it fails.
	if point, err := f.geocoder.Geocode(ctx, session.Draft.Street); err == nil {
		session.Draft.Latitude = point.Latitude()
		session.Draft.Longitude = point.Longitude()
		session.Draft.Geocoded = true
	} else {
		f.log.Warn("geocode address", "error", err)
	}

	session.Step = StepConfirm
	session.Price = OrderPrice
	f.setStep(ctx, chatID, session)

	f.send(ctx, chatID, ports.Reply{
		Text:     orderSummaryText(session.Draft, session.Price),
		Keyboard: confirmKeyboard(),
	})
}

func (f *CustomerFlow) handleConfirm(ctx context.Context, chatID int64, session ports.Session, text string) {
	switch text {
	case btnPay:
		f.pay(ctx, chatID, session)
	case btnEditAddress:
		session.Step = StepAddress
		f.setStep(ctx, chatID, session)
		f.send(ctx, chatID, ports.Reply{Text: textAskAddress, Keyboard: cancelKeyboard()})
	}
}

func (f *CustomerFlow) pay(ctx context.Context, chatID int64, session ports.Session) {
	cmd, err := commands.NewCreateOrderCommand(chatID, draftToAddress(session.Draft), session.Price)
	if err != nil {
		f.log.Error("build create order command", "chatID", chatID, "error", err)
		f.send(ctx, chatID, ports.Reply{Text: textOrderCreateFailed})
		return
	}

	// On failure the session stays at confirm so pressing pay again retries.
	if err = f.placer.Handle(ctx, cmd); err != nil {
		f.log.Error("create order", "chatID", chatID, "error", err)
		f.send(ctx, chatID, ports.Reply{Text: textOrderCreateFailed})
		return
	}

	f.send(ctx, chatID, ports.Reply{Text: textOrderPaid})

	orderID := cmd.OrderID()
	f.scheduler.AfterFunc(AssignmentDelay, func() {
		f.notifier.AssignOrder(context.Background(), orderID, chatID)
	})

	f.setStep(ctx, chatID, ports.Session{Step: StepIdle})

	f.scheduler.AfterFunc(MenuRedisplayDelay, func() {
		f.send(context.Background(), chatID, ports.Reply{Text: textWhatNext, Keyboard: clientAfterOrderKeyboard()})
	})
}

func (f *CustomerFlow) setStep(ctx context.Context, chatID int64, session ports.Session) {
	if err := f.sessions.Put(ctx, ports.RoleClient, chatID, session); err != nil {
		f.log.Error("put session", "chatID", chatID, "error", err)
	}
}

func (f *CustomerFlow) send(ctx context.Context, chatID int64, reply ports.Reply) {
	if err := f.messenger.Send(ctx, chatID, reply); err != nil {
		f.log.Error("send message", "chatID", chatID, "error", err)
	}
}

// parseEntranceDetails splits "entrance, floor, apartment" input. Anything
// that does not split into at least three comma-separated parts becomes the
// entrance as-is with floor and apartment defaulting to "1".
func parseEntranceDetails(text string) (entrance, floor, apartment string) {
	entrance, floor, apartment = text, "1", "1"

	parts := strings.Split(text, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	if len(parts) >= 3 {
		entrance, floor, apartment = parts[0], parts[1], parts[2]
	}
	return entrance, floor, apartment
}

func draftToAddress(draft ports.DraftAddress) order.Address {
	address := order.Address{
		Street:      draft.Street,
		HouseNumber: draft.HouseNumber,
		Entrance:    draft.Entrance,
		Floor:       draft.Floor,
		Apartment:   draft.Apartment,
	}
	if draft.Geocoded {
		if point, err := kernel.NewGeoPoint(draft.Latitude, draft.Longitude); err == nil {
			address.Location = &point
		}
	}
	return address
}
