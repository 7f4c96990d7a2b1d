package conversation

import (
	"context"
	"errors"
	"log/slog"

	"github.com/RomanElektrik/musorok-bot/internal/core/application/usecases/commands"
	"github.com/RomanElektrik/musorok-bot/internal/core/application/usecases/queries"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/courier"
	"github.com/RomanElektrik/musorok-bot/internal/core/ports"
	"github.com/RomanElektrik/musorok-bot/internal/pkg/errs"
)

// Courier session steps. Registration walks fullName → city → phone →
// passport; new/registration/main are the resting states.
const (
	StepNew          = "new"
	StepRegistration = "registration"
	StepMain         = "main"
	StepFullName     = "fullName"
	StepCity         = "city"
	StepPhone        = "phone"
	StepPassport     = "passport"
)

// CourierFlow drives the courier conversation: registration, the identity
// photo check, availability toggling, order browsing, and balance queries.
//
// The top-level branch on contact follows the persisted verified flag, not
// the session, so a courier who re-opens the chat resumes correctly after
// the session store forgets them.
type CourierFlow struct {
	sessions     ports.SessionStore
	messenger    ports.Messenger
	couriers     CourierReader
	registrar    CourierRegistrar
	profile      ProfileUpdater
	verifier     CourierVerifier
	availability AvailabilitySetter
	location     LocationUpdater
	orders       CourierOrdersReader
	balance      CourierBalanceReader
	log          *slog.Logger
}

// CourierFlowDeps collects the collaborators of a CourierFlow.
type CourierFlowDeps struct {
	Sessions     ports.SessionStore
	Messenger    ports.Messenger
	Couriers     CourierReader
	Registrar    CourierRegistrar
	Profile      ProfileUpdater
	Verifier     CourierVerifier
	Availability AvailabilitySetter
	Location     LocationUpdater
	Orders       CourierOrdersReader
	Balance      CourierBalanceReader
	Log          *slog.Logger
}

// NewCourierFlow creates the courier conversation machine.
func NewCourierFlow(deps CourierFlowDeps) *CourierFlow {
	return &CourierFlow{
		sessions:     deps.Sessions,
		messenger:    deps.Messenger,
		couriers:     deps.Couriers,
		registrar:    deps.Registrar,
		profile:      deps.Profile,
		verifier:     deps.Verifier,
		availability: deps.Availability,
		location:     deps.Location,
		orders:       deps.Orders,
		balance:      deps.Balance,
		log:          deps.Log.With("component", "courier-flow"),
	}
}

// Start handles the courier's start command. New couriers get a record and
// the registration offer; unverified ones a resume menu; verified ones the
// main menu with the availability toggle.
func (f *CourierFlow) Start(ctx context.Context, chatID int64) {
	existing, err := f.couriers.GetByChatID(ctx, chatID)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		f.log.Error("get courier", "chatID", chatID, "error", err)
		f.send(ctx, chatID, ports.Reply{Text: textGenericCourierFailure})
		return
	}

	if existing == nil {
		if err = f.ensureCourier(ctx, chatID); err != nil {
			f.log.Error("create courier", "chatID", chatID, "error", err)
			f.send(ctx, chatID, ports.Reply{Text: textGenericCourierFailure})
			return
		}

		f.setStep(ctx, chatID, StepNew)
		f.send(ctx, chatID, ports.Reply{Text: textCourierWelcome, Keyboard: courierNewKeyboard()})
		return
	}

	if !existing.IsVerified() {
		f.setStep(ctx, chatID, StepRegistration)
		f.send(ctx, chatID, ports.Reply{Text: textCourierResumePrompt, Keyboard: courierResumeKeyboard()})
		return
	}

	f.setStep(ctx, chatID, StepMain)
	f.send(ctx, chatID, ports.Reply{
		Text:     textCourierWelcomeBack,
		Keyboard: courierMainKeyboard(existing.IsAvailable()),
	})
}

// HandleText processes a free-text or button message from the courier.
func (f *CourierFlow) HandleText(ctx context.Context, chatID int64, text string) {
	session, err := f.sessions.Get(ctx, ports.RoleCourier, chatID)
	if err != nil {
		f.log.Error("get session", "chatID", chatID, "error", err)
		return
	}

	if session.Step == "" {
		f.setStep(ctx, chatID, StepNew)
		f.send(ctx, chatID, ports.Reply{Text: textCourierPressStart})
		return
	}

	if err = f.ensureCourier(ctx, chatID); err != nil {
		f.log.Error("create courier", "chatID", chatID, "error", err)
	}

	switch text {
	case btnCancel:
		f.setStep(ctx, chatID, StepMain)
		f.send(ctx, chatID, ports.Reply{Text: textActionCancelled, Keyboard: courierNewKeyboard()})
		return
	case btnGoOffShift:
		f.goOffShift(ctx, chatID)
		return
	case btnStartWorking, btnGoOnShift:
		f.goOnShift(ctx, chatID)
		return
	case btnRegister:
		f.setStep(ctx, chatID, StepFullName)
		f.send(ctx, chatID, ports.Reply{Text: textRegistrationWelcome, Keyboard: cancelKeyboard()})
		return
	case btnAboutService:
		f.send(ctx, chatID, ports.Reply{Text: textAboutService, Keyboard: courierAboutKeyboard()})
		return
	case btnMyOrders:
		f.listOrders(ctx, chatID)
		return
	case btnMyBalance:
		f.showBalance(ctx, chatID)
		return
	}

	switch session.Step {
	case StepFullName:
		cmd, err := commands.NewUpdateCourierProfileCommand(chatID, &text, nil, nil, nil)
		if err != nil {
			f.log.Error("build profile command", "error", err)
			return
		}
		f.registrationStep(ctx, chatID, StepCity, cmd, ports.Reply{Text: textAskCity})
	case StepCity:
		cmd, err := commands.NewUpdateCourierProfileCommand(chatID, nil, &text, nil, nil)
		if err != nil {
			f.log.Error("build profile command", "error", err)
			return
		}
		f.registrationStep(ctx, chatID, StepPhone, cmd,
			ports.Reply{Text: textAskPhone, Keyboard: phoneKeyboard()})
	case StepPhone:
		if text == btnManualPhone {
			// Manual entry only re-prompts; the step does not change.
			f.send(ctx, chatID, ports.Reply{Text: textAskPhoneManually})
			return
		}
		f.storePhone(ctx, chatID, text)
	}
}

// HandlePhoto processes a photo attachment. At the passport step any photo
// verifies the courier; the content is never inspected.
func (f *CourierFlow) HandlePhoto(ctx context.Context, chatID int64) {
	session, err := f.sessions.Get(ctx, ports.RoleCourier, chatID)
	if err != nil {
		f.log.Error("get session", "chatID", chatID, "error", err)
		return
	}
	if session.Step != StepPassport {
		return
	}

	cmd, err := commands.NewVerifyCourierCommand(chatID)
	if err != nil {
		f.log.Error("build verify command", "error", err)
		return
	}
	if err = f.verifier.Handle(ctx, cmd); err != nil {
		f.log.Error("verify courier", "chatID", chatID, "error", err)
		f.send(ctx, chatID, ports.Reply{Text: textGenericCourierFailure})
		return
	}

	f.setStep(ctx, chatID, StepMain)
	f.send(ctx, chatID, ports.Reply{Text: textPassportVerified, Keyboard: courierOnShiftKeyboard()})
}

// HandleContact processes a structured contact share. At the phone step the
// shared number is stored and registration advances to the passport step.
func (f *CourierFlow) HandleContact(ctx context.Context, chatID int64, phoneNumber string) {
	session, err := f.sessions.Get(ctx, ports.RoleCourier, chatID)
	if err != nil {
		f.log.Error("get session", "chatID", chatID, "error", err)
		return
	}
	if session.Step != StepPhone {
		return
	}

	f.storePhone(ctx, chatID, phoneNumber)
}

// HandleLocation records a shared position regardless of session step and
// re-shows the main menu with the current availability label.
func (f *CourierFlow) HandleLocation(ctx context.Context, chatID int64, latitude, longitude float64) {
	cmd, err := commands.NewUpdateCourierLocationCommand(chatID, latitude, longitude)
	if err != nil {
		f.log.Error("build location command", "chatID", chatID, "error", err)
		return
	}
	if err = f.location.Handle(ctx, cmd); err != nil {
		f.log.Error("update location", "chatID", chatID, "error", err)
		f.send(ctx, chatID, ports.Reply{Text: textGenericCourierFailure})
		return
	}

	available := false
	if existing, err := f.couriers.GetByChatID(ctx, chatID); err == nil {
		available = existing.IsAvailable()
	}

	f.send(ctx, chatID, ports.Reply{
		Text:     textLocationUpdated,
		Keyboard: courierMainKeyboard(available),
	})
}

func (f *CourierFlow) goOnShift(ctx context.Context, chatID int64) {
	cmd, err := commands.NewSetCourierAvailabilityCommand(chatID, true)
	if err != nil {
		f.log.Error("build availability command", "error", err)
		return
	}

	err = f.availability.Handle(ctx, cmd)
	if errors.Is(err, courier.ErrCourierNotVerified) {
		// Unverified couriers are sent back into registration instead.
		f.setStep(ctx, chatID, StepFullName)
		f.send(ctx, chatID, ports.Reply{Text: textRegistrationRequired})
		return
	}
	if err != nil {
		f.log.Error("go on shift", "chatID", chatID, "error", err)
		f.send(ctx, chatID, ports.Reply{Text: textGenericCourierFailure})
		return
	}

	f.setStep(ctx, chatID, StepMain)
	f.send(ctx, chatID, ports.Reply{Text: textShiftStarted, Keyboard: courierOnShiftKeyboard()})
}

func (f *CourierFlow) goOffShift(ctx context.Context, chatID int64) {
	cmd, err := commands.NewSetCourierAvailabilityCommand(chatID, false)
	if err != nil {
		f.log.Error("build availability command", "error", err)
		return
	}
	if err = f.availability.Handle(ctx, cmd); err != nil {
		f.log.Error("go off shift", "chatID", chatID, "error", err)
		f.send(ctx, chatID, ports.Reply{Text: textGenericCourierFailure})
		return
	}

	f.send(ctx, chatID, ports.Reply{Text: textShiftFinished, Keyboard: courierOffShiftKeyboard()})
}

func (f *CourierFlow) listOrders(ctx context.Context, chatID int64) {
	query, err := queries.NewGetCourierOrdersQuery(chatID, queries.DefaultCourierOrdersLimit)
	if err != nil {
		f.log.Error("build orders query", "error", err)
		return
	}

	orders, err := f.orders.Handle(ctx, query)
	if err != nil {
		f.log.Error("list orders", "chatID", chatID, "error", err)
		f.send(ctx, chatID, ports.Reply{Text: textGenericCourierFailure})
		return
	}

	if len(orders) == 0 {
		f.send(ctx, chatID, ports.Reply{Text: textNoOrdersYet})
		return
	}

	f.send(ctx, chatID, ports.Reply{Text: orderListText(orders)})
}

func (f *CourierFlow) showBalance(ctx context.Context, chatID int64) {
	query, err := queries.NewGetCourierBalanceQuery(chatID)
	if err != nil {
		f.log.Error("build balance query", "error", err)
		return
	}

	balance, err := f.balance.Handle(ctx, query)
	if err != nil {
		f.log.Error("get balance", "chatID", chatID, "error", err)
		f.send(ctx, chatID, ports.Reply{Text: textGenericCourierFailure})
		return
	}

	f.send(ctx, chatID, ports.Reply{Text: balanceText(balance)})
}

func (f *CourierFlow) registrationStep(
	ctx context.Context,
	chatID int64,
	nextStep string,
	cmd commands.UpdateCourierProfileCommand,
	reply ports.Reply,
) {
	if err := f.profile.Handle(ctx, cmd); err != nil {
		// The session stays on the current step so the input can be retried.
		f.log.Error("update profile", "chatID", chatID, "error", err)
		f.send(ctx, chatID, ports.Reply{Text: textGenericCourierFailure})
		return
	}

	f.setStep(ctx, chatID, nextStep)
	f.send(ctx, chatID, reply)
}

func (f *CourierFlow) storePhone(ctx context.Context, chatID int64, phoneNumber string) {
	cmd, err := commands.NewUpdateCourierProfileCommand(chatID, nil, nil, &phoneNumber, nil)
	if err != nil {
		f.log.Error("build profile command", "error", err)
		return
	}

	f.registrationStep(ctx, chatID, StepPassport, cmd, ports.Reply{Text: textAskPassport})
}

func (f *CourierFlow) ensureCourier(ctx context.Context, chatID int64) error {
	cmd, err := commands.NewCreateCourierCommand(chatID)
	if err != nil {
		return err
	}
	return f.registrar.Handle(ctx, cmd)
}

func (f *CourierFlow) setStep(ctx context.Context, chatID int64, step string) {
	if err := f.sessions.Put(ctx, ports.RoleCourier, chatID, ports.Session{Step: step}); err != nil {
		f.log.Error("put session", "chatID", chatID, "error", err)
	}
}

func (f *CourierFlow) send(ctx context.Context, chatID int64, reply ports.Reply) {
	if err := f.messenger.Send(ctx, chatID, reply); err != nil {
		f.log.Error("send message", "chatID", chatID, "error", err)
	}
}
