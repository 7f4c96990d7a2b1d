package telegram

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/RomanElektrik/musorok-bot/internal/core/application/conversation"
)

// CourierAgent polls the courier bot's updates and dispatches them into the
// courier conversation flow. Besides text it routes the structured message
// kinds registration relies on: contact shares, location shares, and the
// identity photo.
type CourierAgent struct {
	bot  *tgbotapi.BotAPI
	flow *conversation.CourierFlow
	log  *slog.Logger
}

// NewCourierAgent creates the courier agent.
func NewCourierAgent(bot *tgbotapi.BotAPI, flow *conversation.CourierFlow, log *slog.Logger) *CourierAgent {
	return &CourierAgent{
		bot:  bot,
		flow: flow,
		log:  log.With("component", "courier-agent"),
	}
}

// Run polls updates until the context is cancelled.
func (a *CourierAgent) Run(ctx context.Context) {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = longPollTimeout
	updates := a.bot.GetUpdatesChan(cfg)

	a.log.Info("courier agent started", "bot", a.bot.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			a.bot.StopReceivingUpdates()
			a.log.Info("courier agent stopped")
			return
		case update := <-updates:
			a.dispatch(ctx, update)
		}
	}
}

func (a *CourierAgent) dispatch(ctx context.Context, update tgbotapi.Update) {
	message := update.Message
	if message == nil {
		return
	}

	chatID := message.Chat.ID

	switch {
	case message.IsCommand():
		if message.Command() == "start" {
			a.flow.Start(ctx, chatID)
		}
	case message.Contact != nil:
		a.flow.HandleContact(ctx, chatID, message.Contact.PhoneNumber)
	case message.Location != nil:
		a.flow.HandleLocation(ctx, chatID, message.Location.Latitude, message.Location.Longitude)
	case len(message.Photo) > 0:
		a.flow.HandlePhoto(ctx, chatID)
	case message.Text != "":
		a.flow.HandleText(ctx, chatID, message.Text)
	}
}
