package telegram

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/RomanElektrik/musorok-bot/internal/core/application/conversation"
)

// longPollTimeout is the Bot API long-poll timeout in seconds.
const longPollTimeout = 30

// CustomerAgent polls the customer bot's updates and dispatches them into
// the customer conversation flow.
type CustomerAgent struct {
	bot  *tgbotapi.BotAPI
	flow *conversation.CustomerFlow
	log  *slog.Logger
}

// NewCustomerAgent creates the customer agent.
func NewCustomerAgent(bot *tgbotapi.BotAPI, flow *conversation.CustomerFlow, log *slog.Logger) *CustomerAgent {
	return &CustomerAgent{
		bot:  bot,
		flow: flow,
		log:  log.With("component", "customer-agent"),
	}
}

// Run polls updates until the context is cancelled.
func (a *CustomerAgent) Run(ctx context.Context) {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = longPollTimeout
	updates := a.bot.GetUpdatesChan(cfg)

	a.log.Info("customer agent started", "bot", a.bot.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			a.bot.StopReceivingUpdates()
			a.log.Info("customer agent stopped")
			return
		case update := <-updates:
			a.dispatch(ctx, update)
		}
	}
}

func (a *CustomerAgent) dispatch(ctx context.Context, update tgbotapi.Update) {
	message := update.Message
	if message == nil {
		return
	}

	chatID := message.Chat.ID

	if message.IsCommand() {
		if message.Command() == "start" {
			a.flow.Start(ctx, chatID)
		}
		return
	}

	if message.Text != "" {
		a.flow.HandleText(ctx, chatID, message.Text)
	}
}
