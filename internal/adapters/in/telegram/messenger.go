// Package telegram contains the inbound Telegram adapters: one long-polling
// agent per bot plus the outbound messenger that renders replies and
// keyboards into Bot API calls.
package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/RomanElektrik/musorok-bot/internal/core/ports"
)

// Messenger sends replies through one bot's Telegram connection.
type Messenger struct {
	bot *tgbotapi.BotAPI
}

// NewMessenger creates a messenger over the given bot connection.
func NewMessenger(bot *tgbotapi.BotAPI) *Messenger {
	return &Messenger{bot: bot}
}

// Send renders the reply into a Telegram message and sends it.
func (m *Messenger) Send(_ context.Context, chatID int64, reply ports.Reply) error {
	msg := tgbotapi.NewMessage(chatID, reply.Text)

	switch {
	case reply.RemoveKeyboard:
		msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(false)
	case len(reply.Keyboard) > 0:
		msg.ReplyMarkup = toReplyKeyboard(reply.Keyboard)
	}

	_, err := m.bot.Send(msg)
	return err
}

func toReplyKeyboard(keyboard [][]ports.Button) tgbotapi.ReplyKeyboardMarkup {
	rows := make([][]tgbotapi.KeyboardButton, 0, len(keyboard))
	for _, row := range keyboard {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, button := range row {
			buttons = append(buttons, tgbotapi.KeyboardButton{
				Text:            button.Label,
				RequestContact:  button.RequestContact,
				RequestLocation: button.RequestLocation,
			})
		}
		rows = append(rows, buttons)
	}

	markup := tgbotapi.NewReplyKeyboard(rows...)
	markup.ResizeKeyboard = true
	return markup
}

var _ ports.Messenger = (*Messenger)(nil)
