package ports

import "context"

// Button is one reply-keyboard button. RequestContact and RequestLocation
// ask the chat client to share structured data instead of sending the label.
type Button struct {
	Label           string
	RequestContact  bool
	RequestLocation bool
}

// Reply is an outbound chat message, optionally with a reply keyboard.
// A nil Keyboard leaves the user's current keyboard untouched;
// RemoveKeyboard hides it.
type Reply struct {
	Text           string
	Keyboard       [][]Button
	RemoveKeyboard bool
}

// Messenger sends replies back to a chat. Each agent gets a Messenger bound
// to its own bot so conversation flows stay transport-agnostic.
type Messenger interface {
	Send(ctx context.Context, chatID int64, reply Reply) error
}
