package ports

import "context"

// Role selects which agent a conversation session belongs to. The two bots
// never share sessions even when a user talks to both under one chat ID.
type Role string

const (
	// RoleClient is the customer agent's session namespace.
	RoleClient Role = "client"
	// RoleCourier is the courier agent's session namespace.
	RoleCourier Role = "courier"
)

// DraftAddress is the pickup address being collected step by step by the
// customer conversation. It is wiped when the session resets.
type DraftAddress struct {
	Street      string  `json:"street"`
	HouseNumber string  `json:"houseNumber,omitempty"`
	Entrance    string  `json:"entrance,omitempty"`
	Floor       string  `json:"floor,omitempty"`
	Apartment   string  `json:"apartment,omitempty"`
	Latitude    float64 `json:"latitude,omitempty"`
	Longitude   float64 `json:"longitude,omitempty"`
	Geocoded    bool    `json:"geocoded,omitempty"`
}

// Session is the per-user conversation state: the current step name plus
// whatever the flow has collected so far. The struct is JSON-serializable
// so backends can store it as a single value.
type Session struct {
	Step  string       `json:"step"`
	Draft DraftAddress `json:"draft"`
	Price int          `json:"price,omitempty"`
}

// SessionStore keeps conversation sessions keyed by (role, chat ID).
// Get on a missing key returns a zero Session and no error; flows treat
// the zero Session's empty step as the idle/new state.
type SessionStore interface {
	Get(ctx context.Context, role Role, chatID int64) (Session, error)
	Put(ctx context.Context, role Role, chatID int64, session Session) error
	Delete(ctx context.Context, role Role, chatID int64) error
}
