package queries

import (
	"errors"

	"github.com/RomanElektrik/musorok-bot/internal/pkg/guard"
)

var ErrGetCourierBalanceQueryIsNotConstructed = errors.New(
	"GetCourierBalanceQuery must be created via NewGetCourierBalanceQuery constructor",
)

// GetCourierBalanceQuery computes a courier's earnings: the count of their
// completed orders and the sum of those orders' prices. No current flow
// ever completes an order, so both figures stay zero for now.
type GetCourierBalanceQuery struct { //nolint:recvcheck //using for validation
	chatID int64

	guard guard.ConstructorGuard
}

// NewGetCourierBalanceQuery creates a query for the courier known by chatID.
func NewGetCourierBalanceQuery(chatID int64) (GetCourierBalanceQuery, error) {
	if chatID == 0 {
		return GetCourierBalanceQuery{}, ErrChatIDIsRequired
	}

	return GetCourierBalanceQuery{
		chatID: chatID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierBalanceQueryIsNotConstructed)
}

// ChatID returns the courier's external user ID.
func (q GetCourierBalanceQuery) ChatID() int64 {
	return q.chatID
}

// GetCourierBalanceQueryResponse is the courier's earnings summary.
type GetCourierBalanceQueryResponse struct {
	CompletedOrders int
	TotalEarned     int
}
