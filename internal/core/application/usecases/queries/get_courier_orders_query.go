// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/kernel"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/order"
	"github.com/RomanElektrik/musorok-bot/internal/pkg/guard"
)

// DefaultCourierOrdersLimit caps the courier's order list at the 5 most
// recent orders, matching what the conversation displays.
const DefaultCourierOrdersLimit = 5

var (
	ErrGetCourierOrdersQueryIsNotConstructed = errors.New(
		"GetCourierOrdersQuery must be created via NewGetCourierOrdersQuery constructor",
	)
	ErrChatIDIsRequired = errors.New("chat ID is required")
)

// GetCourierOrdersQuery retrieves the most recent orders assigned to a
// courier, newest first, for the order-list conversation command.
type GetCourierOrdersQuery struct { //nolint:recvcheck //using for validation
	chatID int64
	limit  int

	guard guard.ConstructorGuard
}

// NewGetCourierOrdersQuery creates a query for the courier known by chatID.
// A non-positive limit falls back to DefaultCourierOrdersLimit.
func NewGetCourierOrdersQuery(chatID int64, limit int) (GetCourierOrdersQuery, error) {
	if chatID == 0 {
		return GetCourierOrdersQuery{}, ErrChatIDIsRequired
	}
	if limit <= 0 {
		limit = DefaultCourierOrdersLimit
	}

	return GetCourierOrdersQuery{
		chatID: chatID,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierOrdersQueryIsNotConstructed)
}

// ChatID returns the courier's external user ID.
func (q GetCourierOrdersQuery) ChatID() int64 {
	return q.chatID
}

// Limit returns how many orders to fetch.
func (q GetCourierOrdersQuery) Limit() int {
	return q.limit
}

// GetCourierOrdersQueryResponse is one row of the courier's order list.
type GetCourierOrdersQueryResponse struct {
	ID        kernel.UUID
	Street    string
	Entrance  string
	Status    order.Status
	Price     int
	CreatedAt time.Time
}
