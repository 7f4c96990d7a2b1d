package commands

import (
	"errors"

	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/kernel"
	"github.com/RomanElektrik/musorok-bot/internal/pkg/guard"
)

var (
	ErrProgressOrderCommandIsNotConstructed = errors.New(
		"ProgressOrderCommand must be created via NewProgressOrderCommand constructor",
	)
	ErrUnknownOrderAction = errors.New("unknown order action")
)

// OrderAction is a lifecycle transition requested on an existing order.
type OrderAction string

const (
	// OrderActionStart moves an assigned order to inProgress.
	OrderActionStart OrderAction = "start"
	// OrderActionComplete moves an inProgress order to completed.
	OrderActionComplete OrderAction = "complete"
	// OrderActionCancel cancels any non-terminal order.
	OrderActionCancel OrderAction = "cancel"
)

// ProgressOrderCommand advances an order through its lifecycle.
// No current conversation flow starts or completes orders, so those
// actions are only reachable programmatically for now.
type ProgressOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	action  OrderAction

	guard guard.ConstructorGuard
}

// NewProgressOrderCommand creates a command to apply the given lifecycle
// action to the order.
func NewProgressOrderCommand(orderID kernel.UUID, action OrderAction) (ProgressOrderCommand, error) {
	command := ProgressOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return ProgressOrderCommand{}, err
	}
	command.orderID = orderID

	switch action {
	case OrderActionStart, OrderActionComplete, OrderActionCancel:
		command.action = action
	default:
		return ProgressOrderCommand{}, ErrUnknownOrderAction
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ProgressOrderCommand) Validate() error {
	return c.guard.Validate(ErrProgressOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to progress.
func (c ProgressOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Action returns the requested lifecycle transition.
func (c ProgressOrderCommand) Action() OrderAction {
	return c.action
}
