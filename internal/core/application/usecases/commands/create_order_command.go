package commands

import (
	"errors"

	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/kernel"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/order"
	"github.com/RomanElektrik/musorok-bot/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrStreetIsRequired = errors.New("street is required")
	ErrPriceIsInvalid   = errors.New("price must be greater than 0")
)

// CreateOrderCommand places a pickup order for a customer once the
// confirm/pay step of the conversation completes. A unique order ID is
// generated at construction so callers can reference the order afterwards.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	chatID  int64
	address order.Address
	price   int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order for the customer
// known by chatID, at the collected pickup address, for the given price.
func NewCreateOrderCommand(chatID int64, address order.Address, price int) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(kernel.NewUUID()),
		command.setChatID(chatID),
		command.setAddress(address),
		command.setPrice(price),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the generated identifier of the order being placed.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ChatID returns the customer's external user ID.
func (c CreateOrderCommand) ChatID() int64 {
	return c.chatID
}

// Address returns the pickup address.
func (c CreateOrderCommand) Address() order.Address {
	return c.address
}

// Price returns the order price in rubles.
func (c CreateOrderCommand) Price() int {
	return c.price
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setChatID(chatID int64) error {
	if chatID == 0 {
		return ErrChatIDIsRequired
	}

	c.chatID = chatID
	return nil
}

func (c *CreateOrderCommand) setAddress(address order.Address) error {
	if address.Street == "" {
		return ErrStreetIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setPrice(price int) error {
	if price <= 0 {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}
