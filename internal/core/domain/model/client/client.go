package client

import (
	"errors"
	"strings"

	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/kernel"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/order"
	"github.com/RomanElektrik/musorok-bot/internal/pkg/errs"
	"github.com/RomanElektrik/musorok-bot/internal/pkg/guard"
)

// Domain errors for client operations.
var (
	// ErrClientIsNotConstructed is returned when using an improperly initialized Client.
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")
	// ErrChatIDIsRequired is returned when attempting to create a client without a chat ID.
	ErrChatIDIsRequired = errs.NewValueIsRequiredError("chatID")
)

// Client represents an end customer of the pickup service. It is created
// on first contact with the customer agent and accumulates the addresses
// and orders placed over time. Clients are never deleted.
type Client struct {
	id        kernel.UUID
	chatID    int64
	phone     string
	addresses []order.Address
	orderIDs  []kernel.UUID
	guard     guard.ConstructorGuard
}

// NewClient creates a client on first contact with the customer agent.
func NewClient(id kernel.UUID, chatID int64) (*Client, error) {
	client := &Client{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		client.setID(id),
		client.setChatID(chatID),
	); err != nil {
		return nil, err
	}

	return client, nil
}

// RestoreClient reconstructs a Client aggregate from persistent storage.
func RestoreClient(
	id kernel.UUID,
	chatID int64,
	phone string,
	addresses []order.Address,
	orderIDs []kernel.UUID,
) (*Client, error) {
	client, err := NewClient(id, chatID)
	if err != nil {
		return nil, err
	}

	for _, orderID := range orderIDs {
		if err = orderID.Validate(); err != nil {
			return nil, err
		}
	}

	client.phone = phone
	client.addresses = addresses
	client.orderIDs = orderIDs
	return client, nil
}

// Validate checks if the Client was properly constructed.
func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

// IsEqual compares two clients by identifier.
func (c *Client) IsEqual(other *Client) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// ChatID returns the external user ID the customer agent knows the client by.
func (c *Client) ChatID() int64 {
	return c.chatID
}

// Phone returns the client's phone number, empty until provided.
func (c *Client) Phone() string {
	return c.phone
}

// Addresses returns the pickup addresses the client has used.
// The returned slice is a copy.
func (c *Client) Addresses() []order.Address {
	out := make([]order.Address, len(c.addresses))
	copy(out, c.addresses)
	return out
}

// OrderIDs returns the identifiers of the client's orders, oldest first.
// The returned slice is a copy.
func (c *Client) OrderIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(c.orderIDs))
	copy(out, c.orderIDs)
	return out
}

// SetPhone records the client's phone number.
func (c *Client) SetPhone(phone string) {
	c.phone = strings.TrimSpace(phone)
}

// AddAddress remembers a pickup address the client used.
func (c *Client) AddAddress(address order.Address) {
	c.addresses = append(c.addresses, address)
}

// AppendOrder links a placed order to the client's history.
func (c *Client) AppendOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderIDs = append(c.orderIDs, orderID)
	return nil
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Client) setChatID(chatID int64) error {
	if chatID == 0 {
		return ErrChatIDIsRequired
	}

	c.chatID = chatID
	return nil
}
