package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/kernel"
	"github.com/RomanElektrik/musorok-bot/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrStreetIsRequired is returned when the pickup address has no street.
	ErrStreetIsRequired = errs.NewValueIsRequiredError("street")
)

// Order represents a pickup order. It is the aggregate root that manages the
// order lifecycle from payment through assignment to completion.
//
// Invariants:
//   - Must reference an owning client
//   - Must carry a pickup address with a non-empty street
//   - Price must be positive
//   - Status transitions only move forward (see Status)
type Order struct {
	id          kernel.UUID
	clientID    kernel.UUID
	courierID   *kernel.UUID
	address     Address
	status      Status
	price       int
	createdAt   time.Time
	completedAt *time.Time

	isConstructed bool
}

// NewOrder creates a new Order in created status with no courier.
// This is the only way to create a fresh order; all invariants are checked.
func NewOrder(id, clientID kernel.UUID, address Address, price int, createdAt time.Time) (*Order, error) {
	order := &Order{
		status:        StatusCreated,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientID(clientID),
		order.setAddress(address),
		order.setPrice(price),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// preserving its status, courier binding, and timestamps.
func RestoreOrder(
	id, clientID kernel.UUID,
	address Address,
	price int,
	status Status,
	courierID *kernel.UUID,
	createdAt time.Time,
	completedAt *time.Time,
) (*Order, error) {
	order, err := NewOrder(id, clientID, address, price, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err = courierID.Validate(); err != nil {
			return nil, err
		}
	}

	order.status = status
	order.courierID = courierID
	order.completedAt = completedAt
	return order, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the owning client's identifier.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// Courier returns the assigned courier's ID, nil when unassigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Address returns the pickup address.
func (o *Order) Address() Address {
	return o.address
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Price returns the order price in rubles.
func (o *Order) Price() int {
	return o.price
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CompletedAt returns the completion timestamp, nil while not completed.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// Assign binds a courier to the order and moves it to assigned.
func (o *Order) Assign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// Start moves an assigned order to inProgress.
func (o *Order) Start() error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete moves an inProgress order to completed and records the timestamp.
func (o *Order) Complete(completedAt time.Time) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.completedAt = &completedAt
	return nil
}

// Cancel moves any non-terminal order to cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return fmt.Errorf("client ID: %w", err)
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setAddress(address Address) error {
	if address.Street == "" {
		return ErrStreetIsRequired
	}
	if address.Location != nil {
		if err := address.Location.Validate(); err != nil {
			return err
		}
	}
	o.address = address
	return nil
}

func (o *Order) setPrice(price int) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%d is not greater than 0", price))
	}
	o.price = price
	return nil
}
