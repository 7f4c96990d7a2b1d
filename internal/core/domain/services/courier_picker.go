package services

import (
	"errors"
	"math"

	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/courier"
	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/order"
)

// ErrCourierNotFound is returned when no courier can be picked for an order.
// This occurs when the candidate list is empty.
var ErrCourierNotFound = errors.New("courier not found")

// CourierPicker is a domain service that selects which of the available
// verified couriers should take an order. Callers pass candidates already
// filtered to verified and available; the picker only decides between them.
type CourierPicker interface {
	Pick(order *order.Order, couriers []*courier.Courier) (*courier.Courier, error)
}

// FirstAvailablePicker selects the first candidate in storage order,
// ignoring everyone's geolocation. This is the default assignment behavior.
type FirstAvailablePicker struct{}

// NewFirstAvailablePicker creates a FirstAvailablePicker.
func NewFirstAvailablePicker() FirstAvailablePicker {
	return FirstAvailablePicker{}
}

// Pick returns the first courier in the slice, or ErrCourierNotFound when
// the slice is empty.
func (p FirstAvailablePicker) Pick(ord *order.Order, couriers []*courier.Courier) (*courier.Courier, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}

	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	return nil, ErrCourierNotFound
}

// NearestCourierPicker selects the candidate whose last reported position is
// closest to the order's pickup point, by straight-line distance over degrees.
// Couriers without a reported position, and all couriers when the order has
// no geocoded location, rank behind everyone with a usable distance; ties and
// the no-location fallback resolve to the first candidate in storage order.
type NearestCourierPicker struct{}

// NewNearestCourierPicker creates a NearestCourierPicker.
func NewNearestCourierPicker() NearestCourierPicker {
	return NearestCourierPicker{}
}

// Pick returns the candidate nearest to the order's pickup location,
// or ErrCourierNotFound when the slice is empty.
func (p NearestCourierPicker) Pick(ord *order.Order, couriers []*courier.Courier) (*courier.Courier, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}

	var (
		bestCourier  *courier.Courier
		bestDistance = math.MaxFloat64
	)

	orderLocation := ord.Address().Location

	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		distance := math.MaxFloat64
		if orderLocation != nil && c.Geolocation() != nil {
			d, err := c.Geolocation().Point.Distance(*orderLocation)
			if err != nil {
				return nil, err
			}
			distance = d
		}

		if bestCourier == nil || distance < bestDistance {
			bestDistance = distance
			bestCourier = c
		}
	}

	if bestCourier == nil {
		return nil, ErrCourierNotFound
	}

	return bestCourier, nil
}
