package order

import "github.com/RomanElektrik/musorok-bot/internal/core/domain/model/kernel"

// Address is the pickup address as collected by the customer conversation.
// Fields are free text captured with best-effort parsing; none of them is
// validated beyond the street requirement on the order itself, because
// malformed user input falls back to defaults instead of being rejected.
//
// Location is the geocoded coordinate of the street, nil when geocoding did
// not run.
type Address struct {
	Street      string
	HouseNumber string
	Entrance    string
	Floor       string
	Apartment   string
	Location    *kernel.GeoPoint
}
