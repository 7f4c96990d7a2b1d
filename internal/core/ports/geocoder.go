package ports

import (
	"context"

	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/kernel"
)

// Geocoder resolves a free-text street address to a coordinate.
// Failures are soft: the order is placed without a location.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (kernel.GeoPoint, error)
}
