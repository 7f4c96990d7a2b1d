// Package geo provides the geocoding adapter. The current implementation is
// a stub that pins every address to a fixed city-center coordinate; a real
// geocoding provider can replace it behind the same port.
package geo

import (
	"context"

	"github.com/RomanElektrik/musorok-bot/internal/core/domain/model/kernel"
	"github.com/RomanElektrik/musorok-bot/internal/core/ports"
)

// Moscow city center, the fallback coordinate for every address.
const (
	defaultLatitude  = 55.7558
	defaultLongitude = 37.6173
)

// StaticGeocoder resolves every address to the same fixed point.
type StaticGeocoder struct {
	point kernel.GeoPoint
}

// NewStaticGeocoder creates the stub geocoder.
func NewStaticGeocoder() (*StaticGeocoder, error) {
	point, err := kernel.NewGeoPoint(defaultLatitude, defaultLongitude)
	if err != nil {
		return nil, err
	}

	return &StaticGeocoder{point: point}, nil
}

// Geocode returns the fixed point for any address.
func (g *StaticGeocoder) Geocode(_ context.Context, _ string) (kernel.GeoPoint, error) {
	return g.point, nil
}

var _ ports.Geocoder = (*StaticGeocoder)(nil)
