package domain

import (
	"errors"
	"fmt"
	"math"
)

// Lowest altitude the model is specified for, in kilometres.
const MinAltitudeKm = -1.0

var (
	ErrInvalidLatitude  = errors.New("latitude must be within [-90, 90] degrees")
	ErrInvalidLongitude = errors.New("longitude must be within [-180, 180] degrees")
	ErrInvalidAltitude  = errors.New("altitude must be finite and not below -1 km")
)

// Immutable geodetic (WGS84) coordinates.
// Latitude and longitude are in degrees (east-positive), altitude in kilometres
// above the ellipsoid.
type GeoCoordinates struct {
	Lat   float64
	Lon   float64
	AltKm float64
}

// Validate reports the first out-of-range component.
func (c GeoCoordinates) Validate() error {
	if math.IsNaN(c.Lat) || c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("lat=%v: %w", c.Lat, ErrInvalidLatitude)
	}
	if math.IsNaN(c.Lon) || c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("lon=%v: %w", c.Lon, ErrInvalidLongitude)
	}
	if math.IsNaN(c.AltKm) || math.IsInf(c.AltKm, 0) || c.AltKm < MinAltitudeKm {
		return fmt.Errorf("alt_km=%v: %w", c.AltKm, ErrInvalidAltitude)
	}
	return nil
}
