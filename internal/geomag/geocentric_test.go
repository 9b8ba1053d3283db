package geomag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeocentricEquatorAndPole(t *testing.T) {
	c := WMM2025().Constants()

	lat, r := Geocentric(0, 0, c)
	assert.InDelta(t, 0, lat, 1e-12)
	assert.InDelta(t, 6378.137, r, 1e-9)

	lat, r = Geocentric(90, 0, c)
	assert.InDelta(t, 90, lat, 1e-9)
	assert.InDelta(t, 6356.752314245, r, 1e-6)

	lat, r = Geocentric(-90, 0, c)
	assert.InDelta(t, -90, lat, 1e-9)
	assert.InDelta(t, 6356.752314245, r, 1e-6)
}

func TestGeocentricMidLatitude(t *testing.T) {
	c := WMM2025().Constants()

	lat, r := Geocentric(80, 0, c)
	assert.InDelta(t, 79.934, lat, 1e-3)
	assert.InDelta(t, 6357.4024, r, 1e-3)

	// Geocentric latitude is always nearer the equator than geodetic.
	lat, _ = Geocentric(-45, 0, c)
	assert.Greater(t, lat, -45.0)
	assert.Less(t, lat, -44.7)
}

func TestGeocentricRadiusGrowsWithAltitude(t *testing.T) {
	c := WMM2025().Constants()

	prev := 0.0
	for _, alt := range []float64{-1, 0, 0.5, 10, 100, 850} {
		_, r := Geocentric(37.5, alt, c)
		assert.Greater(t, r, prev, "alt=%v", alt)
		prev = r
	}
}
