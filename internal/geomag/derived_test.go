package geomag

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveBasicGeometry(t *testing.T) {
	d := Derive(Components{X: 3, Y: 4, Z: 12}, false)

	assert.True(t, d.BearingDefined)
	assert.InDelta(t, 5, d.Horizontal, 1e-12)
	assert.InDelta(t, 13, d.Total, 1e-12)
	assert.InDelta(t, math.Atan2(4, 3)*180/math.Pi, d.Declination, 1e-12)
	assert.InDelta(t, math.Atan2(12, 5)*180/math.Pi, d.Inclination, 1e-12)
}

func TestDeriveDeclinationRateMatchesDifference(t *testing.T) {
	c := Components{X: 20000, Y: -1500, Z: 40000, XDot: 12, YDot: 35, ZDot: -20}
	d := Derive(c, false)

	const dt = 1e-3
	later := Derive(Components{X: c.X + c.XDot*dt, Y: c.Y + c.YDot*dt, Z: c.Z + c.ZDot*dt}, false)
	assert.InDelta(t, (later.Declination-d.Declination)/dt, d.DeclinationRate, 1e-6)
	assert.InDelta(t, (later.Inclination-d.Inclination)/dt, d.InclinationRate, 1e-6)
	assert.InDelta(t, (later.Total-d.Total)/dt, d.TotalRate, 1e-4)
	assert.InDelta(t, (later.Horizontal-d.Horizontal)/dt, d.HorizontalRate, 1e-4)
}

func TestDeriveVerticalFieldHasNoBearing(t *testing.T) {
	d := Derive(Components{Z: 60000, ZDot: 5, XDot: 3}, false)

	assert.False(t, d.BearingDefined)
	assert.Zero(t, d.Declination)
	assert.Zero(t, d.DeclinationRate)
	assert.Zero(t, d.HorizontalRate)
	assert.InDelta(t, 90, d.Inclination, 1e-12)
	assert.False(t, math.IsNaN(d.InclinationRate))
}

func TestDerivePoleHasNoBearing(t *testing.T) {
	d := Derive(Components{X: 1700, Z: 56000}, true)
	assert.False(t, d.BearingDefined)
	assert.Zero(t, d.Declination)
	assert.InDelta(t, 1700, d.Horizontal, 1e-12)
}

func TestDeriveZeroField(t *testing.T) {
	d := Derive(Components{}, false)
	assert.False(t, d.BearingDefined)
	assert.Zero(t, d.Total)
	assert.Zero(t, d.TotalRate)
}
