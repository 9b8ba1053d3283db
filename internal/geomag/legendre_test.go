package geomag

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegendreClosedForms(t *testing.T) {
	theta := 0.7
	s, c := math.Sincos(theta)
	tab := Legendre(3, theta)

	require.Equal(t, 3, tab.Degree())
	assert.InDelta(t, 1, tab.P(0, 0), 1e-15)
	assert.InDelta(t, c, tab.P(1, 0), 1e-15)
	assert.InDelta(t, s, math.Sqrt2*tab.P(1, 1), 1e-15)
	assert.InDelta(t, (3*c*c-1)/2, tab.P(2, 0), 1e-14)
	assert.InDelta(t, math.Sqrt(3)*s*c, math.Sqrt2*tab.P(2, 1), 1e-14)
	assert.InDelta(t, math.Sqrt(3)/2*s*s, math.Sqrt2*tab.P(2, 2), 1e-14)
	assert.InDelta(t, (5*c*c*c-3*c)/2, tab.P(3, 0), 1e-14)
}

func TestLegendreDerivativeMatchesFiniteDifference(t *testing.T) {
	const h = 1e-6
	for _, theta := range []float64{0.05, 0.7, 1.5707963, 2.4, 3.1} {
		tab := Legendre(MaxDegree, theta)
		up := Legendre(MaxDegree, theta+h)
		down := Legendre(MaxDegree, theta-h)

		for n := 0; n <= MaxDegree; n++ {
			for m := 0; m <= n; m++ {
				fd := (up.P(n, m) - down.P(n, m)) / (2 * h)
				assert.InDelta(t, fd, tab.DP(n, m), 1e-7, "theta=%v n=%d m=%d", theta, n, m)
			}
		}
	}
}

func TestLegendreFiniteAtPoles(t *testing.T) {
	for _, theta := range []float64{0, math.Pi} {
		tab := Legendre(MaxDegree, theta)
		for n := 0; n <= MaxDegree; n++ {
			for m := 0; m <= n; m++ {
				assert.False(t, math.IsNaN(tab.P(n, m)) || math.IsInf(tab.P(n, m), 0), "P(%d,%d) at %v", n, m, theta)
				assert.False(t, math.IsNaN(tab.DP(n, m)) || math.IsInf(tab.DP(n, m), 0), "dP(%d,%d) at %v", n, m, theta)
			}
		}
	}

	north := Legendre(MaxDegree, 0)
	assert.InDelta(t, 1, north.P(5, 0), 1e-15)
	assert.InDelta(t, 0, north.P(5, 3), 1e-15)
	assert.InDelta(t, 1/math.Sqrt2, north.DP(1, 1), 1e-15)
}

func TestLegendreNegativeDegree(t *testing.T) {
	tab := Legendre(-3, 1)
	assert.Equal(t, 0, tab.Degree())
	assert.Equal(t, 1.0, tab.P(0, 0))
}
