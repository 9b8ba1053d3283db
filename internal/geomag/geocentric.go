package geomag

import "math"

const (
	degRad = math.Pi / 180
	radDeg = 180 / math.Pi
)

// Geocentric converts a geodetic latitude (degrees) and altitude above the
// ellipsoid (km) into geocentric latitude (degrees) and distance from the
// Earth's centre (km). Longitude plays no part, so the point is placed on the
// zero meridian.
func Geocentric(latDeg, altKm float64, c Constants) (geocentricLatDeg, radiusKm float64) {
	phi := latDeg * degRad
	sinPhi, cosPhi := math.Sincos(phi)

	// Prime-vertical radius of curvature.
	n := c.SemiMajorAxisKm / math.Sqrt(1-c.EccentricitySquared*sinPhi*sinPhi)

	x := (n + altKm) * cosPhi
	y := 0.0
	z := (n*(1-c.EccentricitySquared) + altKm) * sinPhi

	p := math.Sqrt(x*x + y*y)
	return math.Atan2(z, p) * radDeg, math.Sqrt(x*x + y*y + z*z)
}
