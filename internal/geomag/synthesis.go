package geomag

import "math"

// PoleGuard is the sinθ threshold below which east-component terms are dropped
// instead of being divided by a vanishing sinθ.
const PoleGuard = 1e-4

// Components are the field vector (nT) and its secular rate (nT/year) in the
// local north/east/down frame.
type Components struct {
	X, Y, Z          float64
	XDot, YDot, ZDot float64
}

// SynthesisInput gathers everything one synthesis pass needs.
type SynthesisInput struct {
	Coefficients []Coefficient
	Legendre     *LegendreTable
	// Years from the model epoch.
	DeltaYears float64
	// Geocentric radius in km.
	RadiusKm     float64
	MeanRadiusKm float64
	// Longitude in radians.
	Longitude float64
	// sin of the geocentric colatitude.
	SinTheta float64
}

// Synthesize sums the spherical-harmonic expansion over every coefficient and
// returns the components in the geocentric frame.
func Synthesize(in SynthesisInput) Components {
	var out Components
	ratio := in.MeanRadiusKm / in.RadiusKm
	dropEast := in.SinTheta <= PoleGuard

	for _, c := range in.Coefficients {
		if c.N > in.Legendre.Degree() {
			break
		}

		g := c.G + c.GDot*in.DeltaYears
		h := c.H + c.HDot*in.DeltaYears

		scale := 1.0
		if c.M > 0 {
			scale = math.Sqrt2
		}
		radial := math.Pow(ratio, float64(c.N+2))
		sinML, cosML := math.Sincos(float64(c.M) * in.Longitude)

		p := in.Legendre.P(c.N, c.M)
		dp := in.Legendre.DP(c.N, c.M)
		k := radial * scale

		term := k * (g*cosML + h*sinML)
		rate := k * (c.GDot*cosML + c.HDot*sinML)

		out.X += term * dp
		out.XDot += rate * dp
		out.Z -= float64(c.N+1) * term * p
		out.ZDot -= float64(c.N+1) * rate * p

		if c.M > 0 && !dropEast {
			fm := float64(c.M)
			out.Y += k * fm * (g*sinML - h*cosML) * p / in.SinTheta
			out.YDot += k * fm * (c.GDot*sinML - c.HDot*cosML) * p / in.SinTheta
		}
	}

	return out
}

// ToGeodetic rotates the north and down components (and their rates) from the
// geocentric frame into the ellipsoidal frame. psi is geocentric minus geodetic
// latitude, in radians.
func (c Components) ToGeodetic(psi float64) Components {
	sinPsi, cosPsi := math.Sincos(psi)
	return Components{
		X:    c.X*cosPsi - c.Z*sinPsi,
		Y:    c.Y,
		Z:    c.X*sinPsi + c.Z*cosPsi,
		XDot: c.XDot*cosPsi - c.ZDot*sinPsi,
		YDot: c.YDot,
		ZDot: c.XDot*sinPsi + c.ZDot*cosPsi,
	}
}
