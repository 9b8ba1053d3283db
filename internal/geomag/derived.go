package geomag

import "math"

// Derived holds the scalar quantities navigators use.
type Derived struct {
	Declination     float64 // degrees, east positive
	Inclination     float64 // degrees, down positive
	Horizontal      float64 // nT
	Total           float64 // nT
	DeclinationRate float64 // degrees/year
	InclinationRate float64 // degrees/year
	HorizontalRate  float64 // nT/year
	TotalRate       float64 // nT/year

	// False when declination has no meaning: a purely vertical field, or a
	// geographic pole where true north is undefined.
	BearingDefined bool
}

// Derive reduces the vector components to declination, inclination and
// intensities. atPole marks a point where the bearing is undefined regardless
// of the horizontal field.
func Derive(c Components, atPole bool) Derived {
	h := math.Hypot(c.X, c.Y)
	f := math.Hypot(h, c.Z)

	d := Derived{
		Horizontal:  h,
		Total:       f,
		Inclination: math.Atan2(c.Z, h) * radDeg,
	}

	if h > 0 {
		d.HorizontalRate = (c.X*c.XDot + c.Y*c.YDot) / h
	}
	if f > 0 {
		d.TotalRate = (c.X*c.XDot + c.Y*c.YDot + c.Z*c.ZDot) / f
		d.InclinationRate = (h*c.ZDot - c.Z*d.HorizontalRate) / (f * f) * radDeg
	}

	if h == 0 || atPole {
		return d
	}

	d.BearingDefined = true
	d.Declination = math.Atan2(c.Y, c.X) * radDeg
	d.DeclinationRate = (c.X*c.YDot - c.Y*c.XDot) / (h * h) * radDeg
	return d
}
