package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Hemisphere string

const (
	North Hemisphere = "N"
	South Hemisphere = "S"
	East  Hemisphere = "E"
	West  Hemisphere = "W"
)

var (
	ErrInvalidHemisphere = errors.New("hemisphere must be one of N, S, E, W")
	ErrInvalidDegrees    = errors.New("degrees must be a finite number")
	ErrInvalidMinutes    = errors.New("minutes must be within [0, 60)")
	ErrInvalidDM         = errors.New(`expected "<deg> <min> <hemisphere>", e.g. "51 30.5 N"`)
)

// ParseHemisphere accepts a single hemisphere letter in either case.
func ParseHemisphere(s string) (Hemisphere, error) {
	switch h := Hemisphere(strings.ToUpper(strings.TrimSpace(s))); h {
	case North, South, East, West:
		return h, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrInvalidHemisphere)
	}
}

// DM is one position component in degrees and decimal minutes, the way it is
// read off a chart or a GPS display.
type DM struct {
	Degrees    float64
	Minutes    float64
	Hemisphere Hemisphere
}

// Decimal returns signed decimal degrees. S and W are negative; the sign of
// Degrees itself is ignored.
func (d DM) Decimal() (float64, error) {
	if _, err := ParseHemisphere(string(d.Hemisphere)); err != nil {
		return 0, err
	}
	if math.IsNaN(d.Degrees) || math.IsInf(d.Degrees, 0) {
		return 0, fmt.Errorf("degrees=%v: %w", d.Degrees, ErrInvalidDegrees)
	}
	if math.IsNaN(d.Minutes) || d.Minutes < 0 || d.Minutes >= 60 {
		return 0, fmt.Errorf("minutes=%v: %w", d.Minutes, ErrInvalidMinutes)
	}

	v := math.Abs(d.Degrees) + d.Minutes/60
	switch Hemisphere(strings.ToUpper(string(d.Hemisphere))) {
	case South, West:
		return -v, nil
	}
	return v, nil
}

// Latitude is Decimal restricted to the N/S hemispheres and [-90, 90].
func (d DM) Latitude() (float64, error) {
	if h, _ := ParseHemisphere(string(d.Hemisphere)); h != North && h != South {
		return 0, fmt.Errorf("latitude hemisphere %q: %w", d.Hemisphere, ErrInvalidHemisphere)
	}
	v, err := d.Decimal()
	if err != nil {
		return 0, err
	}
	if v < -90 || v > 90 {
		return 0, fmt.Errorf("lat=%v: %w", v, ErrInvalidLatitude)
	}
	return v, nil
}

// Longitude is Decimal restricted to the E/W hemispheres and [-180, 180].
func (d DM) Longitude() (float64, error) {
	if h, _ := ParseHemisphere(string(d.Hemisphere)); h != East && h != West {
		return 0, fmt.Errorf("longitude hemisphere %q: %w", d.Hemisphere, ErrInvalidHemisphere)
	}
	v, err := d.Decimal()
	if err != nil {
		return 0, err
	}
	if v < -180 || v > 180 {
		return 0, fmt.Errorf("lon=%v: %w", v, ErrInvalidLongitude)
	}
	return v, nil
}

// ParseDM reads "51 30.5 N", "51°30.5'N" or "0 7.8 w". Minutes may be omitted.
func ParseDM(s string) (DM, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return DM{}, ErrInvalidDM
	}

	hem, err := ParseHemisphere(raw[len(raw)-1:])
	if err != nil {
		return DM{}, fmt.Errorf("%q: %w", s, ErrInvalidDM)
	}

	body := strings.NewReplacer("°", " ", "'", " ", "′", " ").Replace(raw[:len(raw)-1])
	fields := strings.Fields(body)
	if len(fields) < 1 || len(fields) > 2 {
		return DM{}, fmt.Errorf("%q: %w", s, ErrInvalidDM)
	}

	d := DM{Hemisphere: hem}
	if d.Degrees, err = strconv.ParseFloat(fields[0], 64); err != nil {
		return DM{}, fmt.Errorf("%q: %w", s, ErrInvalidDM)
	}
	if len(fields) == 2 {
		if d.Minutes, err = strconv.ParseFloat(fields[1], 64); err != nil {
			return DM{}, fmt.Errorf("%q: %w", s, ErrInvalidDM)
		}
	}
	return d, nil
}

// ToDM splits signed decimal degrees into whole degrees and minutes rounded to
// hundredths. Non-negative values take pos, negative ones neg.
func ToDM(v float64, pos, neg Hemisphere) DM {
	h := pos
	if v < 0 {
		h = neg
	}

	abs := math.Abs(v)
	deg := math.Floor(abs)
	minutes := math.Round((abs-deg)*60*100) / 100
	// 59.999' rounds up into the next degree.
	if minutes >= 60 {
		deg++
		minutes = 0
	}
	return DM{Degrees: deg, Minutes: minutes, Hemisphere: h}
}

func (d DM) String() string {
	return fmt.Sprintf("%d° %.2f' %s", int(d.Degrees), d.Minutes, d.Hemisphere)
}

// FormatCoordinate renders a position as "51° 30.00' N, 0° 7.80' W".
func FormatCoordinate(lat, lon float64) string {
	return ToDM(lat, North, South).String() + ", " + ToDM(lon, East, West).String()
}
