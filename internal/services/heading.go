package services

import (
	"context"
	"errors"
	"fmt"
	"magvar-service/internal/domain"
	"magvar-service/internal/platform/obs"
	"math"
	"time"
)

type HeadingDirection string

const (
	TrueToCompassDirection HeadingDirection = "true_to_compass"
	CompassToTrueDirection HeadingDirection = "compass_to_true"
)

var (
	ErrInvalidHeading   = errors.New("heading must be a finite number of degrees")
	ErrInvalidDirection = errors.New("direction must be true_to_compass or compass_to_true")
)

// NormalizeHeading maps any angle in degrees into [0, 360).
func NormalizeHeading(deg float64) float64 {
	h := math.Mod(deg, 360)
	if h < 0 {
		h += 360
	}
	// -1e-15 + 360 rounds to 360.
	if h >= 360 {
		h = 0
	}
	return h
}

// TrueToCompass applies an east-positive declination to a true heading.
func TrueToCompass(trueHeading, declination float64) float64 {
	return NormalizeHeading(trueHeading - declination)
}

// CompassToTrue is the inverse of TrueToCompass.
func CompassToTrue(compassHeading, declination float64) float64 {
	return NormalizeHeading(compassHeading + declination)
}

type HeadingRequest struct {
	Lat         float64
	Lon         float64
	DecimalYear float64
	Heading     float64
	Direction   HeadingDirection
}

type HeadingResult struct {
	Variation domain.Variation
	Input     float64
	Output    float64
	Direction HeadingDirection
}

// ConvertHeading computes the local variation and converts the heading.
func (s *FieldService) ConvertHeading(ctx context.Context, req HeadingRequest) (_ HeadingResult, err error) {
	defer obs.Time(ctx, "field.ConvertHeading")(&err)

	if math.IsNaN(req.Heading) || math.IsInf(req.Heading, 0) {
		return HeadingResult{}, fmt.Errorf("convert heading: %w", ErrInvalidHeading)
	}

	dir := req.Direction
	if dir == "" {
		dir = TrueToCompassDirection
	}
	if dir != TrueToCompassDirection && dir != CompassToTrueDirection {
		return HeadingResult{}, fmt.Errorf("convert heading: %q: %w", dir, ErrInvalidDirection)
	}

	v, err := s.variationFor(ctx, "heading", req.Lat, req.Lon, req.DecimalYear)
	if err != nil {
		return HeadingResult{}, fmt.Errorf("convert heading: %w", err)
	}

	out := TrueToCompass(req.Heading, v.Declination)
	if dir == CompassToTrueDirection {
		out = CompassToTrue(req.Heading, v.Declination)
	}

	return HeadingResult{
		Variation: v,
		Input:     NormalizeHeading(req.Heading),
		Output:    out,
		Direction: dir,
	}, nil
}

// FormatVariation renders a declination as "2.34° E" or "1.10° W".
func FormatVariation(declination float64) string {
	dir := "E"
	if declination < 0 {
		dir = "W"
	}
	return fmt.Sprintf("%.2f° %s", math.Abs(declination), dir)
}

// CompassError is the compass reading minus the magnetic heading implied by
// trueHeading and an east-positive variation, normalized to (-180, 180].
func CompassError(trueHeading, compassReading, variation float64) float64 {
	e := math.Mod(compassReading-(trueHeading-variation), 360)
	if e > 180 {
		e -= 360
	}
	if e <= -180 {
		e += 360
	}
	return e
}

type CompassErrorRequest struct {
	Lat            float64
	Lon            float64
	DecimalYear    float64
	TrueHeading    float64
	CompassReading float64
}

type CompassErrorResult struct {
	Variation       domain.Variation
	TrueHeading     float64
	MagneticHeading float64
	CompassReading  float64
	Error           float64
}

// CompassError looks up the local variation and reports how far a compass
// reading is off the magnetic heading for a known true heading.
func (s *FieldService) CompassError(ctx context.Context, req CompassErrorRequest) (_ CompassErrorResult, err error) {
	defer obs.Time(ctx, "field.CompassError")(&err)

	for _, h := range []float64{req.TrueHeading, req.CompassReading} {
		if math.IsNaN(h) || math.IsInf(h, 0) {
			return CompassErrorResult{}, fmt.Errorf("compass error: %w", ErrInvalidHeading)
		}
	}

	v, err := s.variationFor(ctx, "compass_error", req.Lat, req.Lon, req.DecimalYear)
	if err != nil {
		return CompassErrorResult{}, fmt.Errorf("compass error: %w", err)
	}

	return CompassErrorResult{
		Variation:       v,
		TrueHeading:     NormalizeHeading(req.TrueHeading),
		MagneticHeading: TrueToCompass(req.TrueHeading, v.Declination),
		CompassReading:  NormalizeHeading(req.CompassReading),
		Error:           CompassError(req.TrueHeading, req.CompassReading, v.Declination),
	}, nil
}

// variationFor evaluates the sea-level variation for a heading-style operation,
// counting it under op and appending it to the query log.
func (s *FieldService) variationFor(ctx context.Context, op string, lat, lon, decimalYear float64) (domain.Variation, error) {
	start := time.Now()
	v, err := s.Model.ComputeVariationAt(lat, lon, decimalYear)
	s.Metrics.ObserveQuery(op, outcome(err), time.Since(start))
	if err != nil {
		return domain.Variation{}, err
	}
	s.observe(ctx, op, domain.GeoCoordinates{Lat: lat, Lon: lon}, v.ModelInfo, v.Declination, true)
	return v, nil
}
