package geomag

import (
	"errors"
	"fmt"
	"magvar-service/internal/domain"
	"math"
	"time"
)

var (
	ErrMissingDate = errors.New("an explicit date is required")
	ErrInvalidDate = errors.New("decimal year must be a finite number")
	// Returned alongside a result whose declination is indeterminate: where the
	// horizontal field vanishes, and within about 0.006° of either geographic
	// pole (sin of the geocentric colatitude at or below PoleGuard), where true
	// north is undefined.
	ErrNoBearing = errors.New("declination is indeterminate at this location")
)

// Model is an immutable coefficient set with its constants. A Model holds no
// mutable state and may be shared freely between goroutines.
type Model struct {
	constants    Constants
	coefficients []Coefficient
	maxDegree    int
}

var wmm2025 = &Model{
	constants:    wmm2025Constants,
	coefficients: wmm2025Coefficients[:],
	maxDegree:    MaxDegree,
}

// WMM2025 returns the compiled-in World Magnetic Model, epoch 2025.0.
func WMM2025() *Model { return wmm2025 }

// NewModel builds a model from an ordered coefficient table. The table is
// copied.
func NewModel(c Constants, coeffs []Coefficient) (*Model, error) {
	if len(coeffs) == 0 {
		return nil, errors.New("new model: no coefficients")
	}
	maxDegree := coeffs[len(coeffs)-1].N
	if err := validateCoefficients(coeffs, maxDegree); err != nil {
		return nil, fmt.Errorf("new model: %w", err)
	}
	if c.MeanRadiusKm <= 0 || c.SemiMajorAxisKm <= 0 {
		return nil, errors.New("new model: radii must be positive")
	}

	own := make([]Coefficient, len(coeffs))
	copy(own, coeffs)
	return &Model{constants: c, coefficients: own, maxDegree: maxDegree}, nil
}

// Constants returns the model constants.
func (m *Model) Constants() Constants { return m.constants }

// MaxDegree returns the highest degree of the expansion.
func (m *Model) MaxDegree() int { return m.maxDegree }

// Coefficients returns a copy of the ordered coefficient table.
func (m *Model) Coefficients() []Coefficient {
	out := make([]Coefficient, len(m.coefficients))
	copy(out, m.coefficients)
	return out
}

// Validate checks the coefficient table invariants.
func (m *Model) Validate() error {
	return validateCoefficients(m.coefficients, m.maxDegree)
}

// Label is the provenance string shown next to results, e.g. "WMM2025 epoch 2025.0".
func (m *Model) Label() string {
	return fmt.Sprintf("%s epoch %.1f", m.constants.Name, m.constants.Epoch)
}

// Info describes how a decimal year relates to the model epoch.
func (m *Model) Info(decimalYear float64) domain.ModelInfo {
	dt := decimalYear - m.constants.Epoch
	return domain.ModelInfo{
		Model:           m.constants.Name,
		Epoch:           m.constants.Epoch,
		DecimalYear:     decimalYear,
		YearsFromEpoch:  dt,
		OutsideValidity: math.Abs(dt) > m.constants.ValidityYears,
	}
}

// ComputeField evaluates the full field at coords on the UTC day of t.
func (m *Model) ComputeField(coords domain.GeoCoordinates, t time.Time) (domain.MagneticField, error) {
	if t.IsZero() {
		return domain.MagneticField{}, fmt.Errorf("compute field: %w", ErrMissingDate)
	}
	return m.ComputeFieldAt(coords, DecimalYear(t))
}

// ComputeFieldAt evaluates the full field at coords for a decimal year.
func (m *Model) ComputeFieldAt(coords domain.GeoCoordinates, decimalYear float64) (domain.MagneticField, error) {
	if err := coords.Validate(); err != nil {
		return domain.MagneticField{}, fmt.Errorf("compute field: %w", err)
	}
	if math.IsNaN(decimalYear) || math.IsInf(decimalYear, 0) {
		return domain.MagneticField{}, fmt.Errorf("compute field: %w", ErrInvalidDate)
	}

	geoLat, radius := Geocentric(coords.Lat, coords.AltKm, m.constants)
	theta := (90 - geoLat) * degRad
	sinTheta := math.Sin(theta)

	geocentric := Synthesize(SynthesisInput{
		Coefficients: m.coefficients,
		Legendre:     Legendre(m.maxDegree, theta),
		DeltaYears:   decimalYear - m.constants.Epoch,
		RadiusKm:     radius,
		MeanRadiusKm: m.constants.MeanRadiusKm,
		Longitude:    coords.Lon * degRad,
		SinTheta:     sinTheta,
	})
	c := geocentric.ToGeodetic((geoLat - coords.Lat) * degRad)
	d := Derive(c, sinTheta <= PoleGuard)

	return domain.MagneticField{
		ModelInfo:       m.Info(decimalYear),
		Declination:     d.Declination,
		Inclination:     d.Inclination,
		Total:           d.Total,
		Horizontal:      d.Horizontal,
		North:           c.X,
		East:            c.Y,
		Down:            c.Z,
		DeclinationRate: d.DeclinationRate,
		InclinationRate: d.InclinationRate,
		TotalRate:       d.TotalRate,
		HorizontalRate:  d.HorizontalRate,
		NorthRate:       c.XDot,
		EastRate:        c.YDot,
		DownRate:        c.ZDot,
		BearingDefined:  d.BearingDefined,
	}, nil
}

// ComputeVariation returns only the declination at sea level. When the
// declination is indeterminate it returns ErrNoBearing together with a
// Variation carrying the provenance fields.
func (m *Model) ComputeVariation(lat, lon float64, t time.Time) (domain.Variation, error) {
	f, err := m.ComputeField(domain.GeoCoordinates{Lat: lat, Lon: lon}, t)
	if err != nil {
		return domain.Variation{}, fmt.Errorf("compute variation: %w", err)
	}
	return variationOf(f)
}

// ComputeVariationAt is ComputeVariation for a decimal year.
func (m *Model) ComputeVariationAt(lat, lon, decimalYear float64) (domain.Variation, error) {
	f, err := m.ComputeFieldAt(domain.GeoCoordinates{Lat: lat, Lon: lon}, decimalYear)
	if err != nil {
		return domain.Variation{}, fmt.Errorf("compute variation: %w", err)
	}
	return variationOf(f)
}

func variationOf(f domain.MagneticField) (domain.Variation, error) {
	v := domain.Variation{ModelInfo: f.ModelInfo}
	if !f.BearingDefined {
		return v, fmt.Errorf("compute variation: %w", ErrNoBearing)
	}
	v.Declination = f.Declination
	v.AnnualChange = f.DeclinationRate
	return v, nil
}

// ComputeField evaluates the compiled-in model.
func ComputeField(coords domain.GeoCoordinates, t time.Time) (domain.MagneticField, error) {
	return wmm2025.ComputeField(coords, t)
}

// ComputeVariation evaluates the compiled-in model's declination.
func ComputeVariation(lat, lon float64, t time.Time) (domain.Variation, error) {
	return wmm2025.ComputeVariation(lat, lon, t)
}
