package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"magvar-service/internal/domain"
	"magvar-service/internal/geomag"
	"magvar-service/internal/platform/metrics"
	"magvar-service/internal/platform/obs"
	"magvar-service/internal/ports"
	"time"
)

// FieldService wraps the field model with timing, metrics and query logging.
// Log and Metrics are optional.
type FieldService struct {
	Model   *geomag.Model
	Log     ports.QueryLog
	Metrics *metrics.Metrics
	Now     func() time.Time
}

func NewFieldService(model *geomag.Model, queryLog ports.QueryLog, m *metrics.Metrics) *FieldService {
	return &FieldService{Model: model, Log: queryLog, Metrics: m, Now: time.Now}
}

// IsInvalidInput reports whether err was caused by caller-supplied values.
func IsInvalidInput(err error) bool {
	return errors.Is(err, domain.ErrInvalidLatitude) ||
		errors.Is(err, domain.ErrInvalidLongitude) ||
		errors.Is(err, domain.ErrInvalidAltitude) ||
		errors.Is(err, geomag.ErrMissingDate) ||
		errors.Is(err, geomag.ErrInvalidDate)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, geomag.ErrNoBearing):
		return "no_bearing"
	case IsInvalidInput(err):
		return "invalid"
	default:
		return "error"
	}
}

// Field computes the full field for coords at a decimal year.
func (s *FieldService) Field(ctx context.Context, coords domain.GeoCoordinates, decimalYear float64) (_ domain.MagneticField, err error) {
	defer obs.Time(ctx, "field.Field")(&err)
	start := time.Now()
	defer func() { s.Metrics.ObserveQuery("field", outcome(err), time.Since(start)) }()

	f, err := s.Model.ComputeFieldAt(coords, decimalYear)
	if err != nil {
		return domain.MagneticField{}, fmt.Errorf("field: %w", err)
	}

	s.observe(ctx, "field", coords, f.ModelInfo, f.Declination, f.BearingDefined)
	return f, nil
}

// Variation computes declination only, at sea level.
func (s *FieldService) Variation(ctx context.Context, lat, lon, decimalYear float64) (_ domain.Variation, err error) {
	defer obs.Time(ctx, "field.Variation")(&err)
	start := time.Now()
	defer func() { s.Metrics.ObserveQuery("variation", outcome(err), time.Since(start)) }()

	v, err := s.Model.ComputeVariationAt(lat, lon, decimalYear)
	if err != nil && !errors.Is(err, geomag.ErrNoBearing) {
		return domain.Variation{}, fmt.Errorf("variation: %w", err)
	}

	s.observe(ctx, "variation", domain.GeoCoordinates{Lat: lat, Lon: lon}, v.ModelInfo, v.Declination, err == nil)
	if err != nil {
		return v, fmt.Errorf("variation: %w", err)
	}
	return v, nil
}

// observe counts out-of-validity queries and appends to the query log.
// A failing log write is reported but never fails the query.
func (s *FieldService) observe(ctx context.Context, op string, coords domain.GeoCoordinates, info domain.ModelInfo, declination float64, bearing bool) {
	if info.OutsideValidity {
		s.Metrics.IncrementOutsideValidity()
		log.Printf("req_id=%s op=%s warn=outside_validity years_from_epoch=%.2f", obs.RequestID(ctx), op, info.YearsFromEpoch)
	}

	if s.Log == nil {
		return
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	rec := domain.QueryRecord{
		RequestID:      obs.RequestID(ctx),
		Operation:      op,
		Coords:         coords,
		DecimalYear:    info.DecimalYear,
		Declination:    declination,
		BearingDefined: bearing,
		CreatedAt:      now().UTC(),
	}
	if err := s.Log.Record(ctx, rec); err != nil {
		log.Printf("req_id=%s op=%s query log write failed: %v", rec.RequestID, op, err)
	}
}

// History returns the most recent logged queries, newest first.
func (s *FieldService) History(ctx context.Context, limit int) ([]domain.QueryRecord, error) {
	if s.Log == nil {
		return []domain.QueryRecord{}, nil
	}

	recs, err := s.Log.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return recs, nil
}
