package services

import (
	"context"
	"errors"
	"magvar-service/internal/adapters/querylog"
	"magvar-service/internal/domain"
	"magvar-service/internal/geomag"
	"magvar-service/internal/platform/metrics"
	"magvar-service/internal/platform/obs"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingLog struct{}

func (failingLog) Record(ctx context.Context, rec domain.QueryRecord) error {
	return errors.New("disk full")
}

func (failingLog) Recent(ctx context.Context, limit int) ([]domain.QueryRecord, error) {
	return nil, errors.New("disk full")
}

func newTestService(t *testing.T) (*FieldService, *querylog.MemoryQueryLog, *metrics.Metrics) {
	t.Helper()
	ql := querylog.NewMemoryQueryLog()
	m := metrics.New(prometheus.NewRegistry())
	svc := NewFieldService(geomag.WMM2025(), ql, m)
	svc.Now = func() time.Time { return time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC) }
	return svc, ql, m
}

func TestFieldServiceFieldRecordsQuery(t *testing.T) {
	svc, _, m := newTestService(t)
	ctx := obs.WithRequestID(context.Background(), "req-1")

	f, err := svc.Field(ctx, domain.GeoCoordinates{Lat: 80, Lon: 0}, 2025.0)
	require.NoError(t, err)
	assert.InDelta(t, 1.2815, f.Declination, 0.01)

	recs, err := svc.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "req-1", recs[0].RequestID)
	assert.Equal(t, "field", recs[0].Operation)
	assert.True(t, recs[0].BearingDefined)
	assert.Equal(t, 2025.0, recs[0].DecimalYear)
	assert.Equal(t, svc.Now(), recs[0].CreatedAt)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues("field", "ok")))
}

func TestFieldServiceInvalidInputIsNotRecorded(t *testing.T) {
	svc, ql, m := newTestService(t)

	_, err := svc.Field(context.Background(), domain.GeoCoordinates{Lat: -91}, 2025.0)
	require.Error(t, err)
	assert.True(t, IsInvalidInput(err))

	recs, _ := ql.Recent(context.Background(), 10)
	assert.Empty(t, recs)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues("field", "invalid")))
}

func TestFieldServiceVariationAtPole(t *testing.T) {
	svc, ql, m := newTestService(t)

	v, err := svc.Variation(context.Background(), -90, 0, 2026.0)
	require.ErrorIs(t, err, geomag.ErrNoBearing)
	assert.Equal(t, "WMM2025", v.Model)
	assert.Zero(t, v.Declination)

	recs, _ := ql.Recent(context.Background(), 10)
	require.Len(t, recs, 1)
	assert.False(t, recs[0].BearingDefined)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues("variation", "no_bearing")))
}

func TestFieldServiceCountsOutsideValidity(t *testing.T) {
	svc, _, m := newTestService(t)

	v, err := svc.Variation(context.Background(), 10, 10, 2032.0)
	require.NoError(t, err)
	assert.True(t, v.OutsideValidity)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OutsideValidity))
}

func TestFieldServiceSurvivesLogFailure(t *testing.T) {
	svc := NewFieldService(geomag.WMM2025(), failingLog{}, nil)

	_, err := svc.Field(context.Background(), domain.GeoCoordinates{Lat: 10, Lon: 10}, 2025.0)
	require.NoError(t, err)

	_, err = svc.History(context.Background(), 5)
	assert.Error(t, err)
}

func TestFieldServiceWithoutLog(t *testing.T) {
	svc := NewFieldService(geomag.WMM2025(), nil, nil)

	recs, err := svc.History(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, recs)
}
