package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveQuery(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveQuery("field", "ok", time.Millisecond)
	m.ObserveQuery("field", "ok", time.Millisecond)
	m.ObserveQuery("variation", "no_bearing", time.Millisecond)
	m.IncrementOutsideValidity()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Queries.WithLabelValues("field", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues("variation", "no_bearing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OutsideValidity))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveQuery("field", "ok", time.Millisecond)
	m.IncrementOutsideValidity()
}
