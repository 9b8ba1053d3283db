package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for field queries.
type Metrics struct {
	// Queries by operation ("field", "variation", "heading", "compass_error")
	// and outcome ("ok", "invalid", "no_bearing", "error").
	Queries *prometheus.CounterVec

	// Query latency by operation
	QueryLatency *prometheus.HistogramVec

	// Queries whose date lies outside the model's validity window
	OutsideValidity prometheus.Counter
}

// New creates a Metrics instance registered on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Queries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "magvar_queries_total",
			Help: "Total field model queries by operation and outcome",
		}, []string{"operation", "outcome"}),

		QueryLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "magvar_query_duration_seconds",
			Help:    "Duration of field model queries including query logging",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"operation"}),

		OutsideValidity: factory.NewCounter(prometheus.CounterOpts{
			Name: "magvar_outside_validity_total",
			Help: "Queries evaluated more than the validity span away from the model epoch",
		}),
	}
}

// ObserveQuery records one query's outcome and duration.
func (m *Metrics) ObserveQuery(operation, outcome string, d time.Duration) {
	if m != nil {
		m.Queries.WithLabelValues(operation, outcome).Inc()
		m.QueryLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}

// IncrementOutsideValidity counts a query beyond the model's validity window.
func (m *Metrics) IncrementOutsideValidity() {
	if m != nil {
		m.OutsideValidity.Inc()
	}
}
