package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	OracleCalls     *prometheus.CounterVec
	PhotosAnalyzed  prometheus.Counter
	PhotosFailed    prometheus.Counter
	ProfileScores   prometheus.Histogram
}

// NewMetrics registers the service collectors on a fresh registry and
// returns both. A dedicated registry keeps tests from tripping over
// duplicate registration.
func NewMetrics() (*Metrics, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "photocoach_http_requests_total",
			Help: "HTTP requests by method, path and status.",
		}, []string{"method", "path", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "photocoach_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		OracleCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "photocoach_oracle_calls_total",
			Help: "Oracle provider calls by provider and outcome.",
		}, []string{"provider", "outcome"}),
		PhotosAnalyzed: factory.NewCounter(prometheus.CounterOpts{
			Name: "photocoach_photos_analyzed_total",
			Help: "Photos that completed scoring.",
		}),
		PhotosFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "photocoach_photos_failed_total",
			Help: "Photos excluded after oracle failure.",
		}),
		ProfileScores: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "photocoach_profile_score",
			Help:    "Distribution of aggregated profile scores.",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		}),
	}
	return m, reg
}

// ObserveOracleCall records one provider call outcome.
func (m *Metrics) ObserveOracleCall(provider string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.OracleCalls.WithLabelValues(provider, outcome).Inc()
}
