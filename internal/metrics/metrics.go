package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestSize     *prometheus.HistogramVec
	HTTPResponseSize    *prometheus.HistogramVec

	// Key-value store Metrics
	KVPutsTotal   *prometheus.CounterVec
	KVPutDuration *prometheus.HistogramVec

	// Application Metrics
	ObservationsTotal  *prometheus.CounterVec
	ObservationsErrors *prometheus.CounterVec
}

// New creates all Prometheus metrics and registers them on reg
// Use prometheus.DefaultRegisterer to expose them through promhttp.Handler()
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		// HTTP Metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint", "status"},
		),

		HTTPRequestSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: prometheus.ExponentialBuckets(100, 10, 7),
			},
			[]string{"method", "endpoint"},
		),

		HTTPResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: prometheus.ExponentialBuckets(10, 10, 5),
			},
			[]string{"method", "endpoint", "status"},
		),

		KVPutsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kv_puts_total",
				Help: "Total number of key-value store writes",
			},
			[]string{"backend", "status"},
		),

		KVPutDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "kv_put_duration_seconds",
				Help:    "Key-value store write latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"backend"},
		),

		ObservationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "observations_recorded_total",
				Help: "Total number of recorded client observations",
			},
			[]string{"country"},
		),

		ObservationsErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "observations_errors_total",
				Help: "Total number of observations that could not be recorded",
			},
			[]string{"error_type"},
		),
	}
}
