package admin

import (
	"context"
	"net/http"
	"time"

	"github.com/evyataryagoni/whoami/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// healthTimeout bounds the store ping done by /health
const healthTimeout = 2 * time.Second

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// SetupRoutes configures the admin endpoints
//
//   - GET /health: 200 "OK" when the store answers, 503 otherwise
//   - GET /metrics: Prometheus exposition from gatherer
func SetupRoutes(pinger Pinger, gatherer prometheus.Gatherer, log *logger.Logger) chi.Router {
	r := chi.NewRouter()

	r.Get("/health", healthCheckHandler(pinger, log))
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return r
}

// healthCheckHandler is used by load balancers and monitoring
func healthCheckHandler(pinger Pinger, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		w.Header().Set("Content-Type", "text/plain;charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")

		if err := pinger.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("Health check failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("unhealthy"))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
