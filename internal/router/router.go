package router

import (
	"net/http"

	"github.com/evyataryagoni/whoami/internal/handler"
	"github.com/evyataryagoni/whoami/internal/logger"
	"github.com/evyataryagoni/whoami/internal/metrics"
	custommiddleware "github.com/evyataryagoni/whoami/internal/middleware"
	"github.com/evyataryagoni/whoami/internal/router/admin"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// SetupRouter creates the public router
// Every path is handed to the WhoAmI handler, which does its own exact-match
// routing after recording the observation. m may be nil to disable metrics.
func SetupRouter(h http.Handler, m *metrics.Metrics, log *logger.Logger) chi.Router {
	r := chi.NewRouter()

	// Order matters! RequestID should be first, then logging
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.LoggingMiddleware(log))
	r.Use(middleware.Recoverer)
	if m != nil {
		r.Use(custommiddleware.MetricsMiddleware(m, handler.PathText, handler.PathJSON))
	}

	r.Handle("/", h)
	r.Handle("/*", h)

	return r
}

// SetupAdminRouter creates the router for the admin listener
// It is served on its own port so /health and /metrics never shadow a public path
func SetupAdminRouter(pinger admin.Pinger, gatherer prometheus.Gatherer, log *logger.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Mount("/", admin.SetupRoutes(pinger, gatherer, log))

	return r
}
