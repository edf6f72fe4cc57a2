package handler

import (
	"errors"
	"net/http"

	"github.com/evyataryagoni/whoami/internal/clientinfo"
	"github.com/evyataryagoni/whoami/internal/logger"
	"github.com/evyataryagoni/whoami/internal/models"
	"github.com/evyataryagoni/whoami/internal/service"
	"github.com/go-chi/chi/v5/middleware"
)

// Paths served by WhoAmIHandler; everything else is a 404
const (
	PathText = "/"
	PathJSON = "/json"
)

// WhoAmIHandler answers with the caller's IP and records who asked
//
// Every request, whatever its path, goes through the same steps:
//  1. Resolve IP and country from trusted headers
//  2. Persist the observation and wait for the store
//  3. Route on the exact URL path
type WhoAmIHandler struct {
	resolver *clientinfo.Resolver
	service  *service.ObservationService
	logger   *logger.Logger
}

// NewWhoAmIHandler creates a new handler with the given resolver and service
func NewWhoAmIHandler(resolver *clientinfo.Resolver, service *service.ObservationService, log *logger.Logger) *WhoAmIHandler {
	if log == nil {
		log = logger.NewDefault()
	}
	return &WhoAmIHandler{
		resolver: resolver,
		service:  service,
		logger:   log.WithComponent("WhoAmIHandler"),
	}
}

// ServeHTTP handles any method on any path
func (h *WhoAmIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	obs := h.resolver.Resolve(r)

	_, err := h.service.Record(r.Context(), obs)
	switch {
	case errors.Is(err, service.ErrMissingIP), errors.Is(err, service.ErrMissingCountry):
		errorView(w, http.StatusInternalServerError, err.Error(), true)
		return
	case err != nil:
		// Same surface as an unhandled failure on the edge platform
		h.logger.Error().Err(err).
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("ip", obs.IP).
			Msg("Request failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	switch r.URL.Path {
	case PathText:
		textView(w, obs.IP, 0)
	case PathJSON:
		jsonView(w, &models.IPView{IP: obs.IP}, 0)
	default:
		errorView(w, http.StatusNotFound, "invalid url", true)
	}
}
