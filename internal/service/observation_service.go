package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/evyataryagoni/whoami/internal/logger"
	"github.com/evyataryagoni/whoami/internal/metrics"
	"github.com/evyataryagoni/whoami/internal/models"
	"github.com/evyataryagoni/whoami/internal/store"
	"github.com/go-playground/validator/v10"
)

// Errors returned by Record
var (
	ErrMissingIP      = errors.New("failed to determine client ip")
	ErrMissingCountry = errors.New("failed to determine country")
	ErrStoreWrite     = errors.New("failed to persist observation")
)

// ObservationService records who called the service
//
// Responsibilities:
//   - Reject observations without an IP or a country
//   - Encode the record and derive its timestamp key
//   - Write it to the store and wait for the write
type ObservationService struct {
	store     store.Store
	validator *validator.Validate
	metrics   *metrics.Metrics
	logger    *logger.Logger
	now       func() time.Time
}

// NewObservationService creates a new observation service
//
// Parameters:
//   - store: any implementation of the Store interface
//   - m: metrics collector (optional, can be nil)
//   - log: logger (optional, can be nil)
func NewObservationService(store store.Store, m *metrics.Metrics, log *logger.Logger) *ObservationService {
	if log == nil {
		log = logger.NewDefault()
	}
	return &ObservationService{
		store:     store,
		validator: validator.New(),
		metrics:   m,
		logger:    log.WithComponent("ObservationService"),
		now:       time.Now,
	}
}

// WithClock replaces the time source used for keys
func (s *ObservationService) WithClock(now func() time.Time) *ObservationService {
	s.now = now
	return s
}

// Record persists obs under the current time in epoch milliseconds and
// returns the key it was written to. A write within the same millisecond as
// another one overwrites it.
func (s *ObservationService) Record(ctx context.Context, obs models.Observation) (string, error) {
	// IP is checked before country
	if err := s.validator.Var(obs.IP, "required"); err != nil {
		s.countError("missing_ip")
		return "", ErrMissingIP
	}
	if err := s.validator.Var(obs.Country, "required"); err != nil {
		s.countError("missing_country")
		return "", ErrMissingCountry
	}

	value, err := json.Marshal(obs)
	if err != nil {
		s.countError("encode")
		return "", fmt.Errorf("failed to encode observation: %w", err)
	}

	key := Key(s.now())

	start := time.Now()
	err = s.store.Put(ctx, key, string(value))
	s.observePut(time.Since(start), err)
	if err != nil {
		s.logger.Error().Err(err).
			Str("key", key).
			Str("backend", s.store.Name()).
			Msg("Failed to persist observation")
		s.countError("store_error")
		return "", fmt.Errorf("%w: %w", ErrStoreWrite, err)
	}

	s.logger.Debug().
		Str("key", key).
		Str("ip", obs.IP).
		Str("country", obs.Country).
		Msg("Observation recorded")
	if s.metrics != nil {
		s.metrics.ObservationsTotal.WithLabelValues(obs.Country).Inc()
	}

	return key, nil
}

// Ping reports whether the underlying store is reachable
func (s *ObservationService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// Close closes the underlying store
func (s *ObservationService) Close() error {
	return s.store.Close()
}

// Key formats t as decimal epoch milliseconds
func Key(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

func (s *ObservationService) countError(errorType string) {
	if s.metrics != nil {
		s.metrics.ObservationsErrors.WithLabelValues(errorType).Inc()
	}
}

func (s *ObservationService) observePut(d time.Duration, err error) {
	if s.metrics == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	s.metrics.KVPutsTotal.WithLabelValues(s.store.Name(), status).Inc()
	s.metrics.KVPutDuration.WithLabelValues(s.store.Name()).Observe(d.Seconds())
}
