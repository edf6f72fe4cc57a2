package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/evyataryagoni/whoami/internal/clientinfo"
	"github.com/evyataryagoni/whoami/internal/config"
	"github.com/evyataryagoni/whoami/internal/handler"
	"github.com/evyataryagoni/whoami/internal/logger"
	"github.com/evyataryagoni/whoami/internal/metrics"
	"github.com/evyataryagoni/whoami/internal/router"
	"github.com/evyataryagoni/whoami/internal/service"
	"github.com/evyataryagoni/whoami/internal/store"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	appConfig := config.Load()

	appLogger := setupLogger(appConfig)
	if err := appConfig.Validate(); err != nil {
		appLogger.Fatal().Err(err).Msg("Invalid configuration")
	}

	dataStore := setupDataStore(appConfig, appLogger)
	metricsCollector := setupMetrics(appLogger)

	// Build application layers
	observationService := service.NewObservationService(dataStore, metricsCollector, appLogger)
	defer observationService.Close()

	resolver := clientinfo.NewResolver(
		clientinfo.WithIPHeaders(appConfig.IPHeaders...),
		clientinfo.WithCountryHeader(appConfig.CountryHeader),
		clientinfo.WithDefaults(appConfig.DefaultIP, appConfig.DefaultCountry),
	)
	whoAmIHandler := handler.NewWhoAmIHandler(resolver, observationService, appLogger)

	publicRouter := router.SetupRouter(whoAmIHandler, metricsCollector, appLogger)
	adminRouter := router.SetupAdminRouter(observationService, prometheus.DefaultGatherer, appLogger)

	runServers(appConfig, publicRouter, adminRouter, appLogger)
}

// setupLogger initializes the structured logger
func setupLogger(appConfig *config.Config) *logger.Logger {
	appLogger := logger.New(logger.Config{
		Level:  appConfig.LogLevel,
		Pretty: appConfig.LogPretty,
	})

	appLogger.Info().Msg("Starting WhoAmI Server...")
	appLogger.Info().
		Str("port", appConfig.Port).
		Str("admin_port", appConfig.AdminPort).
		Str("kv_backend", appConfig.KVBackend).
		Str("kv_path", appConfig.KVPath).
		Strs("ip_headers", appConfig.IPHeaders).
		Str("country_header", appConfig.CountryHeader).
		Msg("Configuration loaded")

	return appLogger
}

// setupDataStore initializes the key-value store based on configuration
// Supports memory, CSV, Redis, MySQL and Badger backends
func setupDataStore(appConfig *config.Config, log *logger.Logger) store.Store {
	dataStore, err := store.New(store.Options{
		Backend:       appConfig.KVBackend,
		Path:          appConfig.KVPath,
		MySQLDSN:      appConfig.MySQLDSN,
		RedisAddr:     appConfig.RedisAddr,
		RedisPassword: appConfig.RedisPassword,
		RedisDB:       appConfig.RedisDB,
	})
	if err != nil {
		log.Fatal().Err(err).Str("backend", appConfig.KVBackend).Msg("Failed to initialize key-value store")
	}

	log.Info().Str("backend", dataStore.Name()).Msg("Key-value store initialized")
	return dataStore
}

// setupMetrics initializes the Prometheus metrics collector
func setupMetrics(log *logger.Logger) *metrics.Metrics {
	metricsCollector := metrics.New(prometheus.DefaultRegisterer)
	log.Info().Msg("Metrics initialized")
	return metricsCollector
}

// runServers starts the public and admin listeners and blocks until a
// termination signal arrives or one of them fails
func runServers(appConfig *config.Config, publicRouter, adminRouter http.Handler, log *logger.Logger) {
	publicServer := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           publicRouter,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	adminServer := &http.Server{
		Addr:              ":" + appConfig.AdminPort,
		Handler:           adminRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)
	for _, srv := range []*http.Server{publicServer, adminServer} {
		go func(srv *http.Server) {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}(srv)
	}

	log.Info().
		Str("port", appConfig.Port).
		Str("text_endpoint", "http://localhost:"+appConfig.Port+"/").
		Str("json_endpoint", "http://localhost:"+appConfig.Port+"/json").
		Str("health_check", "http://localhost:"+appConfig.AdminPort+"/health").
		Str("metrics", "http://localhost:"+appConfig.AdminPort+"/metrics").
		Msg("Server is running")

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down")
	case err := <-errCh:
		log.Error().Err(err).Msg("Server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(appConfig.ShutdownTimeout)*time.Second)
	defer cancel()

	for _, srv := range []*http.Server{publicServer, adminServer} {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Str("addr", srv.Addr).Msg("Graceful shutdown failed")
		}
	}
}
