// Package main provides the entrypoint for the air quality advisory API
// server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/airadvisor/airadvisor/internal/advisory"
	"github.com/airadvisor/airadvisor/internal/api"
	"github.com/airadvisor/airadvisor/internal/api/middleware"
	"github.com/airadvisor/airadvisor/internal/cityprofile"
	"github.com/airadvisor/airadvisor/internal/classifier"
	"github.com/airadvisor/airadvisor/internal/dashboard"
	"github.com/airadvisor/airadvisor/internal/database"
	"github.com/airadvisor/airadvisor/internal/telemetry"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "airadvisor-api"

	// Local development convenience; absent .env files are fine.
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting airadvisor API")

	port := getEnvOrDefault("APP_PORT", "8080")
	env := getEnvOrDefault("APP_ENV", "development")
	modelDir := getEnvOrDefault("MODEL_DIR", "model")
	otlpEndpoint := getEnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317")
	telemetryEnabled := os.Getenv("OTEL_ENABLED") == "true"

	ctx := context.Background()

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		OTLPEndpoint:   otlpEndpoint,
		Enabled:        telemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()
	if telemetryEnabled {
		log.Info().Str("otlp_endpoint", otlpEndpoint).Msg("OpenTelemetry initialized")
	}

	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// The classifier bundle is mandatory: /predict has no fallback without it.
	bundlePath := filepath.Join(modelDir, "model_bundle.json")
	bundle, err := classifier.LoadBundle(bundlePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", bundlePath).Msg("failed to load classifier bundle")
	}
	log.Info().Str("path", bundlePath).Msg("classifier bundle loaded")

	profiles := loadCityProfiles(ctx, log, modelDir)
	dashboardData := loadDashboard(ctx, log, modelDir)

	var modelAccuracy *float64
	if accuracy, ok := bundle.Accuracy(); ok {
		modelAccuracy = &accuracy
	}

	advisoryService := advisory.NewService(advisory.ServiceConfig{
		Profiles: profiles,
		Bundle:   bundle,
		Logger:   log,
	})
	log.Info().Msg("advisory service initialized")

	router := api.NewRouter(api.RouterConfig{
		Version:         Version,
		Logger:          log,
		Metrics:         metrics,
		AdvisoryService: advisoryService,
		Profiles:        profiles,
		Dashboard:       dashboardData,
		ModelAccuracy:   modelAccuracy,
	})

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}

// loadCityProfiles builds the immutable profile store. Both sources are
// optional: any failure degrades to an empty store with a warning.
func loadCityProfiles(ctx context.Context, log zerolog.Logger, modelDir string) *cityprofile.Store {
	var repo cityprofile.Repository

	source := getEnvOrDefault("CITY_PROFILE_SOURCE", "file")
	switch source {
	case "postgres":
		dbConfig := database.ConfigFromEnv()
		pool, err := database.Connect(ctx, dbConfig)
		if err != nil {
			log.Warn().Err(err).Msg("city profile database unavailable, starting with no city defaults")
			return cityprofile.NewStore(nil)
		}
		log.Info().
			Str("host", dbConfig.Host).
			Str("database", dbConfig.Database).
			Msg("city profile database connected")
		repo = cityprofile.NewPostgresRepository(pool)
	default:
		repo = cityprofile.NewFileRepository(filepath.Join(modelDir, "dashboard_by_city.json"))
	}

	loaded, err := repo.LoadProfiles(ctx)
	if err != nil {
		log.Warn().Err(err).Str("source", source).Msg("city profiles unavailable, starting with no city defaults")
		return cityprofile.NewStore(nil)
	}

	store := cityprofile.NewStore(loaded)
	log.Info().Int("cities", store.Len()).Str("source", source).Msg("city profiles loaded")
	return store
}

// loadDashboard obtains the optional dashboard document, from a URL when
// DASHBOARD_URL is set, else from the model directory.
func loadDashboard(ctx context.Context, log zerolog.Logger, modelDir string) dashboard.Data {
	var (
		data dashboard.Data
		err  error
	)

	if url := os.Getenv("DASHBOARD_URL"); url != "" {
		data, err = dashboard.FetchURL(ctx, dashboard.FetcherConfig{URL: url})
	} else {
		data, err = dashboard.LoadFile(filepath.Join(modelDir, "dashboard_data.json"))
	}
	if err != nil {
		log.Warn().Err(err).Msg("dashboard data unavailable, serving minimal fallback")
		return nil
	}

	log.Info().Int("keys", len(data)).Msg("dashboard data loaded")
	return data
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
