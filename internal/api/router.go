// Package api provides the HTTP API for the air quality advisory service.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/airadvisor/airadvisor/internal/advisory"
	"github.com/airadvisor/airadvisor/internal/api/handler"
	"github.com/airadvisor/airadvisor/internal/api/middleware"
	"github.com/airadvisor/airadvisor/internal/cityprofile"
	"github.com/airadvisor/airadvisor/internal/dashboard"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version         string
	Logger          zerolog.Logger
	Metrics         *middleware.Metrics
	AdvisoryService *advisory.Service
	Profiles        *cityprofile.Store
	Dashboard       dashboard.Data
	ModelAccuracy   *float64
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware - order matters.
	r.Use(middleware.RequestID)
	r.Use(middleware.Tracing)
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
	}
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimiddleware.RealIP)

	// The API is consumed directly by browser dashboards; allow any origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	predictHandler := handler.NewPredictHandler(cfg.AdvisoryService)
	citiesHandler := handler.NewCitiesHandler(cfg.Profiles)
	dashboardHandler := handler.NewDashboardHandler(cfg.Dashboard, cfg.ModelAccuracy)
	opsHandler := handler.NewOpsHandler(cfg.Version)

	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)

	r.Get("/", opsHandler.Liveness)
	r.With(standardRateLimit).Get("/cities", citiesHandler.ListCities)
	r.With(standardRateLimit).Get("/dashboard", dashboardHandler.GetDashboard)
	r.With(middleware.RateLimitByIP(middleware.PredictRateLimit)).
		Post("/predict", predictHandler.Predict)

	return r
}
