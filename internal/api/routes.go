package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/wuyun-api/internal/config"
	"github.com/zapponejosh/wuyun-api/internal/metrics"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /                              HTML profile page (?year=)
//	GET /health                        reference store health
//	GET /api/v1/profile                profile for ?year= (default: current year)
//	GET /api/v1/profile/{year}         profile for a path year
//	GET /api/v1/cycle                  consecutive profiles (?start=&count=)
//	GET /api/v1/reference/steps        six-step host-qi table
//	GET /api/v1/reference/steps/{step} one row of that table (1-6)
//	GET /metrics                       Prometheus exposition (API key when configured)
func SetupRoutes(handlers *Handlers, m *metrics.Metrics, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(globalMiddleware(m, logger))

	r.NotFound(handlers.NotFound)

	r.Get("/", handlers.Page)
	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/profile", handlers.GetProfile)
		r.Get("/profile/{year}", handlers.GetProfileByYear)
		r.Get("/cycle", handlers.GetCycle)
		r.Get("/reference/steps", handlers.GetSeasonalSteps)
		r.Get("/reference/steps/{step}", handlers.GetSeasonalStep)
	})

	r.With(AuthMiddleware(cfg, logger)).Handle("/metrics", m.Handler())

	return r
}

// globalMiddleware wraps every route. The request ID comes first so panic
// logs carry it, and recovery sits inside logging and metrics so a
// recovered panic is still logged and counted as a 500.
func globalMiddleware(m *metrics.Metrics, logger *slog.Logger) Middleware {
	return ChainMiddleware(
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		MetricsMiddleware(m),
		RecoveryMiddleware(logger),
		CORSMiddleware(),
	)
}
