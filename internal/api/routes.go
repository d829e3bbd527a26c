package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/zapponejosh/fourpillars/internal/config"
)

// NewRouter configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /health                          liveness
//	GET /api/v1/pillars?datetime=...     Four Pillars, daily god and term month
//	GET /api/v1/pillars/now              the same for the current instant
//	GET /api/v1/daily-god?datetime=...   officer of the day
//	GET /api/v1/daily-gods?start=&end=   one entry per civil day, inclusive
//	GET /api/v1/solar-terms/{year}       the 24 solar terms of a year
func NewRouter(h *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware(logger))
	r.Use(RecoveryMiddleware(logger))
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-API-Key"},
		MaxAge:         3600,
	}))

	r.Get("/health", h.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(AuthMiddleware(cfg, logger))

		r.Get("/pillars", h.GetPillars)
		r.Get("/pillars/now", h.GetPillarsNow)
		r.Get("/daily-god", h.GetDailyGod)
		r.Get("/daily-gods", h.GetDailyGodRange)
		r.Get("/solar-terms/{year}", h.GetSolarTerms)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})

	return r
}
