package server

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"calculator-api/internal/alerts"
	"calculator-api/internal/calculator"
	"calculator-api/internal/config"
	"calculator-api/internal/handlers"
	"calculator-api/internal/health"
	"calculator-api/internal/history"
	"calculator-api/internal/observability"
)

// NewRouter wires the full HTTP surface: the middleware chain, the /api
// routes, the health probes and the Prometheus exposition endpoint.
func NewRouter(cfg config.Config, db *sql.DB) http.Handler {

	log := observability.Logger
	store := history.NewStore(log)
	service := calculator.NewService(store, log)

	calcHandler := calculator.NewHandler(db, service)
	historyHandler := history.NewHandler(db, store)
	alertsHandler := alerts.NewHandler()
	healthHandler := health.NewHandler(db, cfg.Version)

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", observability.RequestIDHeader},
		AllowCredentials: true,
	}))
	r.Use(RateLimitMiddleware(rate.Limit(cfg.RateLimit), cfg.RateLimitBurst))
	r.Use(observability.TracingMiddleware)
	r.Use(MetricsMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/", rootInfo(cfg))

	r.Route("/api", func(r chi.Router) {
		calculator.RegisterRoutes(r, calcHandler)
		history.RegisterRoutes(r, historyHandler)
		alerts.RegisterRoutes(r, alertsHandler)
	})

	health.RegisterRoutes(r, healthHandler)

	r.Handle("/metrics", observability.PrometheusHandler())

	return r
}

// rootInfo serves GET / with basic API information.
func rootInfo(cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteJSON(w, http.StatusOK, map[string]any{
			"message":     "Calculator API",
			"version":     cfg.Version,
			"status":      "running",
			"environment": cfg.Environment,
			"endpoints": map[string]string{
				"calculator": "/api/calculator",
				"history":    "/api/history",
				"alerts":     "/api/alerts",
				"health":     "/health",
				"metrics":    "/metrics",
			},
		})
	}
}
