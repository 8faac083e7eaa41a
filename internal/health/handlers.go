package health

import (
	"database/sql"
	"net/http"
	"time"

	"go.uber.org/zap"

	"calculator-api/internal/handlers"
	"calculator-api/internal/observability"
)

// Response is the JSON body for the health endpoints.
type Response struct {
	Status       string               `json:"status"`
	Service      string               `json:"service"`
	Version      string               `json:"version,omitempty"`
	Timestamp    time.Time            `json:"timestamp"`
	ResponseTime float64              `json:"response_time,omitempty"`
	Reason       string               `json:"reason,omitempty"`
	Components   map[string]Component `json:"components,omitempty"`
}

// Component is the health of one dependency.
type Component struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

const serviceName = "calculator-api"

// Handler serves liveness and readiness probes.
type Handler struct {
	db      *sql.DB
	version string
}

// NewHandler returns a health handler probing db for readiness.
func NewHandler(db *sql.DB, version string) *Handler {
	return &Handler{db: db, version: version}
}

// Basic handles GET /health: process liveness only, no dependency checks.
func (h *Handler) Basic(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, Response{
		Status:    "healthy",
		Service:   serviceName,
		Version:   h.version,
		Timestamp: time.Now().UTC(),
	})
}

// Detailed handles GET /health/detailed, including the database component.
func (h *Handler) Detailed(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	db := Component{Status: "healthy"}
	status := "healthy"
	code := http.StatusOK
	if err := h.db.PingContext(r.Context()); err != nil {
		observability.LoggerWithTrace(r.Context()).Error("database health check failed", zap.Error(err))
		db = Component{Status: "unhealthy", Error: err.Error()}
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	handlers.WriteJSON(w, code, Response{
		Status:       status,
		Service:      serviceName,
		Version:      h.version,
		Timestamp:    time.Now().UTC(),
		ResponseTime: time.Since(start).Seconds(),
		Components:   map[string]Component{"database": db},
	})
}

// Ready handles GET /health/ready, the Kubernetes readiness probe.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		observability.LoggerWithTrace(r.Context()).Error("readiness check failed", zap.Error(err))
		handlers.WriteJSON(w, http.StatusServiceUnavailable, Response{
			Status:    "not_ready",
			Service:   serviceName,
			Reason:    "database connection failed",
			Timestamp: time.Now().UTC(),
		})
		return
	}

	handlers.WriteJSON(w, http.StatusOK, Response{
		Status:    "ready",
		Service:   serviceName,
		Timestamp: time.Now().UTC(),
	})
}
