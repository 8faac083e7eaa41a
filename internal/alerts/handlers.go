package alerts

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"calculator-api/internal/handlers"
	"calculator-api/internal/observability"
)

// Handler receives Grafana alert notifications. Alerts are logged so pipeline
// runs can observe them; no downstream notification channel is wired.
type Handler struct{}

// NewHandler returns an alerts handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Webhook handles POST /api/alerts/webhook.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)

	var payload WebhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Error("failed to decode alert webhook payload", zap.Error(err))
		handlers.WriteError(w, http.StatusBadRequest, "invalid alert payload")
		return
	}

	for _, alert := range payload.Alerts {
		switch alert.Status {
		case "firing":
			logger.Error("alert firing",
				zap.String("alert", alert.Name()),
				zap.String("severity", alert.Severity()),
				zap.String("description", alert.Annotations["description"]),
			)
		case "resolved":
			logger.Info("alert resolved",
				zap.String("alert", alert.Name()),
			)
		default:
			logger.Warn("alert with unknown status",
				zap.String("alert", alert.Name()),
				zap.String("status", alert.Status),
			)
		}
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Alert processed",
	})
}

// Status handles GET /api/alerts/status.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, StatusResponse{
		Status:          "healthy",
		Timestamp:       time.Now().UTC(),
		WebhookEndpoint: "/api/alerts/webhook",
		Description:     "Alert webhook endpoint is ready to receive notifications",
	})
}
