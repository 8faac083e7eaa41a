package alerts

import "time"

// WebhookPayload is the Grafana alert notification body.
type WebhookPayload struct {
	Alerts []Alert `json:"alerts"`
}

// Alert is a single alert inside a Grafana notification.
type Alert struct {
	Status      string            `json:"status"` // "firing" or "resolved"
	Labels      map[string]string `json:"labels"`
	Annotations map[string]string `json:"annotations"`
}

// Name returns the alertname label, or "Unknown" when absent.
func (a Alert) Name() string {
	if name := a.Labels["alertname"]; name != "" {
		return name
	}
	return "Unknown"
}

// Severity returns the severity label, or "unknown" when absent.
func (a Alert) Severity() string {
	if sev := a.Labels["severity"]; sev != "" {
		return sev
	}
	return "unknown"
}

// StatusResponse is the JSON response for GET /api/alerts/status.
type StatusResponse struct {
	Status          string    `json:"status"`
	Timestamp       time.Time `json:"timestamp"`
	WebhookEndpoint string    `json:"webhook_endpoint"`
	Description     string    `json:"description"`
}
