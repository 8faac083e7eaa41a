package alerts

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the alert endpoints under the /alerts prefix.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/alerts", func(r chi.Router) {
		r.Post("/webhook", h.Webhook)
		r.Get("/status", h.Status)
	})
}
