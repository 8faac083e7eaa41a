package health

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the probe endpoints under the /health prefix.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.Basic)
		r.Get("/detailed", h.Detailed)
		r.Get("/ready", h.Ready)
	})
}
