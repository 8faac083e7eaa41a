package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the calculator endpoints under the /calculator prefix.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/calculator", func(r chi.Router) {
		r.Post("/calculate", h.Calculate)
		r.Get("/operations", h.Operations)
		r.Get("/health", h.Health)
	})
}
