package history

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the history endpoints under the /history prefix.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/history", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/statistics", h.GetStatistics)
		r.Delete("/", h.Clear)
	})
}
