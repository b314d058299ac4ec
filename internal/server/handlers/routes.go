package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all analytics routes
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Route("/funds", func(r chi.Router) {
		r.Post("/score", h.HandleScoreFund)      // Full N-Rank breakdown for one fund
		r.Post("/compare", h.HandleCompareFunds) // Scores + allocation for a fund set
	})

	r.Route("/holdings", func(r chi.Router) {
		r.Post("/projection", h.HandleProjectHolding) // Estimated value + historical CAGR
	})
}
