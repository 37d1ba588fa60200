package wire

import (
	"bus-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRoutes(r chi.Router, routeHandler *adaptor.RouteHandler) {
	// GET /api/search-buses - Search active routes between two districts
	r.Get("/api/search-buses", routeHandler.SearchBuses)
}
