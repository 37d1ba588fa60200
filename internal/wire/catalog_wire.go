package wire

import (
	"bus-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// GET /api/districts - List districts with their dropping points
	r.Get("/api/districts", catalogHandler.ListDistricts)

	// GET /api/bus-providers - List bus providers with coverage and contact
	r.Get("/api/bus-providers", catalogHandler.ListProviders)
}
