package wire

import (
	"bus-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSearch(r chi.Router, searchHandler *adaptor.SearchHandler) {
	// POST /api/rag-query - Keyword search over provider documents
	r.Post("/api/rag-query", searchHandler.QueryDocuments)

	// GET /api/provider-details/{name} - Provider record merged with
	// contact info extracted from its document
	r.Get("/api/provider-details/{name}", searchHandler.ProviderDetails)
}
