package adaptor

import (
	"encoding/json"
	"net/http"

	"bus-booking/internal/dto/request"
	"bus-booking/internal/usecase"
	"bus-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SearchHandler struct {
	service usecase.SearchService
	log     *zap.Logger
}

func NewSearchHandler(service usecase.SearchService, log *zap.Logger) *SearchHandler {
	return &SearchHandler{
		service: service,
		log:     log.With(zap.String("handler", "search")),
	}
}

// QueryDocuments handles POST /api/rag-query
func (h *SearchHandler) QueryDocuments(w http.ResponseWriter, r *http.Request) {
	var req request.SearchQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	utils.ResponseSuccess(w, "success", h.service.QueryDocuments(&req))
}

// ProviderDetails handles GET /api/provider-details/{name}
func (h *SearchHandler) ProviderDetails(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		utils.ResponseBadRequest(w, "Provider name is required", nil)
		return
	}

	details, err := h.service.ProviderDetails(r.Context(), name)
	if err != nil {
		handleServiceError(w, h.log, err, "get provider details")
		return
	}

	utils.ResponseSuccess(w, "success", details)
}
