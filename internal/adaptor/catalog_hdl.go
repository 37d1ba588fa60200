package adaptor

import (
	"net/http"

	"bus-booking/internal/usecase"
	"bus-booking/pkg/utils"

	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// ListDistricts handles GET /api/districts
func (h *CatalogHandler) ListDistricts(w http.ResponseWriter, r *http.Request) {
	districts, err := h.service.ListDistricts(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list districts")
		return
	}

	utils.ResponseSuccess(w, "success", districts)
}

// ListProviders handles GET /api/bus-providers
func (h *CatalogHandler) ListProviders(w http.ResponseWriter, r *http.Request) {
	providers, err := h.service.ListProviders(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list providers")
		return
	}

	utils.ResponseSuccess(w, "success", providers)
}
