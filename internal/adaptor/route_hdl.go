package adaptor

import (
	"net/http"

	"bus-booking/internal/usecase"
	"bus-booking/pkg/utils"

	"go.uber.org/zap"
)

type RouteHandler struct {
	service usecase.RouteService
	log     *zap.Logger
}

func NewRouteHandler(service usecase.RouteService, log *zap.Logger) *RouteHandler {
	return &RouteHandler{
		service: service,
		log:     log.With(zap.String("handler", "route")),
	}
}

// SearchBuses handles GET /api/search-buses
func (h *RouteHandler) SearchBuses(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	fromDistrict := query.Get("from_district")
	toDistrict := query.Get("to_district")
	if fromDistrict == "" || toDistrict == "" {
		utils.ResponseBadRequest(w, "from_district and to_district are required", nil)
		return
	}

	var maxFare *float64
	if fare, ok := utils.ParseFloat(query.Get("max_fare")); ok {
		maxFare = &fare
	}

	buses, err := h.service.SearchBuses(r.Context(), fromDistrict, toDistrict, maxFare)
	if err != nil {
		handleServiceError(w, h.log, err, "search buses")
		return
	}

	utils.ResponseSuccess(w, "success", buses)
}
