package usecase

import (
	"bus-booking/internal/data/docstore"
	"bus-booking/internal/data/repository"
	"bus-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Catalog CatalogService
	Route   RouteService
	Booking BookingService
	Search  SearchService
}

func NewService(repo *repository.Repository, docs *docstore.Store, config *utils.Config, log *zap.Logger) *Service {
	routeService := NewRouteService(repo, config.Booking.FallbackFare, log)

	return &Service{
		Catalog: NewCatalogService(repo, log),
		Route:   routeService,
		Booking: NewBookingService(repo, routeService, config.Booking, log),
		Search:  NewSearchService(docs, repo, config.Search.DefaultTopK, log),
	}
}
