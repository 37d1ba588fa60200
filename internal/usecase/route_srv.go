package usecase

import (
	"context"
	"fmt"

	"bus-booking/internal/data/entity"
	"bus-booking/internal/data/repository"
	"bus-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RouteService interface {
	// FindRoute returns the active route for a provider between two
	// districts, or nil when none exists. Absence is not an error, callers
	// fall back to the configured flat fare.
	FindRoute(ctx context.Context, providerID, fromID, toID uuid.UUID) (*entity.Route, error)
	// ResolveFare computes (base, total). Base is the route fare or the
	// fallback constant; total adds the surcharge of the named dropping
	// point when it exists in the destination district.
	ResolveFare(route *entity.Route, droppingPoint string, destination *entity.District) (float64, float64)
	// SearchBuses lists active routes between two named districts joined to
	// their active providers, optionally capped at maxFare.
	SearchBuses(ctx context.Context, fromDistrict, toDistrict string, maxFare *float64) ([]*response.BusSearchResponse, error)
}

type routeService struct {
	repo         *repository.Repository
	fallbackFare float64
	log          *zap.Logger
}

func NewRouteService(repo *repository.Repository, fallbackFare float64, log *zap.Logger) RouteService {
	return &routeService{
		repo:         repo,
		fallbackFare: fallbackFare,
		log:          log.With(zap.String("service", "route")),
	}
}

func (s *routeService) FindRoute(ctx context.Context, providerID, fromID, toID uuid.UUID) (*entity.Route, error) {
	route, err := s.repo.Route.FindActiveByEndpoints(ctx, providerID, fromID, toID)
	if err != nil {
		return nil, fmt.Errorf("find route: %w", err)
	}
	return route, nil
}

func (s *routeService) ResolveFare(route *entity.Route, droppingPoint string, destination *entity.District) (float64, float64) {
	baseFare := s.fallbackFare
	if route != nil {
		baseFare = route.BaseFare
	}

	totalFare := baseFare
	if droppingPoint != "" && destination != nil {
		if dp := destination.DroppingPointByName(droppingPoint); dp != nil {
			totalFare += dp.Price
		}
	}

	return baseFare, totalFare
}

func (s *routeService) SearchBuses(ctx context.Context, fromDistrict, toDistrict string, maxFare *float64) ([]*response.BusSearchResponse, error) {
	fromDist, err := s.repo.District.FindByName(ctx, fromDistrict)
	if err != nil {
		return nil, fmt.Errorf("search buses: %w", err)
	}
	toDist, err := s.repo.District.FindByName(ctx, toDistrict)
	if err != nil {
		return nil, fmt.Errorf("search buses: %w", err)
	}
	if fromDist == nil || toDist == nil {
		return nil, fmt.Errorf("district: %w", ErrNotFound)
	}

	routes, err := s.repo.Route.FindActiveBetween(ctx, fromDist.ID, toDist.ID, maxFare)
	if err != nil {
		return nil, fmt.Errorf("search buses: %w", err)
	}

	buses := make([]*response.BusSearchResponse, 0, len(routes))
	for _, route := range routes {
		provider, err := s.repo.Provider.FindByID(ctx, route.ProviderID)
		if err != nil {
			return nil, fmt.Errorf("search buses: %w", err)
		}
		// An inactive or missing provider skips its route without dropping
		// the rest of the result set.
		if provider == nil || !provider.IsActive {
			continue
		}

		buses = append(buses, &response.BusSearchResponse{
			Provider:       provider.Name,
			FromDistrict:   fromDistrict,
			ToDistrict:     toDistrict,
			Fare:           route.BaseFare,
			SeatClass:      route.SeatClass,
			AvailableSeats: route.AvailableSeats,
			TotalSeats:     route.TotalSeats,
			DepartureTimes: route.DepartureTimes,
			DurationHours:  route.DurationHours,
			DistanceKM:     route.DistanceKM,
			Rating:         provider.Rating,
			Contact:        provider.ContactInfo,
		})
	}

	s.log.Debug("Bus search served",
		zap.String("from", fromDistrict),
		zap.String("to", toDistrict),
		zap.Int("results", len(buses)),
	)
	return buses, nil
}
