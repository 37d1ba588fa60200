package usecase

import (
	"context"
	"fmt"

	"bus-booking/internal/data/repository"
	"bus-booking/internal/dto/response"

	"go.uber.org/zap"
)

type CatalogService interface {
	ListDistricts(ctx context.Context) ([]*response.DistrictResponse, error)
	ListProviders(ctx context.Context) ([]*response.ProviderResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListDistricts(ctx context.Context) ([]*response.DistrictResponse, error) {
	districts, err := s.repo.District.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list districts: %w", err)
	}

	responses := make([]*response.DistrictResponse, 0, len(districts))
	for _, district := range districts {
		points := make([]response.DroppingPointResponse, 0, len(district.DroppingPoints))
		for _, dp := range district.DroppingPoints {
			points = append(points, response.DroppingPointResponse{
				Name:  dp.Name,
				Price: dp.Price,
			})
		}
		responses = append(responses, &response.DistrictResponse{
			Name:           district.Name,
			DroppingPoints: points,
		})
	}
	return responses, nil
}

func (s *catalogService) ListProviders(ctx context.Context) ([]*response.ProviderResponse, error) {
	providers, err := s.repo.Provider.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}

	responses := make([]*response.ProviderResponse, 0, len(providers))
	for _, provider := range providers {
		responses = append(responses, &response.ProviderResponse{
			Name:              provider.Name,
			CoverageDistricts: provider.CoverageDistricts,
			OfficialAddress:   provider.OfficialAddress,
			ContactInfo:       provider.ContactInfo,
		})
	}
	return responses, nil
}
