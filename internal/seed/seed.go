package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"bus-booking/internal/data/docstore"
	"bus-booking/internal/data/entity"
	"bus-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type seedDistrict struct {
	Name           string                 `json:"name"`
	DroppingPoints []entity.DroppingPoint `json:"dropping_points"`
}

type seedProvider struct {
	Name              string   `json:"name"`
	CoverageDistricts []string `json:"coverage_districts"`
}

type seedData struct {
	Districts    []seedDistrict `json:"districts"`
	BusProviders []seedProvider `json:"bus_providers"`
}

// Known inter-district base fares; anything else falls back to 400 before
// the per-provider variation is added.
var baseFares = map[[2]string]float64{
	{"Dhaka", "Chattogram"}:       600,
	{"Dhaka", "Sylhet"}:           700,
	{"Dhaka", "Rajshahi"}:         480,
	{"Dhaka", "Khulna"}:           500,
	{"Dhaka", "Barishal"}:         450,
	{"Dhaka", "Rangpur"}:          550,
	{"Dhaka", "Mymensingh"}:       300,
	{"Dhaka", "Comilla"}:          350,
	{"Dhaka", "Bogra"}:            420,
	{"Chattogram", "Sylhet"}:      400,
	{"Chattogram", "Cox's Bazar"}: 350,
	{"Khulna", "Rajshahi"}:        300,
	{"Khulna", "Jessore"}:         150,
}

var (
	outboundDepartures = []string{"08:00", "14:00", "20:00", "23:00"}
	returnDepartures   = []string{"07:00", "13:00", "19:00", "22:00"}
)

// Run populates districts, providers and routes from the data file. It is a
// no-op when districts already exist, so restarts do not duplicate data.
func Run(ctx context.Context, repo *repository.Repository, docs *docstore.Store, dataFile string, log *zap.Logger) error {
	log = log.With(zap.String("component", "seed"))

	count, err := repo.District.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if count > 0 {
		log.Info("Seed skipped, districts already present", zap.Int64("count", count))
		return nil
	}

	raw, err := os.ReadFile(dataFile)
	if err != nil {
		return fmt.Errorf("seed: read %s: %w", dataFile, err)
	}

	var data seedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("seed: parse %s: %w", dataFile, err)
	}

	now := time.Now()

	districtMap := make(map[string]*entity.District, len(data.Districts))
	for _, d := range data.Districts {
		district := &entity.District{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Name:           d.Name,
			DroppingPoints: d.DroppingPoints,
			Description:    "Travel destination in Bangladesh",
			IsActive:       true,
		}
		if err := repo.District.Create(ctx, district); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		districtMap[district.Name] = district
	}

	providers := make([]*entity.BusProvider, 0, len(data.BusProviders))
	for _, p := range data.BusProviders {
		provider := &entity.BusProvider{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Name:              p.Name,
			CoverageDistricts: p.CoverageDistricts,
			Rating:            ProviderRating(p.Name),
			TotalBuses:        ProviderFleetSize(p.Name),
			IsActive:          true,
		}

		if doc, ok := docs.FindByProvider(p.Name); ok {
			provider.PrivacyPolicy = doc.Content
			fillContactFields(provider, doc.Content)
		}

		if err := repo.Provider.Create(ctx, provider); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		providers = append(providers, provider)
	}

	routeCount := 0
	for _, provider := range providers {
		covered := provider.CoverageDistricts
		for i, fromName := range covered {
			for _, toName := range covered[i+1:] {
				fromDist, okFrom := districtMap[fromName]
				toDist, okTo := districtMap[toName]
				if !okFrom || !okTo {
					continue
				}

				fare := pairBaseFare(fromName, toName) + float64(Checksum(provider.Name+fromName)%100)

				// Both directions, independent seat pools
				outbound := routeBetween(provider, fromDist, toDist, fare, outboundDepartures, now)
				inbound := routeBetween(provider, toDist, fromDist, fare, returnDepartures, now)
				// Distance and duration describe the district pair, not the
				// direction of travel.
				inbound.DistanceKM = outbound.DistanceKM
				inbound.DurationHours = outbound.DurationHours

				if err := repo.Route.Create(ctx, outbound); err != nil {
					return fmt.Errorf("seed: %w", err)
				}
				if err := repo.Route.Create(ctx, inbound); err != nil {
					return fmt.Errorf("seed: %w", err)
				}
				routeCount += 2
			}
		}
	}

	log.Info("Seed complete",
		zap.Int("districts", len(districtMap)),
		zap.Int("providers", len(providers)),
		zap.Int("routes", routeCount),
	)
	return nil
}

func pairBaseFare(from, to string) float64 {
	if fare, ok := baseFares[[2]string{from, to}]; ok {
		return fare
	}
	if fare, ok := baseFares[[2]string{to, from}]; ok {
		return fare
	}
	return 400
}

func routeBetween(provider *entity.BusProvider, from, to *entity.District, fare float64, departures []string, now time.Time) *entity.Route {
	seatClass := "Non-AC"
	if Checksum(provider.Name)%2 == 0 {
		seatClass = "AC"
	}

	return &entity.Route{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ProviderID:     provider.ID,
		FromDistrictID: from.ID,
		ToDistrictID:   to.ID,
		BaseFare:       fare,
		DistanceKM:     float64(200 + Checksum(from.Name+to.Name)%300),
		DurationHours:  float64(3 + Checksum(from.Name+to.Name)%6),
		SeatClass:      seatClass,
		AvailableSeats: int(35 + Checksum(from.Name)%10),
		TotalSeats:     40,
		DepartureTimes: departures,
		IsActive:       true,
	}
}

// fillContactFields scans the document line by line for labeled contact
// data, mirroring the privacy-policy document layout.
func fillContactFields(provider *entity.BusProvider, content string) {
	for _, line := range strings.Split(content, "\n") {
		switch {
		case strings.Contains(line, "Official Address:"):
			provider.OfficialAddress = afterColon(line)

		case strings.Contains(line, "Contact Information:") ||
			strings.Contains(line, "Tel:") ||
			strings.Contains(line, "Call Center"):
			provider.ContactInfo = afterColon(line)

		case strings.Contains(strings.ToLower(line), "email") && strings.Contains(line, "@"):
			for _, part := range strings.Fields(line) {
				if strings.Contains(part, "@") {
					provider.Email = strings.TrimSpace(part)
					break
				}
			}

		case strings.Contains(line, "Privacy Policy / Terms Link:") || strings.Contains(line, "http"):
			for _, part := range strings.Fields(line) {
				if strings.Contains(part, "http") {
					provider.Website = strings.TrimSpace(part)
					break
				}
			}
		}
	}
}

// afterColon returns the text after the first colon, or the whole line when
// there is none, trimmed either way.
func afterColon(line string) string {
	if idx := strings.Index(line, ":"); idx >= 0 {
		return strings.TrimSpace(line[idx+1:])
	}
	return strings.TrimSpace(line)
}
