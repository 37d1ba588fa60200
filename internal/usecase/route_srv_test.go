package usecase

import (
	"context"
	"testing"
	"time"

	"bus-booking/internal/data/entity"
	"bus-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newDistrict(name string, points ...entity.DroppingPoint) *entity.District {
	return &entity.District{
		Base:           entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Name:           name,
		DroppingPoints: points,
		IsActive:       true,
	}
}

func newProvider(name string, active bool) *entity.BusProvider {
	return &entity.BusProvider{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Name:     name,
		Rating:   4.5,
		IsActive: active,
	}
}

func newRoute(provider *entity.BusProvider, from, to *entity.District, fare float64, seats int) *entity.Route {
	return &entity.Route{
		Base:           entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		ProviderID:     provider.ID,
		FromDistrictID: from.ID,
		ToDistrictID:   to.ID,
		BaseFare:       fare,
		SeatClass:      "AC",
		AvailableSeats: seats,
		TotalSeats:     40,
		DepartureTimes: []string{"08:00", "20:00"},
		IsActive:       true,
	}
}

func TestResolveFareFallback(t *testing.T) {
	repo, _, _, _, _ := newFakeRepository()
	svc := NewRouteService(repo, 400, zap.NewNop())

	dest := newDistrict("Chattogram",
		entity.DroppingPoint{Name: "GEC Circle", Price: 50},
		entity.DroppingPoint{Name: "Agrabad"},
	)

	base, total := svc.ResolveFare(nil, "", dest)
	if base != 400 || total != 400 {
		t.Errorf("no route, no dropping point: base=%v total=%v, want 400/400", base, total)
	}

	base, total = svc.ResolveFare(nil, "GEC Circle", dest)
	if base != 400 || total != 450 {
		t.Errorf("no route with surcharge: base=%v total=%v, want 400/450", base, total)
	}

	// Dropping point without a price carries no surcharge.
	base, total = svc.ResolveFare(nil, "Agrabad", dest)
	if base != 400 || total != 400 {
		t.Errorf("no route, free dropping point: base=%v total=%v, want 400/400", base, total)
	}

	// Unknown dropping point names are ignored.
	base, total = svc.ResolveFare(nil, "Nowhere", dest)
	if base != 400 || total != 400 {
		t.Errorf("no route, unknown dropping point: base=%v total=%v, want 400/400", base, total)
	}
}

func TestResolveFareWithRoute(t *testing.T) {
	repo, _, _, _, _ := newFakeRepository()
	svc := NewRouteService(repo, 400, zap.NewNop())

	dest := newDistrict("Sylhet", entity.DroppingPoint{Name: "Amberkhana", Price: 30})
	route := &entity.Route{BaseFare: 700}

	base, total := svc.ResolveFare(route, "Amberkhana", dest)
	if base != 700 || total != 730 {
		t.Errorf("base=%v total=%v, want 700/730", base, total)
	}
}

func TestFindRouteReturnsNilWhenAbsent(t *testing.T) {
	repo, _, _, _, _ := newFakeRepository()
	svc := NewRouteService(repo, 400, zap.NewNop())

	route, err := svc.FindRoute(context.Background(), uuid.New(), uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("FindRoute returned error: %v", err)
	}
	if route != nil {
		t.Fatal("expected nil route for unknown endpoints")
	}
}

func searchFixture() (*repository.Repository, RouteService, *entity.District, *entity.District) {
	repo, districts, providers, routes, _ := newFakeRepository()

	dhaka := newDistrict("Dhaka")
	chattogram := newDistrict("Chattogram")
	districts.districts = append(districts.districts, dhaka, chattogram)

	active := newProvider("Green Line", true)
	inactive := newProvider("Soudia", false)
	providers.providers = append(providers.providers, active, inactive)

	routes.routes = append(routes.routes,
		newRoute(active, dhaka, chattogram, 600, 35),
		newRoute(inactive, dhaka, chattogram, 500, 35),
		newRoute(active, dhaka, chattogram, 900, 35),
	)

	return repo, NewRouteService(repo, 400, zap.NewNop()), dhaka, chattogram
}

func TestSearchBusesSkipsInactiveProviders(t *testing.T) {
	_, svc, _, _ := searchFixture()

	buses, err := svc.SearchBuses(context.Background(), "Dhaka", "Chattogram", nil)
	if err != nil {
		t.Fatalf("SearchBuses returned error: %v", err)
	}

	// The inactive provider's route is skipped, both active ones survive.
	if len(buses) != 2 {
		t.Fatalf("expected 2 buses, got %d", len(buses))
	}
	for _, bus := range buses {
		if bus.Provider != "Green Line" {
			t.Errorf("unexpected provider %s in results", bus.Provider)
		}
	}
}

func TestSearchBusesMaxFareFilter(t *testing.T) {
	_, svc, _, _ := searchFixture()

	maxFare := 700.0
	buses, err := svc.SearchBuses(context.Background(), "Dhaka", "Chattogram", &maxFare)
	if err != nil {
		t.Fatalf("SearchBuses returned error: %v", err)
	}

	if len(buses) != 1 {
		t.Fatalf("expected 1 bus under fare cap, got %d", len(buses))
	}
	if buses[0].Fare != 600 {
		t.Errorf("fare = %v, want 600", buses[0].Fare)
	}
}

func TestSearchBusesUnknownDistrict(t *testing.T) {
	_, svc, _, _ := searchFixture()

	_, err := svc.SearchBuses(context.Background(), "Dhaka", "Atlantis", nil)
	if err == nil {
		t.Fatal("expected error for unknown district")
	}
	assertNotFound(t, err)
}
