package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"bus-booking/internal/data/entity"
	"bus-booking/internal/data/repository"

	"github.com/google/uuid"
)

func assertNotFound(t *testing.T, err error) {
	t.Helper()
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

// In-memory repository fakes used by the service tests.

type fakeDistrictRepo struct {
	districts []*entity.District
}

func (f *fakeDistrictRepo) Create(_ context.Context, district *entity.District) error {
	f.districts = append(f.districts, district)
	return nil
}

func (f *fakeDistrictRepo) FindByName(_ context.Context, name string) (*entity.District, error) {
	for _, d := range f.districts {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDistrictRepo) FindAll(_ context.Context) ([]*entity.District, error) {
	return f.districts, nil
}

func (f *fakeDistrictRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.districts)), nil
}

type fakeProviderRepo struct {
	providers []*entity.BusProvider
}

func (f *fakeProviderRepo) Create(_ context.Context, provider *entity.BusProvider) error {
	f.providers = append(f.providers, provider)
	return nil
}

func (f *fakeProviderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.BusProvider, error) {
	for _, p := range f.providers {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProviderRepo) FindByName(_ context.Context, name string) (*entity.BusProvider, error) {
	for _, p := range f.providers {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProviderRepo) FindByNameLike(_ context.Context, name string) (*entity.BusProvider, error) {
	needle := strings.ToLower(name)
	for _, p := range f.providers {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProviderRepo) FindAll(_ context.Context) ([]*entity.BusProvider, error) {
	return f.providers, nil
}

type fakeRouteRepo struct {
	routes []*entity.Route
}

func (f *fakeRouteRepo) Create(_ context.Context, route *entity.Route) error {
	f.routes = append(f.routes, route)
	return nil
}

func (f *fakeRouteRepo) FindActiveByEndpoints(_ context.Context, providerID, fromID, toID uuid.UUID) (*entity.Route, error) {
	for _, r := range f.routes {
		if r.IsActive && r.ProviderID == providerID && r.FromDistrictID == fromID && r.ToDistrictID == toID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRouteRepo) FindActiveBetween(_ context.Context, fromID, toID uuid.UUID, maxFare *float64) ([]*entity.Route, error) {
	var routes []*entity.Route
	for _, r := range f.routes {
		if !r.IsActive || r.FromDistrictID != fromID || r.ToDistrictID != toID {
			continue
		}
		if maxFare != nil && r.BaseFare > *maxFare {
			continue
		}
		routes = append(routes, r)
	}
	return routes, nil
}

func (f *fakeRouteRepo) DecrementSeat(_ context.Context, routeID uuid.UUID) (bool, error) {
	for _, r := range f.routes {
		if r.ID == routeID && r.AvailableSeats > 0 {
			r.AvailableSeats--
			return true, nil
		}
	}
	return false, nil
}

type fakeBookingRepo struct {
	bookings []*entity.Booking
	// collideFirst forces this many reference-existence checks to report a
	// collision before allowing one through.
	collideFirst int
	existsCalls  int
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	f.bookings = append(f.bookings, booking)
	return nil
}

func (f *fakeBookingRepo) FindByReference(_ context.Context, reference string) (*entity.Booking, error) {
	for _, b := range f.bookings {
		if b.BookingReference == reference {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) ReferenceExists(_ context.Context, reference string) (bool, error) {
	f.existsCalls++
	if f.existsCalls <= f.collideFirst {
		return true, nil
	}
	for _, b := range f.bookings {
		if b.BookingReference == reference {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) FindAll(_ context.Context, phone string) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for _, b := range f.bookings {
		if phone == "" || b.CustomerPhone == phone {
			bookings = append(bookings, b)
		}
	}
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].BookingDate.After(bookings[j].BookingDate)
	})
	return bookings, nil
}

func (f *fakeBookingRepo) MarkCancelled(_ context.Context, id uuid.UUID, cancelledAt time.Time) (bool, error) {
	for _, b := range f.bookings {
		if b.ID == id && b.Status != entity.BookingStatusCancelled {
			b.Status = entity.BookingStatusCancelled
			b.CancelledAt = &cancelledAt
			return true, nil
		}
	}
	return false, nil
}

func newFakeRepository() (*repository.Repository, *fakeDistrictRepo, *fakeProviderRepo, *fakeRouteRepo, *fakeBookingRepo) {
	districts := &fakeDistrictRepo{}
	providers := &fakeProviderRepo{}
	routes := &fakeRouteRepo{}
	bookings := &fakeBookingRepo{}

	repo := &repository.Repository{
		District: districts,
		Provider: providers,
		Route:    routes,
		Booking:  bookings,
	}
	return repo, districts, providers, routes, bookings
}
