package repository

import (
	"bus-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	District DistrictRepository
	Provider ProviderRepository
	Route    RouteRepository
	Booking  BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		District: NewDistrictRepository(db, log),
		Provider: NewProviderRepository(db, log),
		Route:    NewRouteRepository(db, log),
		Booking:  NewBookingRepository(db, log),
	}
}
