package entity

import (
	"github.com/google/uuid"
)

// Route is a directed, provider-specific offering between two districts.
// Both directions of a district pair are stored as separate rows with
// independent seat pools.
type Route struct {
	Base
	ProviderID     uuid.UUID `db:"provider_id"`
	FromDistrictID uuid.UUID `db:"from_district_id"`
	ToDistrictID   uuid.UUID `db:"to_district_id"`
	BaseFare       float64   `db:"base_fare"`
	DistanceKM     float64   `db:"distance_km"`
	DurationHours  float64   `db:"duration_hours"`
	SeatClass      string    `db:"seat_class"`
	AvailableSeats int       `db:"available_seats"`
	TotalSeats     int       `db:"total_seats"`
	DepartureTimes []string  `db:"departure_times"`
	IsActive       bool      `db:"is_active"`
}
