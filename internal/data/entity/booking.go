package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCancelled BookingStatus = "cancelled"
)

const PaymentStatusPending = "pending"

type Booking struct {
	Base
	BookingReference string     `db:"booking_reference"`
	RouteID          *uuid.UUID `db:"route_id"`
	ProviderID       *uuid.UUID `db:"provider_id"`

	// Passenger details
	CustomerName  string `db:"customer_name"`
	CustomerPhone string `db:"customer_phone"`

	// Journey details, district and provider names kept denormalized so a
	// booking survives even without a matching route
	FromDistrict  string `db:"from_district"`
	ToDistrict    string `db:"to_district"`
	BusProvider   string `db:"bus_provider"`
	DroppingPoint string `db:"dropping_point"`
	TravelDate    string `db:"travel_date"`

	// Fare breakdown
	NumSeats  int     `db:"num_seats"`
	Fare      float64 `db:"fare"`
	TotalFare float64 `db:"total_fare"`
	Discount  float64 `db:"discount"`

	// Status
	Status        BookingStatus `db:"status"`
	PaymentStatus string        `db:"payment_status"`

	BookingDate time.Time  `db:"booking_date"`
	CancelledAt *time.Time `db:"cancelled_at"`
}
