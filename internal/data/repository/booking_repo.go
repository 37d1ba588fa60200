package repository

import (
	"context"
	"fmt"
	"time"

	"bus-booking/internal/data/entity"
	"bus-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByReference(ctx context.Context, reference string) (*entity.Booking, error)
	ReferenceExists(ctx context.Context, reference string) (bool, error)
	// FindAll returns bookings newest first, optionally filtered by phone.
	FindAll(ctx context.Context, phone string) ([]*entity.Booking, error)
	// MarkCancelled flips an active booking to cancelled. Reports whether the
	// row was actually transitioned.
	MarkCancelled(ctx context.Context, id uuid.UUID, cancelledAt time.Time) (bool, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, booking_reference, route_id, provider_id, customer_name, customer_phone,
		from_district, to_district, bus_provider, dropping_point, travel_date, num_seats, fare,
		total_fare, discount, status, payment_status, booking_date, cancelled_at, created_at, updated_at`

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, booking_reference, route_id, provider_id, customer_name, customer_phone,
			from_district, to_district, bus_provider, dropping_point, travel_date, num_seats, fare,
			total_fare, discount, status, payment_status, booking_date, cancelled_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.BookingReference,
		booking.RouteID,
		booking.ProviderID,
		booking.CustomerName,
		booking.CustomerPhone,
		booking.FromDistrict,
		booking.ToDistrict,
		booking.BusProvider,
		booking.DroppingPoint,
		booking.TravelDate,
		booking.NumSeats,
		booking.Fare,
		booking.TotalFare,
		booking.Discount,
		booking.Status,
		booking.PaymentStatus,
		booking.BookingDate,
		booking.CancelledAt,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_reference", booking.BookingReference),
		)
		return fmt.Errorf("create booking %s: %w", booking.BookingReference, err)
	}

	return nil
}

func (r *bookingRepository) scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.BookingReference,
		&booking.RouteID,
		&booking.ProviderID,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&booking.FromDistrict,
		&booking.ToDistrict,
		&booking.BusProvider,
		&booking.DroppingPoint,
		&booking.TravelDate,
		&booking.NumSeats,
		&booking.Fare,
		&booking.TotalFare,
		&booking.Discount,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.BookingDate,
		&booking.CancelledAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_reference = $1`

	booking, err := r.scanBooking(r.db.QueryRow(ctx, query, reference))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by reference",
			zap.Error(err),
			zap.String("booking_reference", reference),
		)
		return nil, fmt.Errorf("find booking by reference %s: %w", reference, err)
	}

	return booking, nil
}

func (r *bookingRepository) ReferenceExists(ctx context.Context, reference string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM bookings WHERE booking_reference = $1)`

	var exists bool
	err := r.db.QueryRow(ctx, query, reference).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check booking reference",
			zap.Error(err),
			zap.String("booking_reference", reference),
		)
		return false, fmt.Errorf("check booking reference %s: %w", reference, err)
	}

	return exists, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, phone string) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`
	var args []any

	if phone != "" {
		query += ` WHERE customer_phone = $1`
		args = append(args, phone)
	}
	query += ` ORDER BY booking_date DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find bookings",
			zap.Error(err),
			zap.String("phone", phone),
		)
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) MarkCancelled(ctx context.Context, id uuid.UUID, cancelledAt time.Time) (bool, error) {
	query := `
		UPDATE bookings
		SET status = $2, cancelled_at = $3, updated_at = NOW()
		WHERE id = $1 AND status <> $2
	`

	result, err := r.db.Exec(ctx, query, id, entity.BookingStatusCancelled, cancelledAt)
	if err != nil {
		r.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return false, fmt.Errorf("cancel booking %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}
