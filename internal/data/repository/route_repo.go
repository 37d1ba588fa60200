package repository

import (
	"context"
	"fmt"

	"bus-booking/internal/data/entity"
	"bus-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RouteRepository interface {
	Create(ctx context.Context, route *entity.Route) error
	// FindActiveByEndpoints returns the active route for one provider between
	// two districts, or nil when no such route exists.
	FindActiveByEndpoints(ctx context.Context, providerID, fromID, toID uuid.UUID) (*entity.Route, error)
	// FindActiveBetween returns every active route between two districts in
	// insertion order, optionally capped at maxFare.
	FindActiveBetween(ctx context.Context, fromID, toID uuid.UUID, maxFare *float64) ([]*entity.Route, error)
	// DecrementSeat atomically takes one seat when any remain. Reports
	// whether a seat was actually taken.
	DecrementSeat(ctx context.Context, routeID uuid.UUID) (bool, error)
}

type routeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRouteRepository(db database.PgxIface, log *zap.Logger) RouteRepository {
	return &routeRepository{
		db:  db,
		log: log.With(zap.String("repository", "route")),
	}
}

const routeColumns = `id, provider_id, from_district_id, to_district_id, base_fare, distance_km,
		duration_hours, seat_class, available_seats, total_seats, departure_times, is_active,
		created_at, updated_at`

func (r *routeRepository) Create(ctx context.Context, route *entity.Route) error {
	query := `
		INSERT INTO routes (id, provider_id, from_district_id, to_district_id, base_fare, distance_km,
			duration_hours, seat_class, available_seats, total_seats, departure_times, is_active,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		route.ID,
		route.ProviderID,
		route.FromDistrictID,
		route.ToDistrictID,
		route.BaseFare,
		route.DistanceKM,
		route.DurationHours,
		route.SeatClass,
		route.AvailableSeats,
		route.TotalSeats,
		route.DepartureTimes,
		route.IsActive,
		route.CreatedAt,
		route.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create route",
			zap.Error(err),
			zap.String("provider_id", route.ProviderID.String()),
		)
		return fmt.Errorf("create route: %w", err)
	}

	return nil
}

func (r *routeRepository) scanRoute(row pgx.Row) (*entity.Route, error) {
	var route entity.Route
	err := row.Scan(
		&route.ID,
		&route.ProviderID,
		&route.FromDistrictID,
		&route.ToDistrictID,
		&route.BaseFare,
		&route.DistanceKM,
		&route.DurationHours,
		&route.SeatClass,
		&route.AvailableSeats,
		&route.TotalSeats,
		&route.DepartureTimes,
		&route.IsActive,
		&route.CreatedAt,
		&route.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &route, nil
}

func (r *routeRepository) FindActiveByEndpoints(ctx context.Context, providerID, fromID, toID uuid.UUID) (*entity.Route, error) {
	query := `
		SELECT ` + routeColumns + `
		FROM routes
		WHERE provider_id = $1 AND from_district_id = $2 AND to_district_id = $3 AND is_active = true
		ORDER BY created_at
		LIMIT 1
	`

	route, err := r.scanRoute(r.db.QueryRow(ctx, query, providerID, fromID, toID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find route by endpoints",
			zap.Error(err),
			zap.String("provider_id", providerID.String()),
			zap.String("from_district_id", fromID.String()),
			zap.String("to_district_id", toID.String()),
		)
		return nil, fmt.Errorf("find route by endpoints: %w", err)
	}

	return route, nil
}

func (r *routeRepository) FindActiveBetween(ctx context.Context, fromID, toID uuid.UUID, maxFare *float64) ([]*entity.Route, error) {
	query := `
		SELECT ` + routeColumns + `
		FROM routes
		WHERE from_district_id = $1 AND to_district_id = $2 AND is_active = true
	`
	args := []any{fromID, toID}

	if maxFare != nil {
		query += ` AND base_fare <= $3`
		args = append(args, *maxFare)
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find routes between districts",
			zap.Error(err),
			zap.String("from_district_id", fromID.String()),
			zap.String("to_district_id", toID.String()),
		)
		return nil, fmt.Errorf("find routes between districts: %w", err)
	}
	defer rows.Close()

	var routes []*entity.Route
	for rows.Next() {
		route, err := r.scanRoute(rows)
		if err != nil {
			r.log.Error("Failed to scan route row", zap.Error(err))
			return nil, fmt.Errorf("scan route row: %w", err)
		}
		routes = append(routes, route)
	}

	return routes, nil
}

func (r *routeRepository) DecrementSeat(ctx context.Context, routeID uuid.UUID) (bool, error) {
	// Conditional single-statement update, seats never go negative even
	// under concurrent bookings.
	query := `
		UPDATE routes
		SET available_seats = available_seats - 1, updated_at = NOW()
		WHERE id = $1 AND available_seats > 0
	`

	result, err := r.db.Exec(ctx, query, routeID)
	if err != nil {
		r.log.Error("Failed to decrement route seat",
			zap.Error(err),
			zap.String("route_id", routeID.String()),
		)
		return false, fmt.Errorf("decrement seat for route %s: %w", routeID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}
