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

type ProviderRepository interface {
	Create(ctx context.Context, provider *entity.BusProvider) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BusProvider, error)
	FindByName(ctx context.Context, name string) (*entity.BusProvider, error)
	FindByNameLike(ctx context.Context, name string) (*entity.BusProvider, error)
	FindAll(ctx context.Context) ([]*entity.BusProvider, error)
}

type providerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProviderRepository(db database.PgxIface, log *zap.Logger) ProviderRepository {
	return &providerRepository{
		db:  db,
		log: log.With(zap.String("repository", "provider")),
	}
}

const providerColumns = `id, name, coverage_districts, official_address, contact_info,
		email, website, privacy_policy, rating, total_buses, is_active, created_at, updated_at`

func (r *providerRepository) Create(ctx context.Context, provider *entity.BusProvider) error {
	query := `
		INSERT INTO bus_providers (id, name, coverage_districts, official_address, contact_info,
			email, website, privacy_policy, rating, total_buses, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		provider.ID,
		provider.Name,
		provider.CoverageDistricts,
		provider.OfficialAddress,
		provider.ContactInfo,
		provider.Email,
		provider.Website,
		provider.PrivacyPolicy,
		provider.Rating,
		provider.TotalBuses,
		provider.IsActive,
		provider.CreatedAt,
		provider.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create provider",
			zap.Error(err),
			zap.String("name", provider.Name),
		)
		return fmt.Errorf("create provider %s: %w", provider.Name, err)
	}

	return nil
}

func (r *providerRepository) scanProvider(row pgx.Row) (*entity.BusProvider, error) {
	var provider entity.BusProvider
	err := row.Scan(
		&provider.ID,
		&provider.Name,
		&provider.CoverageDistricts,
		&provider.OfficialAddress,
		&provider.ContactInfo,
		&provider.Email,
		&provider.Website,
		&provider.PrivacyPolicy,
		&provider.Rating,
		&provider.TotalBuses,
		&provider.IsActive,
		&provider.CreatedAt,
		&provider.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &provider, nil
}

func (r *providerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BusProvider, error) {
	query := `SELECT ` + providerColumns + ` FROM bus_providers WHERE id = $1`

	provider, err := r.scanProvider(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find provider by ID",
			zap.Error(err),
			zap.String("provider_id", id.String()),
		)
		return nil, fmt.Errorf("find provider by ID %s: %w", id.String(), err)
	}

	return provider, nil
}

func (r *providerRepository) FindByName(ctx context.Context, name string) (*entity.BusProvider, error) {
	query := `SELECT ` + providerColumns + ` FROM bus_providers WHERE name = $1`

	provider, err := r.scanProvider(r.db.QueryRow(ctx, query, name))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find provider by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find provider by name %s: %w", name, err)
	}

	return provider, nil
}

func (r *providerRepository) FindByNameLike(ctx context.Context, name string) (*entity.BusProvider, error) {
	query := `SELECT ` + providerColumns + ` FROM bus_providers WHERE name ILIKE $1 ORDER BY created_at LIMIT 1`

	provider, err := r.scanProvider(r.db.QueryRow(ctx, query, "%"+name+"%"))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find provider by name pattern",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find provider like %s: %w", name, err)
	}

	return provider, nil
}

func (r *providerRepository) FindAll(ctx context.Context) ([]*entity.BusProvider, error) {
	query := `SELECT ` + providerColumns + ` FROM bus_providers ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find providers", zap.Error(err))
		return nil, fmt.Errorf("find all providers: %w", err)
	}
	defer rows.Close()

	var providers []*entity.BusProvider
	for rows.Next() {
		provider, err := r.scanProvider(rows)
		if err != nil {
			r.log.Error("Failed to scan provider row", zap.Error(err))
			return nil, fmt.Errorf("scan provider row: %w", err)
		}
		providers = append(providers, provider)
	}

	return providers, nil
}
