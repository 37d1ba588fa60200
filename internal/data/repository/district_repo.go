package repository

import (
	"context"
	"fmt"

	"bus-booking/internal/data/entity"
	"bus-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type DistrictRepository interface {
	Create(ctx context.Context, district *entity.District) error
	FindByName(ctx context.Context, name string) (*entity.District, error)
	FindAll(ctx context.Context) ([]*entity.District, error)
	Count(ctx context.Context) (int64, error)
}

type districtRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDistrictRepository(db database.PgxIface, log *zap.Logger) DistrictRepository {
	return &districtRepository{
		db:  db,
		log: log.With(zap.String("repository", "district")),
	}
}

func (r *districtRepository) Create(ctx context.Context, district *entity.District) error {
	query := `
		INSERT INTO districts (id, name, dropping_points, description, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		district.ID,
		district.Name,
		district.DroppingPoints,
		district.Description,
		district.IsActive,
		district.CreatedAt,
		district.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create district",
			zap.Error(err),
			zap.String("name", district.Name),
		)
		return fmt.Errorf("create district %s: %w", district.Name, err)
	}

	return nil
}

func (r *districtRepository) FindByName(ctx context.Context, name string) (*entity.District, error) {
	query := `
		SELECT id, name, dropping_points, description, is_active, created_at, updated_at
		FROM districts
		WHERE name = $1
	`

	var district entity.District
	err := r.db.QueryRow(ctx, query, name).Scan(
		&district.ID,
		&district.Name,
		&district.DroppingPoints,
		&district.Description,
		&district.IsActive,
		&district.CreatedAt,
		&district.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find district by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find district by name %s: %w", name, err)
	}

	return &district, nil
}

func (r *districtRepository) FindAll(ctx context.Context) ([]*entity.District, error) {
	query := `
		SELECT id, name, dropping_points, description, is_active, created_at, updated_at
		FROM districts
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find districts", zap.Error(err))
		return nil, fmt.Errorf("find all districts: %w", err)
	}
	defer rows.Close()

	var districts []*entity.District
	for rows.Next() {
		var district entity.District
		err := rows.Scan(
			&district.ID,
			&district.Name,
			&district.DroppingPoints,
			&district.Description,
			&district.IsActive,
			&district.CreatedAt,
			&district.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan district row", zap.Error(err))
			return nil, fmt.Errorf("scan district row: %w", err)
		}
		districts = append(districts, &district)
	}

	return districts, nil
}

func (r *districtRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM districts`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count districts", zap.Error(err))
		return 0, fmt.Errorf("count districts: %w", err)
	}

	return count, nil
}
