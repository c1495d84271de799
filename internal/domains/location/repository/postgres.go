package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/location/model"
	"github.com/Melodious-nub/bnp-digital-backend/pkg/cache"
)

type RepositoryInterface interface {
	ListDivisions(ctx context.Context) ([]model.Division, error)
	ListDistricts(ctx context.Context, divisionID int64) ([]model.District, error)
	Seed(ctx context.Context) error
}

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) RepositoryInterface {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	divisionsCacheKey       = "locations:divisions"
	districtsCacheKeyFormat = "locations:districts:%d"
	locationCacheTTL        = 24 * time.Hour
)

func (r *postgresRepository) ListDivisions(ctx context.Context) ([]model.Division, error) {
	var cached []model.Division
	if found, err := r.cache.Get(ctx, divisionsCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	rows, err := r.pool.Query(ctx, `SELECT id, name, bn_name FROM divisions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list divisions: %w", err)
	}
	defer rows.Close()

	var divisions []model.Division
	for rows.Next() {
		var d model.Division
		if err := rows.Scan(&d.ID, &d.Name, &d.BnName); err != nil {
			return nil, fmt.Errorf("failed to scan division: %w", err)
		}
		divisions = append(divisions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read divisions: %w", err)
	}

	// Reference data, cache failures are non-fatal
	_ = r.cache.Set(ctx, divisionsCacheKey, divisions, locationCacheTTL)

	return divisions, nil
}

func (r *postgresRepository) ListDistricts(ctx context.Context, divisionID int64) ([]model.District, error) {
	cacheKey := fmt.Sprintf(districtsCacheKeyFormat, divisionID)

	var cached []model.District
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	query := `SELECT id, division_id, name, bn_name FROM districts`
	args := []any{}
	if divisionID > 0 {
		query += ` WHERE division_id = $1`
		args = append(args, divisionID)
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list districts: %w", err)
	}
	defer rows.Close()

	var districts []model.District
	for rows.Next() {
		var d model.District
		if err := rows.Scan(&d.ID, &d.DivisionID, &d.Name, &d.BnName); err != nil {
			return nil, fmt.Errorf("failed to scan district: %w", err)
		}
		districts = append(districts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read districts: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, districts, locationCacheTTL)

	return districts, nil
}

// Seed fills the reference tables on first startup. Conflicts are ignored
// so repeated startups are safe.
func (r *postgresRepository) Seed(ctx context.Context) error {
	for _, d := range seedDivisions {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO divisions (id, name, bn_name) VALUES ($1, $2, $3)
			 ON CONFLICT (id) DO NOTHING`,
			d.ID, d.Name, d.BnName,
		)
		if err != nil {
			return fmt.Errorf("failed to seed division %s: %w", d.Name, err)
		}
	}

	for _, d := range seedDistricts {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO districts (id, division_id, name, bn_name) VALUES ($1, $2, $3, $4)
			 ON CONFLICT (id) DO NOTHING`,
			d.ID, d.DivisionID, d.Name, d.BnName,
		)
		if err != nil {
			return fmt.Errorf("failed to seed district %s: %w", d.Name, err)
		}
	}

	return nil
}
