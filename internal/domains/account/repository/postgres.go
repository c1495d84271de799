package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/account"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/account/model"
)

type RepositoryInterface interface {
	Create(ctx context.Context, username, passwordHash, role string) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	// EnsureSuperAdmin creates the superadmin account if it does not exist.
	// Existing accounts keep their password.
	EnsureSuperAdmin(ctx context.Context, username, passwordHash string) error
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{
		pool: pool,
	}
}

func (r *postgresRepository) Create(ctx context.Context, username, passwordHash, role string) (*model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (username, password_hash, role)
		 VALUES ($1, $2, $3)
		 RETURNING id, username, password_hash, role, created_at`,
		username, passwordHash, role,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, account.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &u, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, role, created_at FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, account.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user %d: %w", id, err)
	}
	return &u, nil
}

func (r *postgresRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, role, created_at FROM users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, account.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user %q: %w", username, err)
	}
	return &u, nil
}

func (r *postgresRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET password_hash = $1 WHERE id = $2`,
		passwordHash, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return account.ErrUserNotFound
	}
	return nil
}

func (r *postgresRepository) EnsureSuperAdmin(ctx context.Context, username, passwordHash string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (username, password_hash, role)
		 VALUES ($1, $2, 'super_admin')
		 ON CONFLICT (username) DO NOTHING`,
		username, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("failed to seed superadmin: %w", err)
	}
	return nil
}
