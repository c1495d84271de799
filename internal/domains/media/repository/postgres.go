package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/media"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/media/model"
)

type RepositoryInterface interface {
	ListByCandidate(ctx context.Context, candidateID int64) ([]model.MediaItem, error)
	InsertBatch(ctx context.Context, items []model.MediaItem) error
	// Delete is scoped by candidate so owners cannot remove each other's items.
	Delete(ctx context.Context, id, candidateID int64) (fileURL string, err error)
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{
		pool: pool,
	}
}

func (r *postgresRepository) ListByCandidate(ctx context.Context, candidateID int64) ([]model.MediaItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, candidate_id, file_url, file_type, created_at
		 FROM media_gallery WHERE candidate_id = $1 ORDER BY created_at DESC`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery: %w", err)
	}
	defer rows.Close()

	items := []model.MediaItem{}
	for rows.Next() {
		var m model.MediaItem
		if err := rows.Scan(&m.ID, &m.CandidateID, &m.FileURL, &m.FileType, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan gallery item: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *postgresRepository) InsertBatch(ctx context.Context, items []model.MediaItem) error {
	for _, item := range items {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO media_gallery (candidate_id, file_url, file_type) VALUES ($1, $2, $3)`,
			item.CandidateID, item.FileURL, item.FileType,
		)
		if err != nil {
			return fmt.Errorf("failed to insert gallery item: %w", err)
		}
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id, candidateID int64) (string, error) {
	var fileURL string
	err := r.pool.QueryRow(ctx,
		`DELETE FROM media_gallery WHERE id = $1 AND candidate_id = $2 RETURNING file_url`,
		id, candidateID,
	).Scan(&fileURL)
	if err != nil {
		return "", media.ErrItemNotFound
	}
	return fileURL, nil
}
