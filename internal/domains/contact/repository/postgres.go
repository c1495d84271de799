package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/contact"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/contact/model"
)

type RepositoryInterface interface {
	Insert(ctx context.Context, m *model.ContactMessage) (int64, error)
	List(ctx context.Context, filter model.ListFilter) ([]model.ContactMessage, error)
	MarkRead(ctx context.Context, id int64) error
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{
		pool: pool,
	}
}

func (r *postgresRepository) Insert(ctx context.Context, m *model.ContactMessage) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contact_messages (candidate_slug, name, email, subject, message)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		m.CandidateSlug, m.Name, m.Email, m.Subject, m.Message,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert contact message: %w", err)
	}
	return id, nil
}

func (r *postgresRepository) List(ctx context.Context, filter model.ListFilter) ([]model.ContactMessage, error) {
	query := `SELECT id, candidate_slug, name, email, subject, message, status, created_at
	          FROM contact_messages WHERE 1=1`
	args := []any{}

	if filter.Status != "" && filter.Status != "all" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Slug != "" {
		args = append(args, filter.Slug)
		query += fmt.Sprintf(" AND candidate_slug = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := []model.ContactMessage{}
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.CandidateSlug, &m.Name, &m.Email, &m.Subject,
			&m.Message, &m.Status, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *postgresRepository) MarkRead(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contact_messages SET status = 'read' WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark message %d read: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return contact.ErrMessageNotFound
	}
	return nil
}
