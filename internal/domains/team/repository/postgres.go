package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/team"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/team/model"
)

type RepositoryInterface interface {
	// List returns the global roster when candidateID is nil, otherwise
	// one candidate's roster.
	List(ctx context.Context, candidateID *int64) ([]model.TeamMember, error)
	Insert(ctx context.Context, m *model.TeamMember) (int64, error)
	Update(ctx context.Context, id int64, candidateID *int64, m *model.TeamMember) error
	Delete(ctx context.Context, id int64, candidateID *int64) error
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{
		pool: pool,
	}
}

func (r *postgresRepository) List(ctx context.Context, candidateID *int64) ([]model.TeamMember, error) {
	query := `SELECT id, candidate_id, name, COALESCE(role, ''), COALESCE(photo_url, ''),
	                 COALESCE(facebook_link, ''), COALESCE(linkedin_link, '')
	          FROM team_members WHERE candidate_id `
	args := []any{}
	if candidateID == nil {
		query += `IS NULL`
	} else {
		query += `= $1`
		args = append(args, *candidateID)
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	defer rows.Close()

	members := []model.TeamMember{}
	for rows.Next() {
		var m model.TeamMember
		if err := rows.Scan(&m.ID, &m.CandidateID, &m.Name, &m.Role, &m.PhotoURL,
			&m.FacebookLink, &m.LinkedinLink); err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *postgresRepository) Insert(ctx context.Context, m *model.TeamMember) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO team_members (candidate_id, name, role, photo_url, facebook_link, linkedin_link)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		m.CandidateID, m.Name, m.Role, m.PhotoURL, m.FacebookLink, m.LinkedinLink,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert team member: %w", err)
	}
	return id, nil
}

// Update is scoped by owner: a candidate can only touch their own roster,
// the superadmin only the global one.
func (r *postgresRepository) Update(ctx context.Context, id int64, candidateID *int64, m *model.TeamMember) error {
	query := `UPDATE team_members
	          SET name = $1, role = $2, facebook_link = $3, linkedin_link = $4,
	              photo_url = COALESCE(NULLIF($5, ''), photo_url)
	          WHERE id = $6 AND candidate_id `
	args := []any{m.Name, m.Role, m.FacebookLink, m.LinkedinLink, m.PhotoURL, id}
	if candidateID == nil {
		query += `IS NULL`
	} else {
		query += `= $7`
		args = append(args, *candidateID)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update team member %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return team.ErrMemberNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64, candidateID *int64) error {
	query := `DELETE FROM team_members WHERE id = $1 AND candidate_id `
	args := []any{id}
	if candidateID == nil {
		query += `IS NULL`
	} else {
		query += `= $2`
		args = append(args, *candidateID)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete team member %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return team.ErrMemberNotFound
	}
	return nil
}
