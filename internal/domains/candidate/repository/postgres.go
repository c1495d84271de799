package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate/model"
	"github.com/Melodious-nub/bnp-digital-backend/pkg/cache"
)

type RepositoryInterface interface {
	ListAll(ctx context.Context) ([]model.CandidateSummary, error)
	ListByDistrict(ctx context.Context, districtName string) ([]model.CandidateSummary, error)
	GetProfileBySlug(ctx context.Context, slug string) (*model.CandidateProfile, error)
	FindIDBySlug(ctx context.Context, slug string) (int64, error)
	FindIDByUserID(ctx context.Context, userID int64) (int64, error)
	FindSlugByUserID(ctx context.Context, userID int64) (string, error)
	FindResponsibleEmail(ctx context.Context, slug string) (name, email string, err error)
	UpdateBySlug(ctx context.Context, slug string, patch *model.ProfilePatch) error
	UpdatePhotoURL(ctx context.Context, slug, photoURL string) error
	InvalidateProfile(ctx context.Context, slug string)
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
	profileCacheKeyPrefix = "candidate:profile:"
	profileCacheTTL       = 10 * time.Minute
)

func (r *postgresRepository) ListAll(ctx context.Context) ([]model.CandidateSummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.id, c.full_name_en, c.full_name_bn, c.photo_url, c.designation,
		        c.slug, d.bn_name, dv.bn_name, c.constituency_no
		 FROM candidates c
		 JOIN districts d ON c.district_id = d.id
		 JOIN divisions dv ON c.division_id = dv.id
		 ORDER BY d.name, c.constituency_no`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}

func (r *postgresRepository) ListByDistrict(ctx context.Context, districtName string) ([]model.CandidateSummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.id, c.full_name_en, c.full_name_bn, c.photo_url, c.designation,
		        c.slug, d.bn_name, dv.bn_name, c.constituency_no
		 FROM candidates c
		 JOIN districts d ON c.district_id = d.id
		 JOIN divisions dv ON c.division_id = dv.id
		 WHERE d.name = $1 OR d.bn_name = $1
		 ORDER BY c.constituency_no`,
		districtName,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}

func scanSummaries(rows pgx.Rows) ([]model.CandidateSummary, error) {
	var out []model.CandidateSummary
	for rows.Next() {
		var c model.CandidateSummary
		var photoURL, designation *string
		if err := rows.Scan(&c.ID, &c.FullNameEn, &c.FullNameBn, &photoURL, &designation,
			&c.Slug, &c.DistrictBn, &c.DivisionBn, &c.ConstituencyNo); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		if photoURL != nil {
			c.PhotoURL = *photoURL
		}
		if designation != nil {
			c.Designation = *designation
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}
	return out, nil
}

func (r *postgresRepository) GetProfileBySlug(ctx context.Context, slug string) (*model.CandidateProfile, error) {
	cacheKey := profileCacheKeyPrefix + slug

	var cached model.CandidateProfile
	if found, err := r.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	var p model.CandidateProfile
	var nullable [15]*string
	err := r.pool.QueryRow(ctx,
		`SELECT c.id, COALESCE(c.full_name_en, ''), COALESCE(c.full_name_bn, ''), c.slug,
		        c.division_id, c.district_id, c.constituency_no,
		        c.photo_url, c.designation, c.brief_intro, c.intro_bn,
		        c.political_journey, c.political_journey_bn,
		        c.personal_profile, c.personal_profile_bn,
		        c.vision, c.vision_bn, c.facebook_link, c.responsible_person, c.email,
		        d.name, d.bn_name, dv.name, dv.bn_name
		 FROM candidates c
		 JOIN districts d ON c.district_id = d.id
		 JOIN divisions dv ON c.division_id = dv.id
		 WHERE c.slug = $1`,
		slug,
	).Scan(&p.ID, &p.FullNameEn, &p.FullNameBn, &p.Slug,
		&p.DivisionID, &p.DistrictID, &p.ConstituencyNo,
		&nullable[0], &nullable[1], &nullable[2], &nullable[3],
		&nullable[4], &nullable[5], &nullable[6], &nullable[7],
		&nullable[8], &nullable[9], &nullable[10], &nullable[11], &nullable[12],
		&p.DistrictEn, &p.DistrictBn, &p.DivisionEn, &p.DivisionBn)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, candidate.ErrCandidateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %q: %w", slug, err)
	}

	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	p.PhotoURL = deref(nullable[0])
	p.Designation = deref(nullable[1])
	p.BriefIntro = deref(nullable[2])
	p.IntroBn = deref(nullable[3])
	p.PoliticalJourney = deref(nullable[4])
	p.PoliticalJourneyBn = deref(nullable[5])
	p.PersonalProfile = deref(nullable[6])
	p.PersonalProfileBn = deref(nullable[7])
	p.Vision = deref(nullable[8])
	p.VisionBn = deref(nullable[9])
	p.FacebookLink = deref(nullable[10])
	p.ResponsiblePerson = deref(nullable[11])
	p.Email = deref(nullable[12])

	if err := r.loadTeam(ctx, &p); err != nil {
		return nil, err
	}
	if err := r.loadGallery(ctx, &p); err != nil {
		return nil, err
	}

	_ = r.cache.Set(ctx, cacheKey, p, profileCacheTTL)

	return &p, nil
}

func (r *postgresRepository) loadTeam(ctx context.Context, p *model.CandidateProfile) error {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, COALESCE(role, ''), COALESCE(photo_url, ''),
		        COALESCE(facebook_link, ''), COALESCE(linkedin_link, '')
		 FROM team_members WHERE candidate_id = $1 ORDER BY id`,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to load team: %w", err)
	}
	defer rows.Close()

	p.Team = []model.TeamEntry{}
	for rows.Next() {
		var t model.TeamEntry
		if err := rows.Scan(&t.ID, &t.Name, &t.Role, &t.PhotoURL, &t.FacebookLink, &t.LinkedinLink); err != nil {
			return fmt.Errorf("failed to scan team member: %w", err)
		}
		p.Team = append(p.Team, t)
	}
	return rows.Err()
}

func (r *postgresRepository) loadGallery(ctx context.Context, p *model.CandidateProfile) error {
	rows, err := r.pool.Query(ctx,
		`SELECT id, file_url, file_type, created_at
		 FROM media_gallery WHERE candidate_id = $1 ORDER BY created_at DESC`,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to load gallery: %w", err)
	}
	defer rows.Close()

	p.Gallery = []model.MediaEntry{}
	for rows.Next() {
		var m model.MediaEntry
		if err := rows.Scan(&m.ID, &m.FileURL, &m.FileType, &m.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan gallery item: %w", err)
		}
		p.Gallery = append(p.Gallery, m)
	}
	return rows.Err()
}

func (r *postgresRepository) FindIDBySlug(ctx context.Context, slug string) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `SELECT id FROM candidates WHERE slug = $1`, slug).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, candidate.ErrCandidateNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to find candidate %q: %w", slug, err)
	}
	return id, nil
}

func (r *postgresRepository) FindIDByUserID(ctx context.Context, userID int64) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `SELECT id FROM candidates WHERE user_id = $1`, userID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, candidate.ErrCandidateNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to find candidate for user %d: %w", userID, err)
	}
	return id, nil
}

func (r *postgresRepository) FindSlugByUserID(ctx context.Context, userID int64) (string, error) {
	var slug string
	err := r.pool.QueryRow(ctx, `SELECT slug FROM candidates WHERE user_id = $1`, userID).Scan(&slug)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", candidate.ErrCandidateNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to find slug for user %d: %w", userID, err)
	}
	return slug, nil
}

func (r *postgresRepository) FindResponsibleEmail(ctx context.Context, slug string) (string, string, error) {
	var name, email *string
	err := r.pool.QueryRow(ctx,
		`SELECT full_name_en, email FROM candidates WHERE slug = $1`,
		slug,
	).Scan(&name, &email)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", "", candidate.ErrCandidateNotFound
	}
	if err != nil {
		return "", "", fmt.Errorf("failed to find contact target %q: %w", slug, err)
	}

	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	return deref(name), deref(email), nil
}

// UpdateBySlug applies a typed patch. Column names come from the patch's
// fixed allowlist, values are bound as parameters.
func (r *postgresRepository) UpdateBySlug(ctx context.Context, slug string, patch *model.ProfilePatch) error {
	cols, vals := patch.Columns()
	if len(cols) == 0 {
		return candidate.ErrNoFieldsToUpdate
	}

	set := make([]string, len(cols))
	for i, col := range cols {
		set[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	vals = append(vals, slug)

	query := fmt.Sprintf(
		`UPDATE candidates SET %s, updated_at = now() WHERE slug = $%d`,
		strings.Join(set, ", "), len(vals),
	)

	tag, err := r.pool.Exec(ctx, query, vals...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return candidate.ErrDuplicateSeat
		}
		return fmt.Errorf("failed to update candidate %q: %w", slug, err)
	}
	if tag.RowsAffected() == 0 {
		return candidate.ErrCandidateNotFound
	}

	r.InvalidateProfile(ctx, slug)
	if patch.Slug != nil && *patch.Slug != slug {
		r.InvalidateProfile(ctx, *patch.Slug)
	}
	return nil
}

func (r *postgresRepository) UpdatePhotoURL(ctx context.Context, slug, photoURL string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE candidates SET photo_url = $1, updated_at = now() WHERE slug = $2`,
		photoURL, slug,
	)
	if err != nil {
		return fmt.Errorf("failed to update photo for %q: %w", slug, err)
	}
	if tag.RowsAffected() == 0 {
		return candidate.ErrCandidateNotFound
	}

	r.InvalidateProfile(ctx, slug)
	return nil
}

func (r *postgresRepository) InvalidateProfile(ctx context.Context, slug string) {
	// Stale cache is tolerable, a failed delete is not worth failing the write
	_ = r.cache.Delete(ctx, profileCacheKeyPrefix+slug)
}
