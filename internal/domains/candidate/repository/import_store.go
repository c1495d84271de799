package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate/model"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/location"
	locmodel "github.com/Melodious-nub/bnp-digital-backend/internal/domains/location/model"
	"github.com/Melodious-nub/bnp-digital-backend/pkg/cache"
	"github.com/Melodious-nub/bnp-digital-backend/pkg/database"
)

// Seat is the (candidate, owning user) pair behind one electoral seat.
type Seat struct {
	CandidateID int64
	UserID      int64
}

// ImportTx is the write surface of one import transaction. Every method
// runs inside the same database transaction; a fatal error from any of
// them rolls the whole pass back.
type ImportTx interface {
	FindDivision(ctx context.Context, name string) (*locmodel.Division, error)
	FindDistrict(ctx context.Context, divisionID int64, name string) (*locmodel.District, error)
	// FindSeat returns (nil, nil) when the seat has never been imported.
	FindSeat(ctx context.Context, districtID int64, constituencyNo int) (*Seat, error)
	FindUserIDByUsername(ctx context.Context, username string) (int64, bool, error)
	CreateUser(ctx context.Context, username, passwordHash string) (int64, error)
	UpdateUsername(ctx context.Context, userID int64, username string) error
	InsertCandidate(ctx context.Context, c *model.Candidate) error
	UpdateCandidate(ctx context.Context, candidateID int64, c *model.Candidate) error
}

// ImportStore opens the all-or-nothing transaction an import pass runs in.
type ImportStore interface {
	WithinImport(ctx context.Context, fn func(tx ImportTx) error) error
}

type postgresImportStore struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresImportStore(pool *pgxpool.Pool, cache cache.Cache) ImportStore {
	return &postgresImportStore{
		pool:  pool,
		cache: cache,
	}
}

func (s *postgresImportStore) WithinImport(ctx context.Context, fn func(tx ImportTx) error) error {
	err := database.WithTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		return fn(&postgresImportTx{tx: tx})
	})
	if err != nil {
		return err
	}

	// Profiles may have been rewritten wholesale; drop every cached copy.
	// Cache misses rebuild from the database, so failure here is non-fatal.
	_ = s.cache.DeletePattern(ctx, profileCacheKeyPrefix+"*")
	return nil
}

type postgresImportTx struct {
	tx pgx.Tx
}

func (t *postgresImportTx) FindDivision(ctx context.Context, name string) (*locmodel.Division, error) {
	var d locmodel.Division
	err := t.tx.QueryRow(ctx,
		`SELECT id, name, bn_name FROM divisions WHERE LOWER(name) = LOWER($1)`,
		name,
	).Scan(&d.ID, &d.Name, &d.BnName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, location.ErrDivisionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find division %q: %w", name, err)
	}
	return &d, nil
}

func (t *postgresImportTx) FindDistrict(ctx context.Context, divisionID int64, name string) (*locmodel.District, error) {
	var d locmodel.District
	err := t.tx.QueryRow(ctx,
		`SELECT id, division_id, name, bn_name FROM districts
		 WHERE division_id = $1 AND LOWER(name) = LOWER($2)`,
		divisionID, name,
	).Scan(&d.ID, &d.DivisionID, &d.Name, &d.BnName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, location.ErrDistrictNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find district %q: %w", name, err)
	}
	return &d, nil
}

func (t *postgresImportTx) FindSeat(ctx context.Context, districtID int64, constituencyNo int) (*Seat, error) {
	var seat Seat
	err := t.tx.QueryRow(ctx,
		`SELECT id, user_id FROM candidates WHERE district_id = $1 AND constituency_no = $2`,
		districtID, constituencyNo,
	).Scan(&seat.CandidateID, &seat.UserID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find seat %d-%d: %w", districtID, constituencyNo, err)
	}
	return &seat, nil
}

func (t *postgresImportTx) FindUserIDByUsername(ctx context.Context, username string) (int64, bool, error) {
	var id int64
	err := t.tx.QueryRow(ctx,
		`SELECT id FROM users WHERE username = $1`,
		username,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to find user %q: %w", username, err)
	}
	return id, true, nil
}

func (t *postgresImportTx) CreateUser(ctx context.Context, username, passwordHash string) (int64, error) {
	var id int64
	err := t.tx.QueryRow(ctx,
		`INSERT INTO users (username, password_hash, role)
		 VALUES ($1, $2, 'candidate')
		 RETURNING id`,
		username, passwordHash,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create user %q: %w", username, err)
	}
	return id, nil
}

func (t *postgresImportTx) UpdateUsername(ctx context.Context, userID int64, username string) error {
	_, err := t.tx.Exec(ctx,
		`UPDATE users SET username = $1 WHERE id = $2`,
		username, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update username for user %d: %w", userID, err)
	}
	return nil
}

func (t *postgresImportTx) InsertCandidate(ctx context.Context, c *model.Candidate) error {
	_, err := t.tx.Exec(ctx,
		`INSERT INTO candidates (
			user_id, slug, full_name_en, full_name_bn, division_id, district_id,
			constituency_no, brief_intro, intro_bn, political_journey, political_journey_bn,
			personal_profile, personal_profile_bn, vision, vision_bn,
			facebook_link, responsible_person, email
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		c.UserID, c.Slug, c.FullNameEn, c.FullNameBn, c.DivisionID, c.DistrictID,
		c.ConstituencyNo, c.BriefIntro, c.IntroBn, c.PoliticalJourney, c.PoliticalJourneyBn,
		c.PersonalProfile, c.PersonalProfileBn, c.Vision, c.VisionBn,
		c.FacebookLink, c.ResponsiblePerson, c.Email,
	)
	if err != nil {
		return fmt.Errorf("failed to insert candidate %q: %w", c.Slug, err)
	}
	return nil
}

func (t *postgresImportTx) UpdateCandidate(ctx context.Context, candidateID int64, c *model.Candidate) error {
	_, err := t.tx.Exec(ctx,
		`UPDATE candidates SET
			slug = $1, full_name_en = $2, full_name_bn = $3, division_id = $4, district_id = $5,
			constituency_no = $6, brief_intro = $7, intro_bn = $8, political_journey = $9,
			political_journey_bn = $10, personal_profile = $11, personal_profile_bn = $12,
			vision = $13, vision_bn = $14, facebook_link = $15, responsible_person = $16,
			email = $17, updated_at = now()
		 WHERE id = $18`,
		c.Slug, c.FullNameEn, c.FullNameBn, c.DivisionID, c.DistrictID,
		c.ConstituencyNo, c.BriefIntro, c.IntroBn, c.PoliticalJourney,
		c.PoliticalJourneyBn, c.PersonalProfile, c.PersonalProfileBn,
		c.Vision, c.VisionBn, c.FacebookLink, c.ResponsiblePerson,
		c.Email, candidateID,
	)
	if err != nil {
		return fmt.Errorf("failed to update candidate %d: %w", candidateID, err)
	}
	return nil
}
