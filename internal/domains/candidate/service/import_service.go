package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate/model"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate/repository"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/location"
	"github.com/Melodious-nub/bnp-digital-backend/internal/shared/utils"
)

// ImportServiceInterface runs the bulk spreadsheet import.
type ImportServiceInterface interface {
	// ImportCandidates parses the workbook's first sheet and upserts one
	// account + profile per data row inside a single transaction.
	ImportCandidates(ctx context.Context, file *multipart.FileHeader) (*model.ImportSummary, error)

	// ImportRows is the workbook-independent core of ImportCandidates.
	ImportRows(ctx context.Context, rows []model.ImportRow) (*model.ImportSummary, error)
}

type importService struct {
	store           repository.ImportStore
	defaultPassword string
	maxRows         int
}

func NewImportService(store repository.ImportStore, defaultPassword string, maxRows int) ImportServiceInterface {
	return &importService{
		store:           store,
		defaultPassword: defaultPassword,
		maxRows:         maxRows,
	}
}

func (s *importService) ImportCandidates(ctx context.Context, file *multipart.FileHeader) (*model.ImportSummary, error) {
	log.Info().
		Str("file_name", file.Filename).
		Int64("file_size", file.Size).
		Msg("Starting candidate import")

	rows, err := s.parseWorkbook(file)
	if err != nil {
		return nil, err
	}

	return s.ImportRows(ctx, rows)
}

// parseWorkbook reads the first sheet into header-keyed row maps.
func (s *importService) parseWorkbook(file *multipart.FileHeader) ([]model.ImportRow, error) {
	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	wb, err := excelize.OpenReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse workbook: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, candidate.ErrEmptyWorkbook
	}

	raw, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(raw) < 2 {
		return nil, candidate.ErrEmptyWorkbook
	}

	header := raw[0]
	rows := make([]model.ImportRow, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		row := make(model.ImportRow, len(header))
		for i, name := range header {
			if i < len(cells) {
				row[name] = cells[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (s *importService) ImportRows(ctx context.Context, rows []model.ImportRow) (*model.ImportSummary, error) {
	if len(rows) == 0 {
		return nil, candidate.ErrEmptyWorkbook
	}
	if s.maxRows > 0 && len(rows) > s.maxRows {
		return nil, fmt.Errorf("%w: %d rows, limit %d", candidate.ErrTooManyRows, len(rows), s.maxRows)
	}

	// One hash shared by every account created in this pass.
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(s.defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash default password: %w", err)
	}

	summary := &model.ImportSummary{
		TotalRows:      len(rows),
		SkippedDetails: []model.RowError{},
	}

	err = s.store.WithinImport(ctx, func(tx repository.ImportTx) error {
		for i, row := range rows {
			// Spreadsheet line number: data starts at 2, after the header
			lineNo := i + 2

			if skip, err := s.importRow(ctx, tx, row, string(passwordHash)); err != nil {
				// Fatal: abort and roll back the whole pass
				return fmt.Errorf("row %d: %w", lineNo, err)
			} else if skip != "" {
				summary.Skipped++
				summary.SkippedDetails = append(summary.SkippedDetails, model.RowError{
					Row:   lineNo,
					Error: skip,
				})
				continue
			}

			summary.Success++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("total_rows", summary.TotalRows).
		Int("success", summary.Success).
		Int("skipped", summary.Skipped).
		Msg("Candidate import finished")

	return summary, nil
}

// importRow processes one row. A non-empty skip reason means the row was
// rejected by validation or lookup; an error means the batch must abort.
func (s *importService) importRow(ctx context.Context, tx repository.ImportTx, row model.ImportRow, passwordHash string) (skip string, err error) {
	// 1. Mandatory fields
	divisionName := row.Get(model.FieldDivision)
	districtName := row.Get(model.FieldDistrict)
	constituencyRaw := row.Get(model.FieldConstituencyNo)
	if divisionName == "" || districtName == "" || constituencyRaw == "" {
		return "missing mandatory fields (Division, District, Constituency_No)", nil
	}

	// 2. Constituency number must be numeric
	constituencyNo, convErr := strconv.Atoi(constituencyRaw)
	if convErr != nil {
		return fmt.Sprintf("Constituency_No %q must be a number", constituencyRaw), nil
	}

	// 3. Reference resolution, district scoped by division
	division, lookupErr := tx.FindDivision(ctx, divisionName)
	if errors.Is(lookupErr, location.ErrDivisionNotFound) {
		return fmt.Sprintf("division %q not found", divisionName), nil
	}
	if lookupErr != nil {
		return "", lookupErr
	}

	district, lookupErr := tx.FindDistrict(ctx, division.ID, districtName)
	if errors.Is(lookupErr, location.ErrDistrictNotFound) {
		return fmt.Sprintf("district %q not found in division %q", districtName, divisionName), nil
	}
	if lookupErr != nil {
		return "", lookupErr
	}

	// 4. Identity derivation from the canonical district name
	username := utils.DeriveUsername(district.Name, constituencyNo)
	slug := utils.SlugFromUsername(username)

	profile := &model.Candidate{
		Slug:               slug,
		FullNameEn:         row.Get(model.FieldFullNameEn),
		FullNameBn:         row.Get(model.FieldFullNameBn),
		DivisionID:         division.ID,
		DistrictID:         district.ID,
		ConstituencyNo:     constituencyNo,
		BriefIntro:         row.Get(model.FieldBriefIntro),
		IntroBn:            row.Get(model.FieldIntroBn),
		PoliticalJourney:   row.Get(model.FieldPoliticalJourney),
		PoliticalJourneyBn: row.Get(model.FieldPoliticalJourneyBn),
		PersonalProfile:    row.Get(model.FieldPersonalProfile),
		PersonalProfileBn:  row.Get(model.FieldPersonalProfileBn),
		Vision:             row.Get(model.FieldVision),
		VisionBn:           row.Get(model.FieldVisionBn),
		FacebookLink:       row.Get(model.FieldFacebookLink),
		ResponsiblePerson:  row.Get(model.FieldResponsiblePerson),
		Email:              row.Get(model.FieldEmail),
	}

	// 5. Seat reconciliation
	seat, err := tx.FindSeat(ctx, district.ID, constituencyNo)
	if err != nil {
		return "", err
	}

	if seat == nil {
		// New seat. The username may still exist if earlier data was
		// inconsistent; reuse that account instead of failing.
		userID, found, err := tx.FindUserIDByUsername(ctx, username)
		if err != nil {
			return "", err
		}
		if !found {
			userID, err = tx.CreateUser(ctx, username, passwordHash)
			if err != nil {
				return "", err
			}
		}

		profile.UserID = userID
		if err := tx.InsertCandidate(ctx, profile); err != nil {
			return "", err
		}
		return "", nil
	}

	// Existing seat: update the profile in place and keep the owning
	// account's username in sync with the freshly derived identity.
	profile.UserID = seat.UserID
	if err := tx.UpdateCandidate(ctx, seat.CandidateID, profile); err != nil {
		return "", err
	}
	if err := tx.UpdateUsername(ctx, seat.UserID, username); err != nil {
		return "", err
	}
	return "", nil
}
