package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/account"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/account/model"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate"
	candidatemodel "github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate/model"
	candidateRepo "github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate/repository"
	"github.com/Melodious-nub/bnp-digital-backend/internal/shared"
	"github.com/Melodious-nub/bnp-digital-backend/internal/shared/utils"
	"github.com/Melodious-nub/bnp-digital-backend/pkg/jwt"
)

// RegistrationServiceInterface signs up a candidate for one electoral seat.
type RegistrationServiceInterface interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.LoginResponse, error)
}

type registrationService struct {
	seats      candidateRepo.ImportStore
	jwtManager *jwt.Manager
}

func NewRegistrationService(seats candidateRepo.ImportStore, jwtManager *jwt.Manager) RegistrationServiceInterface {
	return &registrationService{
		seats:      seats,
		jwtManager: jwtManager,
	}
}

// Register creates the account and the profile in one transaction. Division
// and district are matched by name, district scoped to the resolved division;
// the username is derived from the district and constituency number, never
// chosen by the caller.
func (s *registrationService) Register(ctx context.Context, req *model.RegisterRequest) (*model.LoginResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var (
		userID   int64
		username string
	)

	err = s.seats.WithinImport(ctx, func(tx candidateRepo.ImportTx) error {
		division, err := tx.FindDivision(ctx, req.Division)
		if err != nil {
			return err
		}

		district, err := tx.FindDistrict(ctx, division.ID, req.District)
		if err != nil {
			return err
		}

		seat, err := tx.FindSeat(ctx, district.ID, req.ConstituencyNo)
		if err != nil {
			return err
		}
		if seat != nil {
			return candidate.ErrDuplicateSeat
		}

		username = utils.DeriveUsername(district.Name, req.ConstituencyNo)

		_, exists, err := tx.FindUserIDByUsername(ctx, username)
		if err != nil {
			return err
		}
		if exists {
			return account.ErrDuplicateUsername
		}

		userID, err = tx.CreateUser(ctx, username, string(hash))
		if err != nil {
			return err
		}

		return tx.InsertCandidate(ctx, &candidatemodel.Candidate{
			UserID:         userID,
			Slug:           utils.SlugFromUsername(username),
			FullNameEn:     req.FullNameEn,
			FullNameBn:     req.FullNameBn,
			DivisionID:     division.ID,
			DistrictID:     district.ID,
			ConstituencyNo: req.ConstituencyNo,
			Email:          req.Email,
		})
	})
	if err != nil {
		return nil, err
	}

	token, err := s.jwtManager.GenerateToken(userID, username, shared.RoleCandidate)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &model.LoginResponse{
		Token: token,
		User: &model.UserResponse{
			ID:       userID,
			Username: username,
			Role:     shared.RoleCandidate,
		},
	}, nil
}
