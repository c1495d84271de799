package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/account"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/account/model"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/account/repository"
	"github.com/Melodious-nub/bnp-digital-backend/pkg/jwt"
	"github.com/Melodious-nub/bnp-digital-backend/pkg/logger"
)

type ServiceInterface interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	ChangePassword(ctx context.Context, userID int64, req *model.ChangePasswordRequest) error
	GetProfile(ctx context.Context, userID int64) (*model.UserResponse, error)
	// SeedSuperAdmin creates the management account on startup. A blank
	// password skips seeding.
	SeedSuperAdmin(ctx context.Context, username, password string) error
}

type authService struct {
	repo       repository.RepositoryInterface
	jwtManager *jwt.Manager
}

func NewAuthService(repo repository.RepositoryInterface, jwtManager *jwt.Manager) ServiceInterface {
	return &authService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, account.ErrUserNotFound) {
			// Same error for unknown user and bad password
			return nil, account.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, account.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &model.LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID int64, req *model.ChangePasswordRequest) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return account.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.repo.UpdatePassword(ctx, userID, string(hash))
}

func (s *authService) GetProfile(ctx context.Context, userID int64) (*model.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

func (s *authService) SeedSuperAdmin(ctx context.Context, username, password string) error {
	if password == "" {
		logger.Info("Superadmin seeding skipped, SEED_ADMIN_PASSWORD not set", nil)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash superadmin password: %w", err)
	}

	return s.repo.EnsureSuperAdmin(ctx, username, string(hash))
}
