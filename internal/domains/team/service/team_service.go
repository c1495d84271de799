package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"

	candidateRepo "github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate/repository"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/team/model"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/team/repository"
	"github.com/Melodious-nub/bnp-digital-backend/internal/infrastructure/storage"
	"github.com/Melodious-nub/bnp-digital-backend/internal/shared"
)

type ServiceInterface interface {
	GetGlobalTeam(ctx context.Context) ([]model.TeamMember, error)
	GetTeamBySlug(ctx context.Context, slug string) ([]model.TeamMember, error)
	// GetOwnTeam resolves the roster the caller manages: global for the
	// superadmin, their own for a candidate.
	GetOwnTeam(ctx context.Context, userID int64, role string) ([]model.TeamMember, error)
	AddMember(ctx context.Context, userID int64, role string, req *model.MemberRequest, photo *multipart.FileHeader) (int64, error)
	UpdateMember(ctx context.Context, userID int64, role string, memberID int64, req *model.MemberRequest, photo *multipart.FileHeader) error
	DeleteMember(ctx context.Context, userID int64, role string, memberID int64) error
}

type teamService struct {
	repo          repository.RepositoryInterface
	candidateRepo candidateRepo.RepositoryInterface
	storage       *storage.MinIOStorage
}

func NewTeamService(
	repo repository.RepositoryInterface,
	candidateRepo candidateRepo.RepositoryInterface,
	storage *storage.MinIOStorage,
) ServiceInterface {
	return &teamService{
		repo:          repo,
		candidateRepo: candidateRepo,
		storage:       storage,
	}
}

func (s *teamService) GetGlobalTeam(ctx context.Context) ([]model.TeamMember, error) {
	return s.repo.List(ctx, nil)
}

func (s *teamService) GetTeamBySlug(ctx context.Context, slug string) ([]model.TeamMember, error) {
	candidateID, err := s.candidateRepo.FindIDBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, &candidateID)
}

// ownerScope maps the caller to the roster they may manage.
func (s *teamService) ownerScope(ctx context.Context, userID int64, role string) (*int64, error) {
	if role == shared.RoleSuperAdmin {
		return nil, nil
	}
	candidateID, err := s.candidateRepo.FindIDByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &candidateID, nil
}

func (s *teamService) GetOwnTeam(ctx context.Context, userID int64, role string) ([]model.TeamMember, error) {
	scope, err := s.ownerScope(ctx, userID, role)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, scope)
}

func (s *teamService) AddMember(ctx context.Context, userID int64, role string, req *model.MemberRequest, photo *multipart.FileHeader) (int64, error) {
	scope, err := s.ownerScope(ctx, userID, role)
	if err != nil {
		return 0, err
	}

	photoURL, err := s.uploadPhoto(ctx, photo)
	if err != nil {
		return 0, err
	}

	return s.repo.Insert(ctx, &model.TeamMember{
		CandidateID:  scope,
		Name:         req.Name,
		Role:         req.Role,
		PhotoURL:     photoURL,
		FacebookLink: req.FacebookLink,
		LinkedinLink: req.LinkedinLink,
	})
}

func (s *teamService) UpdateMember(ctx context.Context, userID int64, role string, memberID int64, req *model.MemberRequest, photo *multipart.FileHeader) error {
	scope, err := s.ownerScope(ctx, userID, role)
	if err != nil {
		return err
	}

	photoURL, err := s.uploadPhoto(ctx, photo)
	if err != nil {
		return err
	}

	return s.repo.Update(ctx, memberID, scope, &model.TeamMember{
		Name:         req.Name,
		Role:         req.Role,
		PhotoURL:     photoURL,
		FacebookLink: req.FacebookLink,
		LinkedinLink: req.LinkedinLink,
	})
}

func (s *teamService) DeleteMember(ctx context.Context, userID int64, role string, memberID int64) error {
	scope, err := s.ownerScope(ctx, userID, role)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, memberID, scope)
}

func (s *teamService) uploadPhoto(ctx context.Context, photo *multipart.FileHeader) (string, error) {
	if photo == nil {
		return "", nil
	}

	f, err := photo.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open photo upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("failed to read photo upload: %w", err)
	}

	key := fmt.Sprintf("team/%s%s", uuid.NewString(), filepath.Ext(photo.Filename))
	return s.storage.Upload(ctx, key, data, photo.Header.Get("Content-Type"))
}
