package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate/model"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate/repository"
	"github.com/Melodious-nub/bnp-digital-backend/internal/infrastructure/storage"
)

type ServiceInterface interface {
	ListAll(ctx context.Context) ([]model.CandidateSummary, error)
	ListByDistrict(ctx context.Context, districtName string) ([]model.CandidateSummary, error)
	GetProfile(ctx context.Context, slug string) (*model.CandidateProfile, error)
	Update(ctx context.Context, slug string, patch *model.ProfilePatch) error
	// UpdateOwn is the candidate self-service path; seat assignment fields
	// are ignored, only the superadmin moves candidates between seats.
	UpdateOwn(ctx context.Context, userID int64, patch *model.ProfilePatch) error
	UpdatePhoto(ctx context.Context, slug string, file *multipart.FileHeader) (string, error)
}

type candidateService struct {
	repo    repository.RepositoryInterface
	storage *storage.MinIOStorage
}

func NewCandidateService(repo repository.RepositoryInterface, storage *storage.MinIOStorage) ServiceInterface {
	return &candidateService{
		repo:    repo,
		storage: storage,
	}
}

func (s *candidateService) ListAll(ctx context.Context) ([]model.CandidateSummary, error) {
	return s.repo.ListAll(ctx)
}

func (s *candidateService) ListByDistrict(ctx context.Context, districtName string) ([]model.CandidateSummary, error) {
	districtName = strings.TrimSpace(districtName)
	if districtName == "" {
		return []model.CandidateSummary{}, nil
	}
	return s.repo.ListByDistrict(ctx, districtName)
}

func (s *candidateService) GetProfile(ctx context.Context, slug string) (*model.CandidateProfile, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return nil, candidate.ErrCandidateNotFound
	}
	return s.repo.GetProfileBySlug(ctx, slug)
}

func (s *candidateService) Update(ctx context.Context, slug string, patch *model.ProfilePatch) error {
	if patch.IsEmpty() {
		return candidate.ErrNoFieldsToUpdate
	}
	return s.repo.UpdateBySlug(ctx, slug, patch)
}

func (s *candidateService) UpdateOwn(ctx context.Context, userID int64, patch *model.ProfilePatch) error {
	patch.Slug = nil
	patch.DivisionID = nil
	patch.DistrictID = nil
	patch.ConstituencyNo = nil
	if patch.IsEmpty() {
		return candidate.ErrNoFieldsToUpdate
	}

	slug, err := s.repo.FindSlugByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return s.repo.UpdateBySlug(ctx, slug, patch)
}

func (s *candidateService) UpdatePhoto(ctx context.Context, slug string, file *multipart.FileHeader) (string, error) {
	// Verify the candidate exists before uploading anything
	if _, err := s.repo.FindIDBySlug(ctx, slug); err != nil {
		return "", err
	}

	f, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}

	key := fmt.Sprintf("candidates/%s/photo_%s%s", slug, uuid.NewString(), filepath.Ext(file.Filename))
	contentType := file.Header.Get("Content-Type")

	url, err := s.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		return "", err
	}

	if err := s.repo.UpdatePhotoURL(ctx, slug, url); err != nil {
		// Keep storage consistent with the database
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			log.Error().Err(delErr).Str("key", key).Msg("Failed to clean up orphaned photo")
		}
		return "", err
	}

	return url, nil
}
