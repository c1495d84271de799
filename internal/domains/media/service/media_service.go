package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	candidateRepo "github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate/repository"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/media"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/media/model"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/media/repository"
	"github.com/Melodious-nub/bnp-digital-backend/internal/infrastructure/storage"
)

type ServiceInterface interface {
	// UploadOwn adds gallery files for the candidate behind userID.
	UploadOwn(ctx context.Context, userID int64, fileType string, files []*multipart.FileHeader) error
	// UploadForSlug is the superadmin path, addressing any candidate.
	UploadForSlug(ctx context.Context, slug, fileType string, files []*multipart.FileHeader) error
	DeleteOwn(ctx context.Context, userID, itemID int64) error
}

type mediaService struct {
	repo          repository.RepositoryInterface
	candidateRepo candidateRepo.RepositoryInterface
	storage       *storage.MinIOStorage
}

func NewMediaService(
	repo repository.RepositoryInterface,
	candidateRepo candidateRepo.RepositoryInterface,
	storage *storage.MinIOStorage,
) ServiceInterface {
	return &mediaService{
		repo:          repo,
		candidateRepo: candidateRepo,
		storage:       storage,
	}
}

func (s *mediaService) UploadOwn(ctx context.Context, userID int64, fileType string, files []*multipart.FileHeader) error {
	candidateID, err := s.candidateRepo.FindIDByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return s.upload(ctx, candidateID, fileType, files)
}

func (s *mediaService) UploadForSlug(ctx context.Context, slug, fileType string, files []*multipart.FileHeader) error {
	candidateID, err := s.candidateRepo.FindIDBySlug(ctx, slug)
	if err != nil {
		return err
	}
	return s.upload(ctx, candidateID, fileType, files)
}

func (s *mediaService) upload(ctx context.Context, candidateID int64, fileType string, files []*multipart.FileHeader) error {
	if len(files) == 0 {
		return media.ErrNoFiles
	}
	if fileType != model.FileTypeImage && fileType != model.FileTypeVideo {
		return media.ErrInvalidFileType
	}

	items := make([]model.MediaItem, 0, len(files))
	var uploadedKeys []string

	for _, file := range files {
		f, err := file.Open()
		if err != nil {
			s.cleanup(ctx, uploadedKeys)
			return fmt.Errorf("failed to open upload: %w", err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			s.cleanup(ctx, uploadedKeys)
			return fmt.Errorf("failed to read upload: %w", err)
		}

		key := fmt.Sprintf("gallery/%d/%s%s", candidateID, uuid.NewString(), filepath.Ext(file.Filename))
		fileURL, err := s.storage.Upload(ctx, key, data, file.Header.Get("Content-Type"))
		if err != nil {
			s.cleanup(ctx, uploadedKeys)
			return err
		}
		uploadedKeys = append(uploadedKeys, key)

		items = append(items, model.MediaItem{
			CandidateID: candidateID,
			FileURL:     fileURL,
			FileType:    fileType,
		})
	}

	if err := s.repo.InsertBatch(ctx, items); err != nil {
		s.cleanup(ctx, uploadedKeys)
		return err
	}
	return nil
}

func (s *mediaService) DeleteOwn(ctx context.Context, userID, itemID int64) error {
	candidateID, err := s.candidateRepo.FindIDByUserID(ctx, userID)
	if err != nil {
		return err
	}

	fileURL, err := s.repo.Delete(ctx, itemID, candidateID)
	if err != nil {
		return err
	}

	if key := objectKeyFromURL(fileURL); key != "" {
		if err := s.storage.Delete(ctx, key); err != nil {
			log.Error().Err(err).Str("key", key).Msg("Failed to delete gallery object")
		}
	}
	return nil
}

func (s *mediaService) cleanup(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.storage.Delete(ctx, key); err != nil {
			log.Error().Err(err).Str("key", key).Msg("Failed to clean up gallery upload")
		}
	}
}

// objectKeyFromURL strips the endpoint and bucket from a stored URL,
// leaving the object key.
func objectKeyFromURL(fileURL string) string {
	u, err := url.Parse(fileURL)
	if err != nil {
		return ""
	}
	parts := strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 2)
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}
