package service

import (
	"context"

	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/location/model"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/location/repository"
)

type ServiceInterface interface {
	GetDivisions(ctx context.Context) ([]model.Division, error)
	GetDistricts(ctx context.Context, divisionID int64) ([]model.District, error)
}

type locationService struct {
	repo repository.RepositoryInterface
}

func NewLocationService(repo repository.RepositoryInterface) ServiceInterface {
	return &locationService{
		repo: repo,
	}
}

func (s *locationService) GetDivisions(ctx context.Context) ([]model.Division, error) {
	return s.repo.ListDivisions(ctx)
}

// GetDistricts returns all districts, or only those of one division when
// divisionID > 0.
func (s *locationService) GetDistricts(ctx context.Context, divisionID int64) ([]model.District, error) {
	return s.repo.ListDistricts(ctx, divisionID)
}
