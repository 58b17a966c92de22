package services

import (
	"context"

	"transport-backend/internal/models"
	"transport-backend/internal/repositories"
)

type DashboardService struct {
	Repo *repositories.DashboardRepository
}

func NewDashboardService(repo *repositories.DashboardRepository) *DashboardService {
	return &DashboardService{Repo: repo}
}

func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	stats, err := s.Repo.Stats(ctx)
	if err != nil {
		return nil, mapDBError(err)
	}
	return stats, nil
}

func (s *DashboardService) Evolution(ctx context.Context) ([]models.MonthRevenue, error) {
	series, err := s.Repo.Evolution(ctx)
	if err != nil {
		return nil, mapDBError(err)
	}
	return series, nil
}
