package service

import (
	"context"

	"github.com/guttosm/finpulse/internal/domain/models"
	"github.com/guttosm/finpulse/internal/storage"
)

// StatisticsService defines business logic for computing average daily
// open price, close price, and volume over a symbol + date range.
type StatisticsService interface {
	GetStatistics(ctx context.Context, filter models.RecordFilter) (*models.Statistics, error)
}

type statisticsService struct {
	repo storage.FinancialRepository
}

func NewStatisticsService(repo storage.FinancialRepository) StatisticsService {
	return &statisticsService{repo: repo}
}

func (s *statisticsService) GetStatistics(ctx context.Context, filter models.RecordFilter) (*models.Statistics, error) {
	return s.repo.GetStatistics(ctx, filter)
}
