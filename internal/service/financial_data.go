package service

import (
	"context"

	"github.com/guttosm/finpulse/internal/domain/models"
	"github.com/guttosm/finpulse/internal/storage"
)

// FinancialDataService defines business logic for the paginated
// financial-data query.
type FinancialDataService interface {
	ListFinancialData(ctx context.Context, filter models.RecordFilter, page, limit int) ([]models.FinancialRecord, models.PageInfo, error)
}

type financialDataService struct {
	repo storage.FinancialRepository
}

func NewFinancialDataService(repo storage.FinancialRepository) FinancialDataService {
	return &financialDataService{repo: repo}
}

// ListFinancialData counts the rows matching the filter, derives the
// pagination metadata, and fetches the requested page slice.
//
// The count is taken before pagination, so PageInfo.Count is the full
// filter total regardless of page/limit. A page past the last one
// returns an empty slice with the metadata still consistent.
func (s *financialDataService) ListFinancialData(ctx context.Context, filter models.RecordFilter, page, limit int) ([]models.FinancialRecord, models.PageInfo, error) {
	count, err := s.repo.CountRecords(ctx, filter)
	if err != nil {
		return nil, models.PageInfo{}, err
	}

	info := models.PageInfo{
		Count: count,
		Page:  page,
		Limit: limit,
		Pages: (count + limit - 1) / limit,
	}

	offset := (page - 1) * limit
	records, err := s.repo.ListRecords(ctx, filter, limit, offset)
	if err != nil {
		return nil, models.PageInfo{}, err
	}

	return records, info, nil
}
