package pricing

import (
	"context"

	"github.com/vendops/backend/internal/domain/pricing"
)

// HistoryService is the read side of the audit trail. The underlying
// store is append-only; nothing here mutates.
type HistoryService struct {
	historyRepo pricing.PriceOverrideHistoryRepository
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(historyRepo pricing.PriceOverrideHistoryRepository) *HistoryService {
	return &HistoryService{historyRepo: historyRepo}
}

// List returns audit records matching the filter, newest first
func (s *HistoryService) List(ctx context.Context, filter HistoryListFilter) ([]HistoryResponse, int64, error) {
	repoFilter := pricing.DefaultHistoryFilter()
	repoFilter.PriceOverrideID = filter.PriceOverrideID
	repoFilter.SKUID = filter.SKUID
	repoFilter.PerformedByID = filter.UserID
	repoFilter.From = filter.From
	repoFilter.To = filter.To
	if filter.Action != "" {
		action := pricing.HistoryAction(filter.Action)
		repoFilter.Action = &action
	}
	if filter.Page > 0 {
		repoFilter.Page = filter.Page
	}
	if filter.Limit > 0 {
		repoFilter.PageSize = filter.Limit
	}

	entries, total, err := s.historyRepo.FindFiltered(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]HistoryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, ToHistoryResponse(&entries[i]))
	}
	return responses, total, nil
}
