package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/vendops/backend/internal/domain/pricing"
)

// PriceOverrideHistoryRepository implements the append-only audit store.
// There is deliberately no update or delete path.
type PriceOverrideHistoryRepository struct {
	db *gorm.DB
}

// NewPriceOverrideHistoryRepository creates a new history repository
func NewPriceOverrideHistoryRepository(db *gorm.DB) *PriceOverrideHistoryRepository {
	return &PriceOverrideHistoryRepository{db: db}
}

// Append persists a new audit record
func (r *PriceOverrideHistoryRepository) Append(ctx context.Context, entry *pricing.PriceOverrideHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// FindFiltered finds audit records matching the filter, newest first
func (r *PriceOverrideHistoryRepository) FindFiltered(ctx context.Context, filter pricing.HistoryFilter) ([]pricing.PriceOverrideHistory, int64, error) {
	query := r.db.WithContext(ctx).Model(&pricing.PriceOverrideHistory{})

	if filter.PriceOverrideID != nil {
		query = query.Where("price_override_id = ?", *filter.PriceOverrideID)
	}
	if filter.SKUID != nil {
		query = query.Where("sku_id = ?", *filter.SKUID)
	}
	if filter.Action != nil {
		query = query.Where("action = ?", *filter.Action)
	}
	if filter.PerformedByID != nil {
		query = query.Where("performed_by_id = ?", *filter.PerformedByID)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	var entries []pricing.PriceOverrideHistory
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// Ensure PriceOverrideHistoryRepository implements the interface
var _ pricing.PriceOverrideHistoryRepository = (*PriceOverrideHistoryRepository)(nil)
