package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vendops/backend/internal/domain/pricing"
	"github.com/vendops/backend/internal/domain/shared"
)

// resolutionOrder ranks candidates the way the resolver consumes them:
// narrower scope first, newer record first within the same rank.
const resolutionOrder = "priority DESC, created_at DESC"

// PriceOverrideRepository implements pricing.PriceOverrideRepository using GORM
type PriceOverrideRepository struct {
	db *gorm.DB
}

// NewPriceOverrideRepository creates a new price override repository
func NewPriceOverrideRepository(db *gorm.DB) *PriceOverrideRepository {
	return &PriceOverrideRepository{db: db}
}

// FindByID finds an override by its ID
func (r *PriceOverrideRepository) FindByID(ctx context.Context, id uuid.UUID) (*pricing.PriceOverride, error) {
	var override pricing.PriceOverride
	if err := r.db.WithContext(ctx).First(&override, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &override, nil
}

// FindFiltered finds overrides matching the filter with pagination
func (r *PriceOverrideRepository) FindFiltered(ctx context.Context, filter pricing.OverrideFilter) ([]pricing.PriceOverride, int64, error) {
	query := r.db.WithContext(ctx).Model(&pricing.PriceOverride{})
	query = applyOverrideFilter(query, filter)

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

	order := resolutionOrder
	if field := ValidateSortField(filter.OrderBy, OverrideSortFields, ""); field != "" {
		order = field + " " + ValidateSortOrder(filter.OrderDir)
	}

	var overrides []pricing.PriceOverride
	err := query.
		Order(order).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&overrides).Error
	if err != nil {
		return nil, 0, err
	}

	return overrides, total, nil
}

// FindBySKU finds all non-expired overrides for a SKU
func (r *PriceOverrideRepository) FindBySKU(ctx context.Context, skuID uuid.UUID) ([]pricing.PriceOverride, error) {
	var overrides []pricing.PriceOverride
	err := r.db.WithContext(ctx).
		Where("sku_id = ? AND status <> ?", skuID, pricing.OverrideStatusExpired).
		Order(resolutionOrder).
		Find(&overrides).Error
	if err != nil {
		return nil, err
	}
	return overrides, nil
}

// FindActiveOverlapping finds active overrides for the SKU whose date
// range overlaps [start, end] on the given scope dimension. District and
// state values compare case-insensitively; the caller passes them
// already lowercased.
func (r *PriceOverrideRepository) FindActiveOverlapping(ctx context.Context, skuID uuid.UUID, field pricing.ScopeField, value string, start, end time.Time, excludeID *uuid.UUID) ([]pricing.PriceOverride, error) {
	query := r.db.WithContext(ctx).
		Where("sku_id = ? AND status = ?", skuID, pricing.OverrideStatusActive).
		Where("start_date <= ? AND end_date >= ?", end, start)

	switch field {
	case pricing.ScopeFieldMachine:
		query = query.Where("machine_id = ?", value)
	case pricing.ScopeFieldArea:
		query = query.Where("area_id = ?", value)
	case pricing.ScopeFieldDistrict:
		query = query.Where("LOWER(district) = ?", value)
	case pricing.ScopeFieldState:
		query = query.Where("LOWER(state) = ?", value)
	default:
		return nil, shared.NewDomainError("INVALID_SCOPE", "Unknown scope dimension")
	}

	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var overrides []pricing.PriceOverride
	if err := query.Order(resolutionOrder).Find(&overrides).Error; err != nil {
		return nil, err
	}
	return overrides, nil
}

// FindExpiredActiveBatch finds up to batchSize active overrides whose
// validity window has fully passed
func (r *PriceOverrideRepository) FindExpiredActiveBatch(ctx context.Context, now time.Time, batchSize int) ([]pricing.PriceOverride, error) {
	if batchSize <= 0 {
		batchSize = 100
	}

	var overrides []pricing.PriceOverride
	err := r.db.WithContext(ctx).
		Where("status = ? AND end_date < ?", pricing.OverrideStatusActive, now).
		Order("end_date ASC").
		Limit(batchSize).
		Find(&overrides).Error
	if err != nil {
		return nil, err
	}
	return overrides, nil
}

// CountByStatus returns the per-status totals
func (r *PriceOverrideRepository) CountByStatus(ctx context.Context) (pricing.StatusCounts, error) {
	type statusRow struct {
		Status pricing.OverrideStatus
		Count  int64
	}

	var rows []statusRow
	err := r.db.WithContext(ctx).
		Model(&pricing.PriceOverride{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return pricing.StatusCounts{}, err
	}

	var counts pricing.StatusCounts
	for _, row := range rows {
		switch row.Status {
		case pricing.OverrideStatusActive:
			counts.Active = row.Count
		case pricing.OverrideStatusInactive:
			counts.Inactive = row.Count
		case pricing.OverrideStatusExpired:
			counts.Expired = row.Count
		}
	}
	return counts, nil
}

// Save creates or updates an override
func (r *PriceOverrideRepository) Save(ctx context.Context, override *pricing.PriceOverride) error {
	return r.db.WithContext(ctx).Save(override).Error
}

// Delete hard-removes an override
func (r *PriceOverrideRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&pricing.PriceOverride{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func applyOverrideFilter(query *gorm.DB, filter pricing.OverrideFilter) *gorm.DB {
	if filter.SKUID != nil {
		query = query.Where("sku_id = ?", *filter.SKUID)
	}
	if filter.SKUCode != "" {
		query = query.Where("sku_code = ?", filter.SKUCode)
	}
	if filter.State != "" {
		query = query.Where("LOWER(state) = LOWER(?)", filter.State)
	}
	if filter.District != "" {
		query = query.Where("LOWER(district) = LOWER(?)", filter.District)
	}
	if filter.AreaID != nil {
		query = query.Where("area_id = ?", *filter.AreaID)
	}
	if filter.MachineID != "" {
		query = query.Where("machine_id = ?", filter.MachineID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.StartDateFrom != nil {
		query = query.Where("start_date >= ?", *filter.StartDateFrom)
	}
	if filter.StartDateTo != nil {
		query = query.Where("start_date <= ?", *filter.StartDateTo)
	}
	return query
}

// Ensure PriceOverrideRepository implements the interface
var _ pricing.PriceOverrideRepository = (*PriceOverrideRepository)(nil)
