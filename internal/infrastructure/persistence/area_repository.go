package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vendops/backend/internal/domain/location"
	"github.com/vendops/backend/internal/domain/shared"
)

// AreaRepository is the read-only GORM adapter over the shared area tables
type AreaRepository struct {
	db *gorm.DB
}

// NewAreaRepository creates a new area repository
func NewAreaRepository(db *gorm.DB) *AreaRepository {
	return &AreaRepository{db: db}
}

// FindByID finds an area by its ID
func (r *AreaRepository) FindByID(ctx context.Context, id uuid.UUID) (*location.Area, error) {
	var area location.Area
	if err := r.db.WithContext(ctx).First(&area, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &area, nil
}

// FindAll finds areas matching the filter
func (r *AreaRepository) FindAll(ctx context.Context, filter shared.Filter) ([]location.Area, error) {
	query := applyAreaFilter(r.db.WithContext(ctx).Model(&location.Area{}), filter)

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	orderBy := ValidateSortField(filter.OrderBy, AreaSortFields, "name")
	orderDir := ValidateSortOrder(filter.OrderDir)

	var areas []location.Area
	err := query.
		Order(orderBy + " " + orderDir).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&areas).Error
	if err != nil {
		return nil, err
	}
	return areas, nil
}

// Count counts areas matching the filter
func (r *AreaRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyAreaFilter(r.db.WithContext(ctx).Model(&location.Area{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func applyAreaFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	if district, ok := filter.Filters["district"]; ok {
		query = query.Where("LOWER(district) = LOWER(?)", district)
	}
	if state, ok := filter.Filters["state"]; ok {
		query = query.Where("LOWER(state) = LOWER(?)", state)
	}
	return query
}

// Ensure AreaRepository implements the interface
var _ location.AreaRepository = (*AreaRepository)(nil)
