package location

import (
	"context"

	"github.com/google/uuid"

	"github.com/vendops/backend/internal/domain/location"
	"github.com/vendops/backend/internal/domain/shared"
)

// AreaQueryService exposes read-only area lookups from the external
// location system so operators can pick scope targets.
type AreaQueryService struct {
	areaRepo location.AreaRepository
}

// NewAreaQueryService creates a new AreaQueryService
func NewAreaQueryService(areaRepo location.AreaRepository) *AreaQueryService {
	return &AreaQueryService{areaRepo: areaRepo}
}

// AreaResponse represents an area in API responses
type AreaResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	District string    `json:"district,omitempty"`
	State    string    `json:"state,omitempty"`
	Active   bool      `json:"active"`
}

// AreaListFilter represents filter options for area list
type AreaListFilter struct {
	Search   string `form:"search"`
	State    string `form:"state"`
	District string `form:"district"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// GetByID retrieves an area by ID
func (s *AreaQueryService) GetByID(ctx context.Context, id uuid.UUID) (*AreaResponse, error) {
	area, err := s.areaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := toAreaResponse(area)
	return &response, nil
}

// List retrieves areas with filtering and pagination
func (s *AreaQueryService) List(ctx context.Context, filter AreaListFilter) ([]AreaResponse, int64, error) {
	repoFilter := shared.DefaultFilter()
	repoFilter.Search = filter.Search
	if filter.State != "" {
		repoFilter.Filters["state"] = filter.State
	}
	if filter.District != "" {
		repoFilter.Filters["district"] = filter.District
	}
	if filter.Page > 0 {
		repoFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		repoFilter.PageSize = filter.PageSize
	}

	areas, err := s.areaRepo.FindAll(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.areaRepo.Count(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]AreaResponse, 0, len(areas))
	for i := range areas {
		responses = append(responses, toAreaResponse(&areas[i]))
	}
	return responses, total, nil
}

func toAreaResponse(a *location.Area) AreaResponse {
	return AreaResponse{
		ID:       a.ID,
		Name:     a.Name,
		District: a.District,
		State:    a.State,
		Active:   a.Active,
	}
}
