package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendops/backend/internal/domain/catalog"
	"github.com/vendops/backend/internal/domain/shared"
)

// ProductQueryService exposes read-only catalogue lookups so operators
// can pick SKUs when managing overrides. The catalogue is owned by an
// external system; there is no write path here.
type ProductQueryService struct {
	productRepo catalog.ProductRepository
}

// NewProductQueryService creates a new ProductQueryService
func NewProductQueryService(productRepo catalog.ProductRepository) *ProductQueryService {
	return &ProductQueryService{productRepo: productRepo}
}

// ProductResponse represents a catalogue product in API responses
type ProductResponse struct {
	ID        uuid.UUID       `json:"id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"base_price"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// ProductListFilter represents filter options for product list
type ProductListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// GetByID retrieves a product by ID
func (s *ProductQueryService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := toProductResponse(product)
	return &response, nil
}

// List retrieves products with filtering and pagination
func (s *ProductQueryService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, int64, error) {
	repoFilter := shared.DefaultFilter()
	repoFilter.Search = filter.Search
	if filter.Status != "" {
		repoFilter.Filters["status"] = filter.Status
	}
	if filter.Page > 0 {
		repoFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		repoFilter.PageSize = filter.PageSize
	}

	products, err := s.productRepo.FindAll(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.productRepo.Count(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, toProductResponse(&products[i]))
	}
	return responses, total, nil
}

func toProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Code:      p.Code,
		Name:      p.Name,
		BasePrice: p.BasePrice,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
	}
}
