package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/vendops/backend/internal/domain/shared"
)

// ProductRepository defines the read-only interface over the shared
// catalogue tables. The pricing engine never writes products.
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByCode finds a product by its SKU code
	FindByCode(ctx context.Context, code string) (*Product, error)

	// FindAll finds products matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
