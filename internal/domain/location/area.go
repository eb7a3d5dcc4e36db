package location

import (
	"context"

	"github.com/google/uuid"

	"github.com/vendops/backend/internal/domain/shared"
)

// Area is a named geographic area owned by the external location
// system. The pricing engine reads it to resolve area references and
// denormalize the area name onto overrides.
type Area struct {
	shared.BaseEntity
	Name     string `gorm:"type:varchar(200);not null"`
	District string `gorm:"type:varchar(100);index"`
	State    string `gorm:"type:varchar(100);index"`
	Active   bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Area) TableName() string {
	return "areas"
}

// AreaRepository defines the read-only interface over the shared area tables
type AreaRepository interface {
	// FindByID finds an area by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Area, error)

	// FindAll finds areas matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Area, error)

	// Count counts areas matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
