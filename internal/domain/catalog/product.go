package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/vendops/backend/internal/domain/shared"
)

// ProductStatus represents the status of a catalogue product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// Product is a catalogue SKU as seen by the pricing engine. The
// catalogue is owned by an external system; this model is read-only
// here and exposes only the fields pricing needs.
type Product struct {
	shared.BaseEntity
	Code      string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name      string          `gorm:"type:varchar(200);not null"`
	BasePrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Status    ProductStatus   `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// IsActive returns true if the product is active
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}
