package pricing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendops/backend/internal/domain/shared"
)

// OverrideStatus represents the lifecycle state of a price override
type OverrideStatus string

const (
	OverrideStatusActive   OverrideStatus = "active"
	OverrideStatusInactive OverrideStatus = "inactive"
	OverrideStatusExpired  OverrideStatus = "expired"
)

const maxReasonLength = 500

// PriceOverride is a temporary replacement price for one SKU at one
// location scope. It is the aggregate root for override operations.
type PriceOverride struct {
	shared.BaseAggregateRoot
	SKUID             uuid.UUID       `gorm:"column:sku_id;type:uuid;not null;index:idx_override_sku"`
	SKUCode           string          `gorm:"type:varchar(50);not null;index"`
	ProductName       string          `gorm:"type:varchar(200);not null"`
	OriginalBasePrice decimal.Decimal `gorm:"type:decimal(18,4);not null"` // base price snapshotted at creation, not live-linked
	Scope             LocationScope   `gorm:"embedded"`
	OverridePrice     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	StartDate         time.Time       `gorm:"not null;index"`
	EndDate           time.Time       `gorm:"not null;index"`
	Reason            string          `gorm:"type:varchar(500);not null"`
	Status            OverrideStatus  `gorm:"type:varchar(20);not null;default:'active';index"`
	Priority          int             `gorm:"not null"`
	CreatedBy         uuid.UUID       `gorm:"type:uuid;not null"`
	UpdatedBy         *uuid.UUID      `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (PriceOverride) TableName() string {
	return "price_overrides"
}

// NewPriceOverride creates a new override with status active and a
// priority derived from the scope. SKU fields are denormalized from the
// catalogue lookup done by the caller.
func NewPriceOverride(
	skuID uuid.UUID,
	skuCode, productName string,
	basePrice decimal.Decimal,
	scope LocationScope,
	overridePrice decimal.Decimal,
	startDate, endDate time.Time,
	reason string,
	createdBy uuid.UUID,
) (*PriceOverride, error) {
	if skuID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SKU", "SKU id is required")
	}
	if err := validateScope(scope); err != nil {
		return nil, err
	}
	if err := validateOverridePrice(overridePrice); err != nil {
		return nil, err
	}
	if err := validateDateRange(startDate, endDate); err != nil {
		return nil, err
	}
	if err := validateReason(reason); err != nil {
		return nil, err
	}

	override := &PriceOverride{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SKUID:             skuID,
		SKUCode:           skuCode,
		ProductName:       productName,
		OriginalBasePrice: basePrice,
		Scope:             scope,
		OverridePrice:     overridePrice,
		StartDate:         startDate,
		EndDate:           endDate,
		Reason:            strings.TrimSpace(reason),
		Status:            OverrideStatusActive,
		Priority:          scope.Priority(),
		CreatedBy:         createdBy,
	}

	override.AddDomainEvent(NewOverrideCreatedEvent(override))

	return override, nil
}

// UpdateTerms replaces the override's price, validity window and reason
func (o *PriceOverride) UpdateTerms(price decimal.Decimal, startDate, endDate time.Time, reason string, updatedBy uuid.UUID) error {
	if err := validateOverridePrice(price); err != nil {
		return err
	}
	if err := validateDateRange(startDate, endDate); err != nil {
		return err
	}
	if err := validateReason(reason); err != nil {
		return err
	}

	o.OverridePrice = price
	o.StartDate = startDate
	o.EndDate = endDate
	o.Reason = strings.TrimSpace(reason)
	o.touch(updatedBy)

	o.AddDomainEvent(NewOverrideUpdatedEvent(o))

	return nil
}

// UpdateScope replaces the location scope and recomputes the priority.
// Priority is a derived value: it always reflects the current field
// set, never a previously stored rank.
func (o *PriceOverride) UpdateScope(scope LocationScope, updatedBy uuid.UUID) error {
	if err := validateScope(scope); err != nil {
		return err
	}

	o.Scope = scope
	o.Priority = scope.Priority()
	o.touch(updatedBy)

	o.AddDomainEvent(NewOverrideUpdatedEvent(o))

	return nil
}

// Activate re-enables an inactive override. Expired overrides are
// terminal and cannot be reactivated.
func (o *PriceOverride) Activate(updatedBy uuid.UUID) error {
	if o.Status == OverrideStatusExpired {
		return shared.NewDomainError("OVERRIDE_EXPIRED", "Expired override cannot be reactivated")
	}
	if o.Status == OverrideStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Override is already active")
	}

	o.Status = OverrideStatusActive
	o.touch(updatedBy)

	o.AddDomainEvent(NewOverrideStatusChangedEvent(o, OverrideStatusInactive, OverrideStatusActive))

	return nil
}

// Deactivate suspends an active override without removing it
func (o *PriceOverride) Deactivate(updatedBy uuid.UUID) error {
	if o.Status == OverrideStatusExpired {
		return shared.NewDomainError("OVERRIDE_EXPIRED", "Expired override cannot be deactivated")
	}
	if o.Status == OverrideStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Override is already inactive")
	}

	o.Status = OverrideStatusInactive
	o.touch(updatedBy)

	o.AddDomainEvent(NewOverrideStatusChangedEvent(o, OverrideStatusActive, OverrideStatusInactive))

	return nil
}

// Expire transitions an active override whose window has passed into
// the terminal expired state. Calling it on an already expired record
// returns ErrInvalidState so the sweeper can skip it.
func (o *PriceOverride) Expire(now time.Time) error {
	if o.Status == OverrideStatusExpired {
		return shared.ErrInvalidState
	}
	if !o.EndDate.Before(now) {
		return shared.NewDomainError("NOT_YET_ENDED", "Override validity window has not ended")
	}

	oldStatus := o.Status
	o.Status = OverrideStatusExpired
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	o.AddDomainEvent(NewOverrideStatusChangedEvent(o, oldStatus, OverrideStatusExpired))

	return nil
}

// MarkDeleted records the deletion event before the record is removed
// from the store
func (o *PriceOverride) MarkDeleted() {
	o.AddDomainEvent(NewOverrideDeletedEvent(o))
}

// IsEligibleAt reports whether the override applies at the given
// instant: active and inside its validity window.
func (o *PriceOverride) IsEligibleAt(t time.Time) bool {
	return o.Status == OverrideStatusActive &&
		!t.Before(o.StartDate) && !t.After(o.EndDate)
}

// IsActive returns true if the override is active
func (o *PriceOverride) IsActive() bool {
	return o.Status == OverrideStatusActive
}

func (o *PriceOverride) touch(updatedBy uuid.UUID) {
	if updatedBy != uuid.Nil {
		o.UpdatedBy = &updatedBy
	}
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

func validateScope(scope LocationScope) error {
	if scope.IsEmpty() {
		return shared.NewDomainError("INVALID_SCOPE", "At least one location field is required")
	}
	return nil
}

func validateOverridePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Override price cannot be negative")
	}
	return nil
}

func validateDateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return shared.NewDomainError("INVALID_DATES", "Start and end dates are required")
	}
	if !end.After(start) {
		return shared.NewDomainError("INVALID_DATES", "End date must be after start date")
	}
	return nil
}

func validateReason(reason string) error {
	trimmed := strings.TrimSpace(reason)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_REASON", "Reason is required")
	}
	if len(trimmed) > maxReasonLength {
		return shared.NewDomainError("INVALID_REASON", "Reason cannot exceed 500 characters")
	}
	return nil
}
