package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vendops/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypePriceOverride = "PriceOverride"

// Event type constants
const (
	EventTypeOverrideCreated       = "PriceOverrideCreated"
	EventTypeOverrideUpdated       = "PriceOverrideUpdated"
	EventTypeOverrideStatusChanged = "PriceOverrideStatusChanged"
	EventTypeOverrideDeleted       = "PriceOverrideDeleted"
)

// OverrideCreatedEvent is published when a new override is created
type OverrideCreatedEvent struct {
	shared.BaseDomainEvent
	OverrideID    uuid.UUID       `json:"override_id"`
	SKUID         uuid.UUID       `json:"sku_id"`
	SKUCode       string          `json:"sku_code"`
	OverridePrice decimal.Decimal `json:"override_price"`
	Priority      int             `json:"priority"`
}

// NewOverrideCreatedEvent creates a new OverrideCreatedEvent
func NewOverrideCreatedEvent(override *PriceOverride) *OverrideCreatedEvent {
	return &OverrideCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOverrideCreated, AggregateTypePriceOverride, override.ID),
		OverrideID:      override.ID,
		SKUID:           override.SKUID,
		SKUCode:         override.SKUCode,
		OverridePrice:   override.OverridePrice,
		Priority:        override.Priority,
	}
}

// OverrideUpdatedEvent is published when an override's terms or scope change
type OverrideUpdatedEvent struct {
	shared.BaseDomainEvent
	OverrideID    uuid.UUID       `json:"override_id"`
	SKUID         uuid.UUID       `json:"sku_id"`
	OverridePrice decimal.Decimal `json:"override_price"`
	Priority      int             `json:"priority"`
}

// NewOverrideUpdatedEvent creates a new OverrideUpdatedEvent
func NewOverrideUpdatedEvent(override *PriceOverride) *OverrideUpdatedEvent {
	return &OverrideUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOverrideUpdated, AggregateTypePriceOverride, override.ID),
		OverrideID:      override.ID,
		SKUID:           override.SKUID,
		OverridePrice:   override.OverridePrice,
		Priority:        override.Priority,
	}
}

// OverrideStatusChangedEvent is published when an override's status changes
type OverrideStatusChangedEvent struct {
	shared.BaseDomainEvent
	OverrideID uuid.UUID      `json:"override_id"`
	SKUID      uuid.UUID      `json:"sku_id"`
	OldStatus  OverrideStatus `json:"old_status"`
	NewStatus  OverrideStatus `json:"new_status"`
}

// NewOverrideStatusChangedEvent creates a new OverrideStatusChangedEvent
func NewOverrideStatusChangedEvent(override *PriceOverride, oldStatus, newStatus OverrideStatus) *OverrideStatusChangedEvent {
	return &OverrideStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOverrideStatusChanged, AggregateTypePriceOverride, override.ID),
		OverrideID:      override.ID,
		SKUID:           override.SKUID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
	}
}

// OverrideDeletedEvent is published when an override is hard-removed
type OverrideDeletedEvent struct {
	shared.BaseDomainEvent
	OverrideID uuid.UUID `json:"override_id"`
	SKUID      uuid.UUID `json:"sku_id"`
}

// NewOverrideDeletedEvent creates a new OverrideDeletedEvent
func NewOverrideDeletedEvent(override *PriceOverride) *OverrideDeletedEvent {
	return &OverrideDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOverrideDeleted, AggregateTypePriceOverride, override.ID),
		OverrideID:      override.ID,
		SKUID:           override.SKUID,
	}
}
