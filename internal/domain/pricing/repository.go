package pricing

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OverrideFilter defines the criteria for listing overrides. OrderBy
// and OrderDir select the sort column and direction; empty means the
// default priority-then-recency ordering.
type OverrideFilter struct {
	SKUID         *uuid.UUID
	SKUCode       string
	State         string
	District      string
	AreaID        *uuid.UUID
	MachineID     string
	Status        *OverrideStatus
	StartDateFrom *time.Time
	StartDateTo   *time.Time
	OrderBy       string
	OrderDir      string
	Page          int
	PageSize      int
}

// DefaultOverrideFilter returns a filter with default pagination
func DefaultOverrideFilter() OverrideFilter {
	return OverrideFilter{Page: 1, PageSize: 20}
}

// StatusCounts is the per-status breakdown reported by the sweeper
type StatusCounts struct {
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
	Expired  int64 `json:"expired"`
}

// PriceOverrideRepository defines the interface for override persistence
type PriceOverrideRepository interface {
	// FindByID finds an override by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*PriceOverride, error)

	// FindFiltered finds overrides matching the filter, paginated,
	// ordered per the filter's OrderBy/OrderDir or by priority desc
	// then creation time desc when unset
	FindFiltered(ctx context.Context, filter OverrideFilter) ([]PriceOverride, int64, error)

	// FindBySKU finds all non-expired overrides for a SKU, ordered by
	// priority desc then creation time desc
	FindBySKU(ctx context.Context, skuID uuid.UUID) ([]PriceOverride, error)

	// FindActiveOverlapping finds active overrides for the SKU whose
	// date range overlaps [start, end] and whose given scope field
	// equals the given value. Matching on district/state is
	// case-insensitive. excludeID skips the record being updated.
	FindActiveOverlapping(ctx context.Context, skuID uuid.UUID, field ScopeField, value string, start, end time.Time, excludeID *uuid.UUID) ([]PriceOverride, error)

	// FindExpiredActiveBatch finds up to batchSize active overrides
	// whose end date is before the given instant. Swept records fall
	// out of the predicate, so callers page by re-invoking until empty.
	FindExpiredActiveBatch(ctx context.Context, now time.Time, batchSize int) ([]PriceOverride, error)

	// CountByStatus returns the per-status totals
	CountByStatus(ctx context.Context) (StatusCounts, error)

	// Save creates or updates an override
	Save(ctx context.Context, override *PriceOverride) error

	// Delete hard-removes an override
	Delete(ctx context.Context, id uuid.UUID) error
}

// HistoryFilter defines the criteria for querying the audit trail
type HistoryFilter struct {
	PriceOverrideID *uuid.UUID
	SKUID           *uuid.UUID
	Action          *HistoryAction
	PerformedByID   *uuid.UUID
	From            *time.Time
	To              *time.Time
	Page            int
	PageSize        int
}

// DefaultHistoryFilter returns a filter with default pagination
func DefaultHistoryFilter() HistoryFilter {
	return HistoryFilter{Page: 1, PageSize: 20}
}

// PriceOverrideHistoryRepository defines the append-only interface for
// audit records. There is deliberately no update or delete operation.
type PriceOverrideHistoryRepository interface {
	// Append persists a new audit record
	Append(ctx context.Context, entry *PriceOverrideHistory) error

	// FindFiltered finds audit records matching the filter, newest first
	FindFiltered(ctx context.Context, filter HistoryFilter) ([]PriceOverrideHistory, int64, error)
}
