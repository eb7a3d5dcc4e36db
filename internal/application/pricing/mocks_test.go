package pricing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/vendops/backend/internal/domain/catalog"
	"github.com/vendops/backend/internal/domain/location"
	"github.com/vendops/backend/internal/domain/pricing"
	"github.com/vendops/backend/internal/domain/shared"
)

// MockOverrideRepository is a mock implementation of PriceOverrideRepository
type MockOverrideRepository struct {
	mock.Mock
}

func (m *MockOverrideRepository) FindByID(ctx context.Context, id uuid.UUID) (*pricing.PriceOverride, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.PriceOverride), args.Error(1)
}

func (m *MockOverrideRepository) FindFiltered(ctx context.Context, filter pricing.OverrideFilter) ([]pricing.PriceOverride, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]pricing.PriceOverride), args.Get(1).(int64), args.Error(2)
}

func (m *MockOverrideRepository) FindBySKU(ctx context.Context, skuID uuid.UUID) ([]pricing.PriceOverride, error) {
	args := m.Called(ctx, skuID)
	return args.Get(0).([]pricing.PriceOverride), args.Error(1)
}

func (m *MockOverrideRepository) FindActiveOverlapping(ctx context.Context, skuID uuid.UUID, field pricing.ScopeField, value string, start, end time.Time, excludeID *uuid.UUID) ([]pricing.PriceOverride, error) {
	args := m.Called(ctx, skuID, field, value, start, end, excludeID)
	return args.Get(0).([]pricing.PriceOverride), args.Error(1)
}

func (m *MockOverrideRepository) FindExpiredActiveBatch(ctx context.Context, now time.Time, batchSize int) ([]pricing.PriceOverride, error) {
	args := m.Called(ctx, now, batchSize)
	return args.Get(0).([]pricing.PriceOverride), args.Error(1)
}

func (m *MockOverrideRepository) CountByStatus(ctx context.Context) (pricing.StatusCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(pricing.StatusCounts), args.Error(1)
}

func (m *MockOverrideRepository) Save(ctx context.Context, override *pricing.PriceOverride) error {
	args := m.Called(ctx, override)
	return args.Error(0)
}

func (m *MockOverrideRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockHistoryRepository is a mock implementation of PriceOverrideHistoryRepository
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Append(ctx context.Context, entry *pricing.PriceOverrideHistory) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockHistoryRepository) FindFiltered(ctx context.Context, filter pricing.HistoryFilter) ([]pricing.PriceOverrideHistory, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]pricing.PriceOverrideHistory), args.Get(1).(int64), args.Error(2)
}

// MockProductRepository is a mock implementation of the catalogue lookup
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCode(ctx context.Context, code string) (*catalog.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockAreaRepository is a mock implementation of the area lookup
type MockAreaRepository struct {
	mock.Mock
}

func (m *MockAreaRepository) FindByID(ctx context.Context, id uuid.UUID) (*location.Area, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Area), args.Error(1)
}

func (m *MockAreaRepository) FindAll(ctx context.Context, filter shared.Filter) ([]location.Area, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]location.Area), args.Error(1)
}

func (m *MockAreaRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockPriceCache is a mock implementation of PriceCache
type MockPriceCache struct {
	mock.Mock
}

func (m *MockPriceCache) Get(ctx context.Context, skuID uuid.UUID, rctx pricing.ResolutionContext) (*EffectivePriceResponse, error) {
	args := m.Called(ctx, skuID, rctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*EffectivePriceResponse), args.Error(1)
}

func (m *MockPriceCache) Set(ctx context.Context, skuID uuid.UUID, rctx pricing.ResolutionContext, result *EffectivePriceResponse, maxTTL time.Duration) error {
	args := m.Called(ctx, skuID, rctx, result, maxTTL)
	return args.Error(0)
}

func (m *MockPriceCache) InvalidateSKU(ctx context.Context, skuID uuid.UUID) error {
	args := m.Called(ctx, skuID)
	return args.Error(0)
}
