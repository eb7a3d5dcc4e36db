package pricing

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vendops/backend/internal/domain/catalog"
	"github.com/vendops/backend/internal/domain/pricing"
	"github.com/vendops/backend/internal/infrastructure/telemetry"
)

// PriceCache is a read-through cache for resolved effective prices,
// invalidated per SKU on every override mutation and sweep. Get returns
// nil on a miss. maxTTL bounds the entry lifetime below the cache's
// configured TTL; zero or negative means no extra bound.
type PriceCache interface {
	Get(ctx context.Context, skuID uuid.UUID, rctx pricing.ResolutionContext) (*EffectivePriceResponse, error)
	Set(ctx context.Context, skuID uuid.UUID, rctx pricing.ResolutionContext, result *EffectivePriceResponse, maxTTL time.Duration) error
	InvalidateSKU(ctx context.Context, skuID uuid.UUID) error
}

// ResolutionService answers effective-price queries: which single price
// applies for a SKU given an optional location context.
type ResolutionService struct {
	overrideRepo pricing.PriceOverrideRepository
	productRepo  catalog.ProductRepository
	cache        PriceCache
	logger       *zap.Logger
}

// NewResolutionService creates a new ResolutionService. cache may be nil.
func NewResolutionService(
	overrideRepo pricing.PriceOverrideRepository,
	productRepo catalog.ProductRepository,
	cache PriceCache,
	logger *zap.Logger,
) *ResolutionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResolutionService{
		overrideRepo: overrideRepo,
		productRepo:  productRepo,
		cache:        cache,
		logger:       logger,
	}
}

// Resolve returns the effective price for a SKU under the given
// context. Eligibility (active status, validity window) is evaluated at
// call time; matching is a strict priority cascade that stops at the
// first hit, with a context-ignoring fallback when no step matches.
func (s *ResolutionService) Resolve(ctx context.Context, skuID uuid.UUID, query EffectivePriceQuery) (*EffectivePriceResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "price_resolution", "resolve",
		telemetry.WithAttribute("sku_id", skuID.String()))
	defer span.End()

	rctx := pricing.ResolutionContext{
		MachineID: query.MachineID,
		AreaID:    query.AreaID,
		District:  query.District,
		State:     query.State,
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, skuID, rctx)
		if err != nil {
			s.logger.Warn("price cache read failed", zap.String("sku_id", skuID.String()), zap.Error(err))
		} else if cached != nil {
			telemetry.AddEvent(span, "cache_hit")
			return cached, nil
		}
	}

	product, err := s.productRepo.FindByID(ctx, skuID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	now := time.Now()
	overrides, err := s.overrideRepo.FindBySKU(ctx, skuID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	// Eligibility is evaluated here rather than in the query so the
	// full set is available to bound the cache entry lifetime below.
	eligible := make([]pricing.PriceOverride, 0, len(overrides))
	for i := range overrides {
		if overrides[i].IsEligibleAt(now) {
			eligible = append(eligible, overrides[i])
		}
	}

	match := s.matchCascade(eligible, rctx)

	result := &EffectivePriceResponse{
		SKUID:          product.ID,
		SKUCode:        product.Code,
		ProductName:    product.Name,
		BasePrice:      product.BasePrice,
		EffectivePrice: product.BasePrice,
		IsOverridden:   false,
	}
	if match != nil {
		result.EffectivePrice = match.OverridePrice
		result.IsOverridden = true
		details := ToOverrideResponse(match)
		result.Override = &details
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, skuID, rctx, result, nextWindowBoundary(overrides, now)); err != nil {
			s.logger.Warn("price cache write failed", zap.String("sku_id", skuID.String()), zap.Error(err))
		}
	}

	telemetry.SetAttributes(span, "is_overridden", result.IsOverridden)
	return result, nil
}

// nextWindowBoundary returns how long the resolved price stays correct
// by time passage alone: the nearest instant an active override's
// window opens or closes. Windows are the only thing that changes an
// answer without a mutation, and every mutation invalidates the SKU.
// Zero means no boundary ahead and the cache applies its full TTL.
func nextWindowBoundary(overrides []pricing.PriceOverride, now time.Time) time.Duration {
	var next time.Time
	for i := range overrides {
		o := &overrides[i]
		if o.Status != pricing.OverrideStatusActive {
			continue
		}
		if o.StartDate.After(now) && (next.IsZero() || o.StartDate.Before(next)) {
			next = o.StartDate
		}
		if o.EndDate.After(now) && (next.IsZero() || o.EndDate.Before(next)) {
			next = o.EndDate
		}
	}
	if next.IsZero() {
		return 0
	}
	return next.Sub(now)
}

// matchCascade walks the eligible overrides, already ordered by
// priority desc then creation time desc, through the context steps:
// machine, area, district, state. Level-4 location sub-fields are
// reserved space and not matched by the cascade. When no step hits, the
// fallback returns the most specific eligible override regardless of
// the caller's context, so under-specified callers still get a price.
func (s *ResolutionService) matchCascade(eligible []pricing.PriceOverride, rctx pricing.ResolutionContext) *pricing.PriceOverride {
	if len(eligible) == 0 {
		return nil
	}

	if rctx.MachineID != "" {
		for i := range eligible {
			if eligible[i].Scope.MachineID == rctx.MachineID {
				return &eligible[i]
			}
		}
	}

	if rctx.AreaID != nil {
		for i := range eligible {
			scope := eligible[i].Scope
			if scope.AreaID != nil && *scope.AreaID == *rctx.AreaID && scope.MachineID == "" {
				return &eligible[i]
			}
		}
	}

	if rctx.District != "" {
		for i := range eligible {
			scope := eligible[i].Scope
			if strings.EqualFold(scope.District, rctx.District) && scope.AreaID == nil && scope.MachineID == "" {
				return &eligible[i]
			}
		}
	}

	if rctx.State != "" {
		for i := range eligible {
			scope := eligible[i].Scope
			if strings.EqualFold(scope.State, rctx.State) && scope.District == "" {
				return &eligible[i]
			}
		}
	}

	fallback := &eligible[0]
	if !rctx.IsEmpty() {
		s.logger.Debug("effective price resolved via context-ignoring fallback",
			zap.String("sku_id", fallback.SKUID.String()),
			zap.String("override_id", fallback.ID.String()),
			zap.Int("priority", fallback.Priority))
	}
	return fallback
}
