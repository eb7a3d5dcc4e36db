package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	apppricing "github.com/vendops/backend/internal/application/pricing"
	"github.com/vendops/backend/internal/domain/pricing"
)

// InMemoryPriceCache is a process-local price cache for single-instance
// deployments and tests. Multi-instance deployments should use the
// Redis cache so invalidations reach every node.
type InMemoryPriceCache struct {
	mu      sync.RWMutex
	entries map[string]inMemoryPriceEntry
	bySKU   map[uuid.UUID]map[string]struct{}
	ttl     time.Duration
}

type inMemoryPriceEntry struct {
	result    apppricing.EffectivePriceResponse
	expiresAt time.Time
}

// NewInMemoryPriceCache creates an in-memory price cache
func NewInMemoryPriceCache(ttl time.Duration) *InMemoryPriceCache {
	if ttl <= 0 {
		ttl = defaultPriceTTL
	}
	return &InMemoryPriceCache{
		entries: make(map[string]inMemoryPriceEntry),
		bySKU:   make(map[uuid.UUID]map[string]struct{}),
		ttl:     ttl,
	}
}

// Get returns the cached resolution for the SKU and context, nil on a miss
func (c *InMemoryPriceCache) Get(ctx context.Context, skuID uuid.UUID, rctx pricing.ResolutionContext) (*apppricing.EffectivePriceResponse, error) {
	key := priceKey(skuID, rctx)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, nil
	}

	result := entry.result
	return &result, nil
}

// Set stores the resolution for the SKU and context, shortening the
// entry lifetime to maxTTL when the caller supplies a positive bound
func (c *InMemoryPriceCache) Set(ctx context.Context, skuID uuid.UUID, rctx pricing.ResolutionContext, result *apppricing.EffectivePriceResponse, maxTTL time.Duration) error {
	if result == nil {
		return nil
	}
	key := priceKey(skuID, rctx)

	ttl := c.ttl
	if maxTTL > 0 && maxTTL < ttl {
		ttl = maxTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = inMemoryPriceEntry{
		result:    *result,
		expiresAt: time.Now().Add(ttl),
	}
	if c.bySKU[skuID] == nil {
		c.bySKU[skuID] = make(map[string]struct{})
	}
	c.bySKU[skuID][key] = struct{}{}
	return nil
}

// InvalidateSKU drops every cached resolution for the SKU
func (c *InMemoryPriceCache) InvalidateSKU(ctx context.Context, skuID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.bySKU[skuID] {
		delete(c.entries, key)
	}
	delete(c.bySKU, skuID)
	return nil
}

// Len returns the number of live entries (for tests and monitoring)
func (c *InMemoryPriceCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Ensure InMemoryPriceCache implements the interface
var _ apppricing.PriceCache = (*InMemoryPriceCache)(nil)
