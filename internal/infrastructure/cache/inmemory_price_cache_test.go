package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apppricing "github.com/vendops/backend/internal/application/pricing"
	"github.com/vendops/backend/internal/domain/pricing"
)

func testPriceResult(skuID uuid.UUID, price int64) *apppricing.EffectivePriceResponse {
	return &apppricing.EffectivePriceResponse{
		SKUID:          skuID,
		SKUCode:        "SKU-001",
		ProductName:    "Cold Brew Can",
		BasePrice:      decimal.NewFromInt(100),
		EffectivePrice: decimal.NewFromInt(price),
		IsOverridden:   price != 100,
	}
}

func TestInMemoryPriceCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss returns nil without error", func(t *testing.T) {
		c := NewInMemoryPriceCache(time.Minute)
		got, err := c.Get(ctx, uuid.New(), pricing.ResolutionContext{})
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		c := NewInMemoryPriceCache(time.Minute)
		skuID := uuid.New()
		rctx := pricing.ResolutionContext{State: "KA"}

		require.NoError(t, c.Set(ctx, skuID, rctx, testPriceResult(skuID, 80), 0))

		got, err := c.Get(ctx, skuID, rctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.EffectivePrice.Equal(decimal.NewFromInt(80)))
		assert.True(t, got.IsOverridden)
	})

	t.Run("contexts are cached independently", func(t *testing.T) {
		c := NewInMemoryPriceCache(time.Minute)
		skuID := uuid.New()

		require.NoError(t, c.Set(ctx, skuID, pricing.ResolutionContext{State: "KA"}, testPriceResult(skuID, 80), 0))

		got, err := c.Get(ctx, skuID, pricing.ResolutionContext{State: "TN"})
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("equivalent contexts share an entry regardless of case", func(t *testing.T) {
		c := NewInMemoryPriceCache(time.Minute)
		skuID := uuid.New()

		require.NoError(t, c.Set(ctx, skuID, pricing.ResolutionContext{State: "KA"}, testPriceResult(skuID, 80), 0))

		got, err := c.Get(ctx, skuID, pricing.ResolutionContext{State: "ka"})
		require.NoError(t, err)
		require.NotNil(t, got)
	})

	t.Run("invalidation drops every context for the SKU", func(t *testing.T) {
		c := NewInMemoryPriceCache(time.Minute)
		skuID := uuid.New()
		other := uuid.New()

		require.NoError(t, c.Set(ctx, skuID, pricing.ResolutionContext{State: "KA"}, testPriceResult(skuID, 80), 0))
		require.NoError(t, c.Set(ctx, skuID, pricing.ResolutionContext{MachineID: "VM-042"}, testPriceResult(skuID, 70), 0))
		require.NoError(t, c.Set(ctx, other, pricing.ResolutionContext{State: "KA"}, testPriceResult(other, 100), 0))

		require.NoError(t, c.InvalidateSKU(ctx, skuID))

		got, err := c.Get(ctx, skuID, pricing.ResolutionContext{State: "KA"})
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = c.Get(ctx, skuID, pricing.ResolutionContext{MachineID: "VM-042"})
		require.NoError(t, err)
		assert.Nil(t, got)

		// Unrelated SKU survives
		got, err = c.Get(ctx, other, pricing.ResolutionContext{State: "KA"})
		require.NoError(t, err)
		require.NotNil(t, got)
	})

	t.Run("expired entries are misses", func(t *testing.T) {
		c := NewInMemoryPriceCache(time.Millisecond)
		skuID := uuid.New()

		require.NoError(t, c.Set(ctx, skuID, pricing.ResolutionContext{}, testPriceResult(skuID, 80), 0))
		time.Sleep(5 * time.Millisecond)

		got, err := c.Get(ctx, skuID, pricing.ResolutionContext{})
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("maxTTL shortens the entry lifetime below the configured TTL", func(t *testing.T) {
		c := NewInMemoryPriceCache(time.Minute)
		skuID := uuid.New()

		require.NoError(t, c.Set(ctx, skuID, pricing.ResolutionContext{}, testPriceResult(skuID, 80), time.Millisecond))
		time.Sleep(5 * time.Millisecond)

		got, err := c.Get(ctx, skuID, pricing.ResolutionContext{})
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
