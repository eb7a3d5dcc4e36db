package pricing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOverride(t *testing.T) *PriceOverride {
	t.Helper()
	override, err := NewPriceOverride(
		uuid.New(),
		"SKU-001",
		"Cold Brew Can",
		decimal.NewFromInt(100),
		LocationScope{State: "KA"},
		decimal.NewFromInt(80),
		time.Now().Add(-24*time.Hour),
		time.Now().Add(24*time.Hour),
		"promo",
		uuid.New(),
	)
	require.NoError(t, err)
	return override
}

func TestNewPriceOverride(t *testing.T) {
	skuID := uuid.New()
	createdBy := uuid.New()
	start := time.Now()
	end := start.Add(48 * time.Hour)

	t.Run("creates active override with derived priority", func(t *testing.T) {
		override, err := NewPriceOverride(
			skuID, "SKU-001", "Cold Brew Can", decimal.NewFromInt(100),
			LocationScope{State: "KA", District: "Bangalore Urban"},
			decimal.NewFromInt(80), start, end, "diwali promo", createdBy,
		)
		require.NoError(t, err)
		require.NotNil(t, override)

		assert.Equal(t, skuID, override.SKUID)
		assert.Equal(t, "SKU-001", override.SKUCode)
		assert.Equal(t, OverrideStatusActive, override.Status)
		assert.Equal(t, PriorityDistrict, override.Priority)
		assert.Equal(t, createdBy, override.CreatedBy)
		assert.Nil(t, override.UpdatedBy)
		assert.True(t, override.OriginalBasePrice.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, 1, override.GetVersion())
	})

	t.Run("publishes created event", func(t *testing.T) {
		override := validOverride(t)
		events := override.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeOverrideCreated, events[0].EventType())
	})

	t.Run("priority follows specificity for every field set", func(t *testing.T) {
		areaID := uuid.New()
		cases := []struct {
			scope    LocationScope
			expected int
		}{
			{LocationScope{MachineID: "VM-001"}, PriorityMachine},
			{LocationScope{Campus: "North", Floor: "2"}, PriorityLocation},
			{LocationScope{AreaID: &areaID}, PriorityArea},
			{LocationScope{District: "Mysore"}, PriorityDistrict},
			{LocationScope{State: "TN"}, PriorityState},
		}
		for _, c := range cases {
			override, err := NewPriceOverride(
				skuID, "SKU-001", "Cold Brew Can", decimal.NewFromInt(100),
				c.scope, decimal.NewFromInt(80), start, end, "promo", createdBy,
			)
			require.NoError(t, err)
			assert.Equal(t, c.expected, override.Priority)
		}
	})

	t.Run("fails without sku id", func(t *testing.T) {
		_, err := NewPriceOverride(
			uuid.Nil, "SKU-001", "Cold Brew Can", decimal.NewFromInt(100),
			LocationScope{State: "KA"}, decimal.NewFromInt(80), start, end, "promo", createdBy,
		)
		require.Error(t, err)
	})

	t.Run("fails with empty scope", func(t *testing.T) {
		_, err := NewPriceOverride(
			skuID, "SKU-001", "Cold Brew Can", decimal.NewFromInt(100),
			LocationScope{}, decimal.NewFromInt(80), start, end, "promo", createdBy,
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "location field")
	})

	t.Run("fails with negative price", func(t *testing.T) {
		_, err := NewPriceOverride(
			skuID, "SKU-001", "Cold Brew Can", decimal.NewFromInt(100),
			LocationScope{State: "KA"}, decimal.NewFromInt(-1), start, end, "promo", createdBy,
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "negative")
	})

	t.Run("allows zero price", func(t *testing.T) {
		_, err := NewPriceOverride(
			skuID, "SKU-001", "Cold Brew Can", decimal.NewFromInt(100),
			LocationScope{State: "KA"}, decimal.Zero, start, end, "free sampling", createdBy,
		)
		require.NoError(t, err)
	})

	t.Run("fails when end date not after start date", func(t *testing.T) {
		_, err := NewPriceOverride(
			skuID, "SKU-001", "Cold Brew Can", decimal.NewFromInt(100),
			LocationScope{State: "KA"}, decimal.NewFromInt(80), end, start, "promo", createdBy,
		)
		require.Error(t, err)

		_, err = NewPriceOverride(
			skuID, "SKU-001", "Cold Brew Can", decimal.NewFromInt(100),
			LocationScope{State: "KA"}, decimal.NewFromInt(80), start, start, "promo", createdBy,
		)
		require.Error(t, err)
	})

	t.Run("fails with blank reason", func(t *testing.T) {
		_, err := NewPriceOverride(
			skuID, "SKU-001", "Cold Brew Can", decimal.NewFromInt(100),
			LocationScope{State: "KA"}, decimal.NewFromInt(80), start, end, "   ", createdBy,
		)
		require.Error(t, err)
	})
}

func TestUpdateTerms(t *testing.T) {
	t.Run("updates price, window and reason", func(t *testing.T) {
		override := validOverride(t)
		updatedBy := uuid.New()
		newStart := time.Now()
		newEnd := newStart.Add(72 * time.Hour)

		err := override.UpdateTerms(decimal.NewFromInt(75), newStart, newEnd, "extended promo", updatedBy)
		require.NoError(t, err)

		assert.True(t, override.OverridePrice.Equal(decimal.NewFromInt(75)))
		assert.Equal(t, "extended promo", override.Reason)
		require.NotNil(t, override.UpdatedBy)
		assert.Equal(t, updatedBy, *override.UpdatedBy)
		assert.Equal(t, 2, override.GetVersion())
	})

	t.Run("rejects inverted window on update", func(t *testing.T) {
		override := validOverride(t)
		now := time.Now()
		err := override.UpdateTerms(decimal.NewFromInt(75), now, now.Add(-time.Hour), "promo", uuid.New())
		require.Error(t, err)
	})
}

func TestUpdateScope(t *testing.T) {
	t.Run("recomputes priority from the new field set", func(t *testing.T) {
		override := validOverride(t)
		assert.Equal(t, PriorityState, override.Priority)

		err := override.UpdateScope(LocationScope{MachineID: "VM-007"}, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, PriorityMachine, override.Priority)

		err = override.UpdateScope(LocationScope{District: "Mysore"}, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, PriorityDistrict, override.Priority)
	})

	t.Run("rejects empty scope", func(t *testing.T) {
		override := validOverride(t)
		err := override.UpdateScope(LocationScope{}, uuid.New())
		require.Error(t, err)
	})
}

func TestStatusTransitions(t *testing.T) {
	t.Run("active and inactive flip both ways", func(t *testing.T) {
		override := validOverride(t)
		actor := uuid.New()

		require.NoError(t, override.Deactivate(actor))
		assert.Equal(t, OverrideStatusInactive, override.Status)

		require.NoError(t, override.Activate(actor))
		assert.Equal(t, OverrideStatusActive, override.Status)
	})

	t.Run("activating an active override fails", func(t *testing.T) {
		override := validOverride(t)
		require.Error(t, override.Activate(uuid.New()))
	})

	t.Run("deactivating an inactive override fails", func(t *testing.T) {
		override := validOverride(t)
		require.NoError(t, override.Deactivate(uuid.New()))
		require.Error(t, override.Deactivate(uuid.New()))
	})

	t.Run("expired is terminal", func(t *testing.T) {
		override := validOverride(t)
		override.EndDate = time.Now().Add(-time.Hour)
		require.NoError(t, override.Expire(time.Now()))
		assert.Equal(t, OverrideStatusExpired, override.Status)

		require.Error(t, override.Activate(uuid.New()))
		require.Error(t, override.Deactivate(uuid.New()))
	})
}

func TestExpire(t *testing.T) {
	t.Run("expires an active override past its end date", func(t *testing.T) {
		override := validOverride(t)
		override.EndDate = time.Now().Add(-time.Minute)

		require.NoError(t, override.Expire(time.Now()))
		assert.Equal(t, OverrideStatusExpired, override.Status)
	})

	t.Run("refuses an override still inside its window", func(t *testing.T) {
		override := validOverride(t)
		require.Error(t, override.Expire(time.Now()))
		assert.Equal(t, OverrideStatusActive, override.Status)
	})

	t.Run("expiring twice is rejected so sweeps stay idempotent", func(t *testing.T) {
		override := validOverride(t)
		override.EndDate = time.Now().Add(-time.Minute)
		require.NoError(t, override.Expire(time.Now()))

		version := override.GetVersion()
		require.Error(t, override.Expire(time.Now()))
		assert.Equal(t, version, override.GetVersion())
	})
}

func TestMarkDeleted(t *testing.T) {
	override := validOverride(t)
	override.ClearDomainEvents()

	override.MarkDeleted()

	events := override.GetDomainEvents()
	require.Len(t, events, 1)
	deleted, ok := events[0].(*OverrideDeletedEvent)
	require.True(t, ok)
	assert.Equal(t, override.ID, deleted.OverrideID)
	assert.Equal(t, override.SKUID, deleted.SKUID)
}

func TestIsEligibleAt(t *testing.T) {
	now := time.Now()

	t.Run("active override inside window is eligible", func(t *testing.T) {
		override := validOverride(t)
		assert.True(t, override.IsEligibleAt(now))
	})

	t.Run("inactive override is not eligible", func(t *testing.T) {
		override := validOverride(t)
		require.NoError(t, override.Deactivate(uuid.New()))
		assert.False(t, override.IsEligibleAt(now))
	})

	t.Run("override outside window is not eligible", func(t *testing.T) {
		override := validOverride(t)
		assert.False(t, override.IsEligibleAt(override.StartDate.Add(-time.Hour)))
		assert.False(t, override.IsEligibleAt(override.EndDate.Add(time.Hour)))
	})

	t.Run("window boundaries are inclusive", func(t *testing.T) {
		override := validOverride(t)
		assert.True(t, override.IsEligibleAt(override.StartDate))
		assert.True(t, override.IsEligibleAt(override.EndDate))
	})
}
