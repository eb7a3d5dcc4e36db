package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vendops/backend/internal/domain/pricing"
)

func TestHistoryServiceList(t *testing.T) {
	t.Run("maps filters through to the repository", func(t *testing.T) {
		historyRepo := new(MockHistoryRepository)
		overrideID := uuid.New()
		userID := uuid.New()
		from := time.Now().Add(-7 * 24 * time.Hour)

		historyRepo.On("FindFiltered", mock.Anything, mock.MatchedBy(func(f pricing.HistoryFilter) bool {
			return f.PriceOverrideID != nil && *f.PriceOverrideID == overrideID &&
				f.Action != nil && *f.Action == pricing.HistoryActionUpdate &&
				f.PerformedByID != nil && *f.PerformedByID == userID &&
				f.From != nil && f.From.Equal(from) &&
				f.Page == 3 && f.PageSize == 50
		})).Return([]pricing.PriceOverrideHistory{}, int64(0), nil)

		svc := NewHistoryService(historyRepo)
		_, total, err := svc.List(context.Background(), HistoryListFilter{
			PriceOverrideID: &overrideID,
			Action:          "UPDATE",
			UserID:          &userID,
			From:            &from,
			Page:            3,
			Limit:           50,
		})

		require.NoError(t, err)
		assert.Zero(t, total)
		historyRepo.AssertExpectations(t)
	})

	t.Run("converts entries including stored snapshots", func(t *testing.T) {
		historyRepo := new(MockHistoryRepository)

		override := testOverride(t, uuid.New(), pricing.LocationScope{State: "KA"})
		snap := override.Snapshot()
		entry, err := pricing.NewHistoryEntry(
			pricing.HistoryActionCreate,
			override.ID, override.SKUID, override.SKUCode, override.ProductName,
			nil, &snap, nil, testActor(), pricing.RequestMeta{},
		)
		require.NoError(t, err)

		historyRepo.On("FindFiltered", mock.Anything, mock.Anything).
			Return([]pricing.PriceOverrideHistory{*entry}, int64(1), nil)

		svc := NewHistoryService(historyRepo)
		responses, total, err := svc.List(context.Background(), HistoryListFilter{})

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, responses, 1)
		assert.Equal(t, "CREATE", responses[0].Action)
		require.NotNil(t, responses[0].NewData)
		assert.Equal(t, override.ID, responses[0].NewData.ID)
		assert.Nil(t, responses[0].OldData)
	})
}
