package pricing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vendops/backend/internal/domain/pricing"
	"github.com/vendops/backend/internal/infrastructure/telemetry"
)

const defaultSweepBatchSize = 200

// ExpiryService is the sweeper: it transitions active overrides whose
// end date has passed into the terminal expired state, one audit entry
// per record. Runs are idempotent; swept records fall out of the scan
// predicate so repeated runs touch nothing.
type ExpiryService struct {
	overrideRepo pricing.PriceOverrideRepository
	historyRepo  pricing.PriceOverrideHistoryRepository
	cache        PriceCache
	logger       *zap.Logger
	batchSize    int
}

// NewExpiryService creates a new ExpiryService. cache may be nil.
func NewExpiryService(
	overrideRepo pricing.PriceOverrideRepository,
	historyRepo pricing.PriceOverrideHistoryRepository,
	cache PriceCache,
	logger *zap.Logger,
) *ExpiryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExpiryService{
		overrideRepo: overrideRepo,
		historyRepo:  historyRepo,
		cache:        cache,
		logger:       logger,
		batchSize:    defaultSweepBatchSize,
	}
}

// Sweep pages through active overrides past their end date and expires
// each one. Individual failures are logged and counted; the sweep
// continues with the remaining records and reports partial success.
func (s *ExpiryService) Sweep(ctx context.Context) (*ExpiryResultResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "price_expiry", "sweep")
	defer span.End()

	now := time.Now()
	actor := pricing.SystemActor()

	var expired, failed int64
	// Records whose save failed keep matching the scan predicate, so
	// later pages return them again. Remember them so each failure is
	// counted once and not retried within this run.
	failedIDs := make(map[uuid.UUID]struct{})

	for {
		batch, err := s.overrideRepo.FindExpiredActiveBatch(ctx, now, s.batchSize)
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
		if len(batch) == 0 {
			break
		}

		progressed := false
		for i := range batch {
			override := &batch[i]
			if _, seen := failedIDs[override.ID]; seen {
				continue
			}

			before := override.Snapshot()
			if err := override.Expire(now); err != nil {
				// Already terminal or not yet ended; nothing to do
				continue
			}
			after := override.Snapshot()

			if err := s.overrideRepo.Save(ctx, override); err != nil {
				failedIDs[override.ID] = struct{}{}
				failed++
				s.logger.Error("failed to expire override",
					zap.String("override_id", override.ID.String()),
					zap.Error(err))
				continue
			}
			expired++
			progressed = true

			entry, err := pricing.NewHistoryEntry(
				pricing.HistoryActionExpire,
				override.ID, override.SKUID, override.SKUCode, override.ProductName,
				&before, &after, pricing.DiffSnapshots(before, after),
				actor, pricing.RequestMeta{},
			)
			if err == nil {
				err = s.historyRepo.Append(ctx, entry)
			}
			if err != nil {
				s.logger.Warn("failed to record expiry history",
					zap.String("override_id", override.ID.String()),
					zap.Error(err))
			}

			if s.cache != nil {
				if err := s.cache.InvalidateSKU(ctx, override.SKUID); err != nil {
					s.logger.Warn("failed to invalidate price cache",
						zap.String("sku_id", override.SKUID.String()),
						zap.Error(err))
				}
			}
		}

		// A batch where every save failed would loop forever since the
		// records keep matching the predicate
		if !progressed {
			break
		}
	}

	totals, err := s.overrideRepo.CountByStatus(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	telemetry.SetAttributes(span, "expired_count", expired, "failed_count", failed)

	s.logger.Info("expiry sweep finished",
		zap.Int64("expired", expired),
		zap.Int64("failed", failed),
		zap.Int64("active_total", totals.Active),
		zap.Int64("expired_total", totals.Expired))

	return &ExpiryResultResponse{
		ExpiredCount: expired,
		FailedCount:  failed,
		Totals:       totals,
	}, nil
}
