package scheduler

import (
	"context"

	"go.uber.org/zap"

	apppricing "github.com/vendops/backend/internal/application/pricing"
)

// Sweeper runs one expiry pass and reports what it did
type Sweeper interface {
	Sweep(ctx context.Context) (*apppricing.ExpiryResultResponse, error)
}

// SweepExecutor runs expiry sweeps through the application service and
// records the outcome on the job.
type SweepExecutor struct {
	sweeper Sweeper
	logger  *zap.Logger
}

// NewSweepExecutor creates a new sweep executor
func NewSweepExecutor(sweeper Sweeper, logger *zap.Logger) *SweepExecutor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SweepExecutor{
		sweeper: sweeper,
		logger:  logger,
	}
}

// Execute runs one expiry sweep
func (e *SweepExecutor) Execute(ctx context.Context, job *Job) error {
	result, err := e.sweeper.Sweep(ctx)
	if err != nil {
		return err
	}

	job.ExpiredCount = result.ExpiredCount
	job.FailedCount = result.FailedCount

	e.logger.Info("Expiry sweep executed",
		zap.String("job_id", job.ID.String()),
		zap.Int64("expired", result.ExpiredCount),
		zap.Int64("failed", result.FailedCount),
		zap.Int64("active_remaining", result.Totals.Active),
	)
	return nil
}

// Ensure SweepExecutor implements the interface
var _ JobExecutor = (*SweepExecutor)(nil)
