package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// recordingExecutor counts executions and fails the first failFirst calls
type recordingExecutor struct {
	mu        sync.Mutex
	calls     int
	failFirst int
}

func (e *recordingExecutor) Execute(ctx context.Context, job *Job) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++
	if e.calls <= e.failFirst {
		return errors.New("sweep exploded")
	}
	job.ExpiredCount = 7
	return nil
}

func (e *recordingExecutor) callCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls
}

func testSchedulerConfig() SchedulerConfig {
	cfg := DefaultSchedulerConfig()
	cfg.JobTimeout = 5 * time.Second
	cfg.RetryDelay = 0 // retry immediately in tests
	return cfg
}

func TestScheduler_ExecutesSubmittedJob(t *testing.T) {
	executor := &recordingExecutor{}
	s := NewScheduler(testSchedulerConfig(), executor, zap.NewNop())

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop(context.Background())

	job := NewJob(0)
	require.NoError(t, s.SubmitJob(job))

	require.Eventually(t, func() bool {
		return job.Status == JobStatusSuccess
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, 1, executor.callCount())
	assert.Equal(t, int64(7), job.ExpiredCount)
	assert.NotNil(t, job.StartedAt)
	assert.NotNil(t, job.CompletedAt)
}

func TestScheduler_SubmitJob_NotRunning(t *testing.T) {
	s := NewScheduler(testSchedulerConfig(), &recordingExecutor{}, zap.NewNop())

	err := s.SubmitJob(NewJob(0))
	assert.ErrorIs(t, err, ErrSchedulerNotRunning)
}

func TestScheduler_RetriesFailedJob(t *testing.T) {
	executor := &recordingExecutor{failFirst: 2}
	cfg := testSchedulerConfig()
	cfg.RetryAttempts = 3
	s := NewScheduler(cfg, executor, zap.NewNop())

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop(context.Background())

	require.NoError(t, s.ScheduleSweep())

	require.Eventually(t, func() bool {
		return executor.callCount() == 3
	}, 2*time.Second, 10*time.Millisecond)
}

func TestScheduler_GivesUpAfterMaxRetries(t *testing.T) {
	executor := &recordingExecutor{failFirst: 100}
	cfg := testSchedulerConfig()
	cfg.RetryAttempts = 1
	s := NewScheduler(cfg, executor, zap.NewNop())

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop(context.Background())

	job := NewJob(cfg.RetryAttempts)
	require.NoError(t, s.SubmitJob(job))

	require.Eventually(t, func() bool {
		return job.Status == JobStatusFailed && job.RetryCount == 1
	}, 2*time.Second, 10*time.Millisecond)

	// Original attempt plus one retry
	assert.Equal(t, 2, executor.callCount())
	assert.Equal(t, "sweep exploded", job.Error)
}

func TestScheduler_StopIsIdempotent(t *testing.T) {
	s := NewScheduler(testSchedulerConfig(), &recordingExecutor{}, zap.NewNop())

	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Stop(context.Background()))
	require.NoError(t, s.Stop(context.Background()))
}

func TestJob_RetryBookkeeping(t *testing.T) {
	job := NewJob(2)
	assert.Equal(t, JobStatusPending, job.Status)

	job.Start()
	job.Fail("boom")
	assert.True(t, job.ShouldRetry())

	job.ScheduleRetry(time.Minute)
	assert.Equal(t, JobStatusPending, job.Status)
	assert.Equal(t, 1, job.RetryCount)
	assert.NotNil(t, job.NextRetryAt)
	assert.Empty(t, job.Error)

	job.Fail("boom")
	job.ScheduleRetry(time.Minute)
	job.Fail("boom")
	assert.False(t, job.ShouldRetry())
}
