package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseCronSchedule(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		wantErr bool
	}{
		{name: "daily at 1am", expr: "0 1 * * *"},
		{name: "hourly at half past", expr: "30 * * * *"},
		{name: "every fifteen minutes", expr: "*/15 * * * *"},
		{name: "too few fields", expr: "0 1 * *", wantErr: true},
		{name: "minute out of range", expr: "60 1 * * *", wantErr: true},
		{name: "hour out of range", expr: "0 24 * * *", wantErr: true},
		{name: "day field restricted", expr: "0 1 5 * *", wantErr: true},
		{name: "step with fixed hour", expr: "*/15 2 * * *", wantErr: true},
		{name: "zero step", expr: "*/0 * * * *", wantErr: true},
		{name: "garbage", expr: "once a day please thanks", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCronSchedule(tt.expr)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSchedule)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCronSchedule_Matches(t *testing.T) {
	at := func(hour, minute int) time.Time {
		return time.Date(2026, 3, 14, hour, minute, 0, 0, time.UTC)
	}

	t.Run("daily", func(t *testing.T) {
		sched, err := parseCronSchedule("0 1 * * *")
		require.NoError(t, err)

		assert.True(t, sched.matches(at(1, 0)))
		assert.False(t, sched.matches(at(1, 1)))
		assert.False(t, sched.matches(at(2, 0)))
	})

	t.Run("hourly", func(t *testing.T) {
		sched, err := parseCronSchedule("30 * * * *")
		require.NoError(t, err)

		assert.True(t, sched.matches(at(1, 30)))
		assert.True(t, sched.matches(at(23, 30)))
		assert.False(t, sched.matches(at(1, 31)))
	})

	t.Run("minute step", func(t *testing.T) {
		sched, err := parseCronSchedule("*/15 * * * *")
		require.NoError(t, err)

		assert.True(t, sched.matches(at(9, 0)))
		assert.True(t, sched.matches(at(9, 45)))
		assert.False(t, sched.matches(at(9, 50)))
	})
}

func TestNewCronTrigger_RejectsBadSchedule(t *testing.T) {
	s := NewScheduler(testSchedulerConfig(), &recordingExecutor{}, zap.NewNop())

	_, err := NewCronTrigger(CronTriggerConfig{Schedule: "whenever"}, s, zap.NewNop())
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestCronTrigger_ManualSweep(t *testing.T) {
	executor := &recordingExecutor{}
	s := NewScheduler(testSchedulerConfig(), executor, zap.NewNop())
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop(context.Background())

	trigger, err := NewCronTrigger(DefaultCronTriggerConfig(), s, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, trigger.TriggerManualSweep())

	require.Eventually(t, func() bool {
		return executor.callCount() == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestCronTrigger_StartStop(t *testing.T) {
	s := NewScheduler(testSchedulerConfig(), &recordingExecutor{}, zap.NewNop())
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop(context.Background())

	cfg := DefaultCronTriggerConfig()
	cfg.CheckInterval = 10 * time.Millisecond
	trigger, err := NewCronTrigger(cfg, s, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, trigger.Start(context.Background()))
	require.NoError(t, trigger.Start(context.Background())) // second start is a no-op

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, trigger.Stop(ctx))
	require.NoError(t, trigger.Stop(ctx))
}
