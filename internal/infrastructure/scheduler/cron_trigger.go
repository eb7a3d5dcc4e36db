package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// cronSchedule is the subset of cron this service needs: a daily run at
// a fixed time ("0 1 * * *"), an hourly run at a fixed minute
// ("30 * * * *"), or a minute-step run ("*/15 * * * *"). The day, month
// and weekday fields must be "*".
type cronSchedule struct {
	minute     int
	minuteStep int
	hour       int // -1 means every hour
}

// parseCronSchedule parses the supported cron subset
func parseCronSchedule(expr string) (cronSchedule, error) {
	fields := strings.Fields(expr)
	if len(fields) != 5 {
		return cronSchedule{}, fmt.Errorf("%w: %q must have 5 fields", ErrInvalidSchedule, expr)
	}
	for _, f := range fields[2:] {
		if f != "*" {
			return cronSchedule{}, fmt.Errorf("%w: %q uses day/month/weekday fields", ErrInvalidSchedule, expr)
		}
	}

	sched := cronSchedule{hour: -1}

	if step, ok := strings.CutPrefix(fields[0], "*/"); ok {
		n, err := strconv.Atoi(step)
		if err != nil || n < 1 || n > 59 {
			return cronSchedule{}, fmt.Errorf("%w: bad minute step in %q", ErrInvalidSchedule, expr)
		}
		sched.minuteStep = n
	} else {
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 0 || n > 59 {
			return cronSchedule{}, fmt.Errorf("%w: bad minute in %q", ErrInvalidSchedule, expr)
		}
		sched.minute = n
	}

	if fields[1] != "*" {
		if sched.minuteStep > 0 {
			return cronSchedule{}, fmt.Errorf("%w: minute steps require hour \"*\" in %q", ErrInvalidSchedule, expr)
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 || n > 23 {
			return cronSchedule{}, fmt.Errorf("%w: bad hour in %q", ErrInvalidSchedule, expr)
		}
		sched.hour = n
	}

	return sched, nil
}

// matches reports whether the schedule fires in t's minute
func (s cronSchedule) matches(t time.Time) bool {
	if s.minuteStep > 0 {
		return t.Minute()%s.minuteStep == 0
	}
	if t.Minute() != s.minute {
		return false
	}
	return s.hour == -1 || t.Hour() == s.hour
}

// CronTriggerConfig holds configuration for the cron trigger
type CronTriggerConfig struct {
	// Schedule is a cron expression restricted to time-of-day forms
	Schedule string

	// CheckInterval is how often to check if it's time to run
	CheckInterval time.Duration
}

// DefaultCronTriggerConfig returns default cron trigger configuration
func DefaultCronTriggerConfig() CronTriggerConfig {
	return CronTriggerConfig{
		Schedule:      "0 1 * * *", // 1am daily
		CheckInterval: time.Minute,
	}
}

// CronTrigger submits sweep jobs on a fixed schedule
type CronTrigger struct {
	config    CronTriggerConfig
	schedule  cronSchedule
	scheduler *Scheduler
	logger    *zap.Logger

	cancel     context.CancelFunc
	wg         sync.WaitGroup
	mu         sync.Mutex
	isRunning  bool
	lastRunKey string // minute-resolution timestamp of the last fire
}

// NewCronTrigger creates a new cron trigger
func NewCronTrigger(
	config CronTriggerConfig,
	scheduler *Scheduler,
	logger *zap.Logger,
) (*CronTrigger, error) {
	if config.CheckInterval <= 0 {
		config.CheckInterval = time.Minute
	}
	sched, err := parseCronSchedule(config.Schedule)
	if err != nil {
		return nil, err
	}
	return &CronTrigger{
		config:    config,
		schedule:  sched,
		scheduler: scheduler,
		logger:    logger,
	}, nil
}

// Start starts the cron trigger
func (c *CronTrigger) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.isRunning {
		c.mu.Unlock()
		return nil
	}
	c.isRunning = true
	c.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	c.wg.Add(1)
	go c.runLoop(ctx)

	c.logger.Info("Sweep cron trigger started",
		zap.String("schedule", c.config.Schedule),
		zap.Duration("check_interval", c.config.CheckInterval),
	)

	return nil
}

// Stop stops the cron trigger
func (c *CronTrigger) Stop(ctx context.Context) error {
	c.mu.Lock()
	if !c.isRunning {
		c.mu.Unlock()
		return nil
	}
	c.isRunning = false
	c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
	}

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		c.logger.Info("Sweep cron trigger stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// runLoop checks periodically if the schedule has come due
func (c *CronTrigger) runLoop(ctx context.Context) {
	defer c.wg.Done()

	ticker := time.NewTicker(c.config.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.checkAndTrigger()
		}
	}
}

// checkAndTrigger fires at most once per matching minute
func (c *CronTrigger) checkAndTrigger() {
	now := time.Now()
	if !c.schedule.matches(now) {
		return
	}

	runKey := now.Format("2006-01-02 15:04")

	c.mu.Lock()
	if c.lastRunKey == runKey {
		c.mu.Unlock()
		return
	}
	c.lastRunKey = runKey
	c.mu.Unlock()

	c.logger.Info("Triggering scheduled expiry sweep")
	if err := c.scheduler.ScheduleSweep(); err != nil {
		c.logger.Error("Failed to schedule expiry sweep", zap.Error(err))
	}
}

// TriggerManualSweep submits a sweep job outside the schedule
func (c *CronTrigger) TriggerManualSweep() error {
	return c.scheduler.ScheduleSweep()
}
