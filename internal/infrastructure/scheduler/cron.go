package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"MarketIntel/internal/ports"
)

// CronScheduler runs the pipeline on a cron expression in a fixed timezone.
type CronScheduler struct {
	spec string
	loc  *time.Location
	cron *cron.Cron
}

var _ ports.Scheduler = (*CronScheduler)(nil)

// NewCronScheduler builds a scheduler configured via cron expression string.
func NewCronScheduler(spec string, loc *time.Location) *CronScheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &CronScheduler{spec: spec, loc: loc}
}

// Start registers the job and begins the cron loop.
func (c *CronScheduler) Start(ctx context.Context, job func(time.Time)) error {
	if job == nil {
		return nil
	}

	if c.cron != nil {
		return nil
	}

	runner := cron.New(cron.WithLocation(c.loc))
	_, err := runner.AddFunc(c.spec, func() {
		select {
		case <-ctx.Done():
			return
		default:
		}
		job(time.Now().In(c.loc))
	})
	if err != nil {
		return fmt.Errorf("register cron job %q: %w", c.spec, err)
	}

	c.cron = runner
	c.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (c *CronScheduler) Stop(ctx context.Context) error {
	if c.cron == nil {
		return nil
	}

	done := c.cron.Stop().Done()
	c.cron = nil

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
