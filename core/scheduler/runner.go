package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Job is a unit of periodic work, typically one feed's sync.
type Job interface {
	// Name identifies the job in logs.
	Name() string
	// Run performs one sync pass.
	Run(ctx context.Context) error
}

// Runner executes a job immediately and then on a fixed interval. It
// implements suture.Service so the supervisor restarts it if it ever
// panics out of the loop.
type Runner struct {
	job      Job
	interval time.Duration
	logger   *zap.Logger
}

// NewRunner wraps a job into a supervised periodic service.
func NewRunner(job Job, interval time.Duration, logger *zap.Logger) *Runner {
	return &Runner{
		job:      job,
		interval: interval,
		logger:   logger,
	}
}

// Serve implements suture.Service. Job errors are logged, not returned:
// a failing feed should keep its schedule, not trip the supervisor's
// restart backoff. The next tick is the retry.
func (r *Runner) Serve(ctx context.Context) error {
	r.runOnce(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.runOnce(ctx)
		}
	}
}

// String implements fmt.Stringer for supervisor logs.
func (r *Runner) String() string {
	return r.job.Name()
}

func (r *Runner) runOnce(ctx context.Context) {
	start := time.Now()
	if err := r.job.Run(ctx); err != nil {
		r.logger.Error("Feed sync failed",
			zap.String("feed", r.job.Name()),
			zap.Error(err),
		)
		return
	}
	r.logger.Debug("Feed sync completed",
		zap.String("feed", r.job.Name()),
		zap.Duration("took", time.Since(start)),
	)
}
