package jobs

import (
	"context"
	"fmt"
	"preorder-server/internal/observability"
	"time"
)

// WindowSweeper drops expired rate-limit windows from memory.
type WindowSweeper interface {
	Sweep() int
}

// RateLimitSweepJob keeps the in-memory limiter from accumulating windows for
// clients that never return. Only registered when the memory limiter is in use.
type RateLimitSweepJob struct {
	limiter WindowSweeper
	logger  *observability.Logger
}

func NewRateLimitSweepJob(limiter WindowSweeper, logger *observability.Logger) *RateLimitSweepJob {
	return &RateLimitSweepJob{
		limiter: limiter,
		logger:  logger,
	}
}

func (j *RateLimitSweepJob) Name() string {
	return "rate-limit-sweep"
}

func (j *RateLimitSweepJob) Schedule() time.Duration {
	return 5 * time.Minute
}

func (j *RateLimitSweepJob) Run(_ context.Context) error {
	if swept := j.limiter.Sweep(); swept > 0 {
		j.logger.Info(context.Background(), fmt.Sprintf("swept %d expired rate limit windows", swept))
	}
	return nil
}
