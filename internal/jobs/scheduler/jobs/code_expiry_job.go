package jobs

import (
	"context"
	"fmt"
	"preorder-server/internal/observability"
	"time"
)

// CodeExpirer marks lapsed access codes as expired.
type CodeExpirer interface {
	ExpireLapsed(ctx context.Context) (int64, error)
}

// CodeExpiryJob sweeps active access codes whose validity window has closed
type CodeExpiryJob struct {
	codes  CodeExpirer
	logger *observability.Logger
}

func NewCodeExpiryJob(codes CodeExpirer, logger *observability.Logger) *CodeExpiryJob {
	return &CodeExpiryJob{
		codes:  codes,
		logger: logger,
	}
}

func (j *CodeExpiryJob) Name() string {
	return "access-code-expiry"
}

func (j *CodeExpiryJob) Schedule() time.Duration {
	return time.Hour
}

func (j *CodeExpiryJob) Run(ctx context.Context) error {
	expired, err := j.codes.ExpireLapsed(ctx)
	if err != nil {
		return fmt.Errorf("failed to expire lapsed codes: %w", err)
	}
	if expired > 0 {
		j.logger.Info(ctx, fmt.Sprintf("expired %d lapsed access codes", expired))
	}
	return nil
}
