package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"preorder-server/internal/jobs"
	"preorder-server/internal/observability"
	receiptsProcessor "preorder-server/internal/receipts/processor"

	"github.com/hibiken/asynq"
)

// ReceiptWorker runs the verification pipeline for queued receipts
type ReceiptWorker struct {
	processor *receiptsProcessor.Processor
	logger    *observability.Logger
}

// NewReceiptWorker creates a new receipt worker
func NewReceiptWorker(processor *receiptsProcessor.Processor, logger *observability.Logger) *ReceiptWorker {
	return &ReceiptWorker{
		processor: processor,
		logger:    logger,
	}
}

// ProcessReceiptTask processes a receipt verification task
func (w *ReceiptWorker) ProcessReceiptTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.ReceiptProcessPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal receipt process payload", err)
		return fmt.Errorf("failed to unmarshal receipt process payload: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "receipt_id", Value: payload.ReceiptID.String()})

	result := w.processor.Process(ctx, payload.ReceiptID)
	if result.Error != "" {
		// The receipt is parked in manual review; retrying may still clear a
		// transient failure before an admin has to look at it.
		return errors.New(result.Error)
	}

	w.logger.Info(ctx, fmt.Sprintf("receipt processed: status=%s score=%d", result.Status, result.Score))
	return nil
}
