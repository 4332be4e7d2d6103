package workers

import (
	"context"
	"encoding/json"
	"fmt"

	"preorder-server/internal/fulfillment"
	"preorder-server/internal/jobs"
	"preorder-server/internal/observability"

	"github.com/hibiken/asynq"
)

// DeliveryWorker sends bonus pack emails for approved claims
type DeliveryWorker struct {
	fulfillment *fulfillment.Service
	logger      *observability.Logger
}

// NewDeliveryWorker creates a new delivery worker
func NewDeliveryWorker(fulfillmentService *fulfillment.Service, logger *observability.Logger) *DeliveryWorker {
	return &DeliveryWorker{
		fulfillment: fulfillmentService,
		logger:      logger,
	}
}

// ProcessClaimDeliveryTask processes a bonus pack delivery task. Deliver is
// idempotent for already-delivered claims, so asynq retries are safe.
func (w *DeliveryWorker) ProcessClaimDeliveryTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.ClaimDeliveryPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal claim delivery payload", err)
		return fmt.Errorf("failed to unmarshal claim delivery payload: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "claim_id", Value: payload.ClaimID.String()})

	if err := w.fulfillment.Deliver(ctx, payload.ClaimID); err != nil {
		w.logger.Error(ctx, "failed to deliver bonus pack", err)
		return fmt.Errorf("failed to deliver bonus pack: %w", err)
	}
	return nil
}
