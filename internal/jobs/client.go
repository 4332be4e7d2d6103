package jobs

import (
	"context"
	"fmt"

	"preorder-server/internal/observability"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Client handles enqueueing background jobs
type Client struct {
	client *asynq.Client
	logger *observability.Logger
}

// NewClient creates a new job client
func NewClient(redisAddr string, logger *observability.Logger) *Client {
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
	return &Client{
		client: client,
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueReceiptProcessing queues a submitted receipt for verification
func (c *Client) EnqueueReceiptProcessing(ctx context.Context, receiptID uuid.UUID) error {
	task, err := NewReceiptProcessTask(ReceiptProcessPayload{ReceiptID: receiptID})
	if err != nil {
		c.logger.Error(ctx, "failed to create receipt process task", err)
		return fmt.Errorf("failed to create receipt process task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		c.logger.Error(ctx, "failed to enqueue receipt process task", err)
		return fmt.Errorf("failed to enqueue receipt process task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued receipt process task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}

// EnqueueClaimDelivery queues an approved bonus claim for email delivery
func (c *Client) EnqueueClaimDelivery(ctx context.Context, claimID uuid.UUID) error {
	task, err := NewClaimDeliveryTask(ClaimDeliveryPayload{ClaimID: claimID})
	if err != nil {
		c.logger.Error(ctx, "failed to create claim delivery task", err)
		return fmt.Errorf("failed to create claim delivery task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		c.logger.Error(ctx, "failed to enqueue claim delivery task", err)
		return fmt.Errorf("failed to enqueue claim delivery task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued claim delivery task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}
