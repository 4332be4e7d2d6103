package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"preorder-server/internal/bootstrap"
	"preorder-server/internal/config"
	"preorder-server/internal/jobs"
	"preorder-server/internal/jobs/workers"
	"preorder-server/internal/observability"

	"github.com/hibiken/asynq"
)

func main() {
	logger := observability.NewLogger()
	ctx := context.Background()

	logger.Info(ctx, "Starting background worker server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %s", err)
	}
	defer deps.Cleanup()

	receiptWorker := workers.NewReceiptWorker(deps.ReceiptProcessor, logger)
	deliveryWorker := workers.NewDeliveryWorker(deps.Fulfillment, logger)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				jobs.QueueHigh:    6,
				jobs.QueueDefault: 3,
				jobs.QueueLow:     1,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error(ctx, fmt.Sprintf("task %s failed", task.Type()), err)
			}),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(jobs.TypeReceiptProcess, receiptWorker.ProcessReceiptTask)
	mux.HandleFunc(jobs.TypeClaimDelivery, deliveryWorker.ProcessClaimDeliveryTask)

	if err := srv.Start(mux); err != nil {
		log.Fatalf("failed to start asynq server: %s", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(ctx, "Shutting down worker server...")
	srv.Shutdown()
	logger.Info(ctx, "Worker exited gracefully")
}
