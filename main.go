package main

import (
	"context"
	"log"

	"preorder-server/internal/bootstrap"
	"preorder-server/internal/config"
	"preorder-server/internal/observability"
	"preorder-server/internal/server"
)

func main() {
	logger := observability.NewLogger()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %s", err)
	}

	srv := server.New(cfg, deps, logger)
	srv.Setup()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := srv.Start(runCtx); err != nil {
		log.Fatalf("failed to start server: %s", err)
	}

	if err := srv.WaitForShutdown(runCtx); err != nil {
		log.Fatalf("shutdown error: %s", err)
	}
}
