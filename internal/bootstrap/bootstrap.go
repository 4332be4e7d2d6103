package bootstrap

import (
	"context"
	"fmt"

	"preorder-server/internal/auth"
	"preorder-server/internal/config"
	"preorder-server/internal/email"
	"preorder-server/internal/fulfillment"
	"preorder-server/internal/jobs"
	"preorder-server/internal/observability"
	"preorder-server/internal/ocr"
	"preorder-server/internal/ratelimit"
	"preorder-server/internal/store"
	"preorder-server/internal/tokens"

	"preorder-server/internal/clients/googleai"
	"preorder-server/internal/clients/mail"
	openaiClient "preorder-server/internal/clients/openai"
	redisClient "preorder-server/internal/clients/redis"
	"preorder-server/internal/clients/storage"
	codesHandler "preorder-server/internal/codes/handler"
	codesProcessor "preorder-server/internal/codes/processor"
	downloadsHandler "preorder-server/internal/downloads/handler"
	downloadsProcessor "preorder-server/internal/downloads/processor"
	newsletterHandler "preorder-server/internal/newsletter/handler"
	newsletterProcessor "preorder-server/internal/newsletter/processor"
	receiptsHandler "preorder-server/internal/receipts/handler"
	receiptsProcessor "preorder-server/internal/receipts/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	ReceiptsHandler   receiptsHandler.Handler
	DownloadsHandler  downloadsHandler.Handler
	NewsletterHandler newsletterHandler.Handler
	CodesHandler      codesHandler.Handler
	AdminAuth         *auth.AdminMiddleware

	// Shared by the HTTP server and the worker process
	ReceiptProcessor *receiptsProcessor.Processor
	Fulfillment      *fulfillment.Service
	CodesProcessor   *codesProcessor.Processor
	Limiter          ratelimit.Limiter
	// MemoryLimiter is non-nil only when Redis is disabled; the scheduler
	// sweeps it periodically.
	MemoryLimiter *ratelimit.MemoryLimiter

	// Clients needing cleanup
	JobClient *jobs.Client
	Redis     *redisClient.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Clients
	mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create resend client: %w", err)
	}
	llm, err := openaiClient.NewClient(cfg.Services.OpenAIAPIKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}
	vision, err := googleai.NewVisionClient(cfg.Services.GoogleAIAPIKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}

	var files storage.FileStore
	switch cfg.Storage.Backend {
	case "s3":
		files, err = storage.NewS3Store(cfg.Storage, logger)
	default:
		files, err = storage.NewLocalStore(cfg.Storage.LocalDir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create file store: %w", err)
	}

	// Rate limiter backend follows the Redis toggle so single-node deploys
	// need no Redis at all for the HTTP side.
	if cfg.Redis.Enabled {
		deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		deps.Limiter = ratelimit.NewRedisLimiter(deps.Redis.GetClient())
	} else {
		deps.MemoryLimiter = ratelimit.NewMemoryLimiter()
		deps.Limiter = deps.MemoryLimiter
	}

	deps.JobClient = jobs.NewClient(cfg.Redis.Addr, logger)

	// Core services
	emailService := email.New(mailClient, cfg.Services.DefaultEmailSender, logger)
	codec := tokens.NewCodec(cfg.Downloads.TokenSecret)
	extractor := ocr.NewExtractor(vision, llm, logger)
	parser := receiptsProcessor.NewParser(llm, logger)

	deps.Fulfillment = fulfillment.New(&deps.Store, codec, emailService, cfg.Downloads.BaseURL, logger)
	deps.ReceiptProcessor = receiptsProcessor.New(&deps.Store, files, extractor, parser,
		deps.Fulfillment, deps.JobClient, emailService, cfg.Receipts.OCRMaxAttempts, logger)
	deps.CodesProcessor = codesProcessor.New(&deps.Store, logger)

	intake := receiptsProcessor.NewIntake(&deps.Store, files, deps.JobClient, cfg.Receipts.MaxUploadBytes, logger)
	gate := downloadsProcessor.New(codec, &deps.Store, files, deps.Limiter, logger)
	newsProc := newsletterProcessor.New(&deps.Store, codec, emailService, cfg.Downloads.BaseURL, logger)

	// Handlers
	deps.ReceiptsHandler = receiptsHandler.New(intake, deps.ReceiptProcessor, deps.Fulfillment,
		cfg.Receipts.MaxUploadBytes, logger)
	deps.DownloadsHandler = downloadsHandler.New(gate, logger)
	deps.NewsletterHandler = newsletterHandler.New(newsProc, logger)
	deps.CodesHandler = codesHandler.New(deps.CodesProcessor, logger)
	deps.AdminAuth = auth.NewAdminMiddleware(cfg.Admin.APIKeyHash, logger)

	return deps, nil
}

// Cleanup releases client connections
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.JobClient != nil {
		if err := d.JobClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close job client", err)
		}
	}
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close redis client", err)
		}
	}
}
