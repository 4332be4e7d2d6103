package api

import (
	"net/http"
	"time"

	"preorder-server/internal/auth"
	codesHandler "preorder-server/internal/codes/handler"
	downloadsHandler "preorder-server/internal/downloads/handler"
	newsletterHandler "preorder-server/internal/newsletter/handler"
	"preorder-server/internal/observability"
	"preorder-server/internal/ratelimit"
	receiptsHandler "preorder-server/internal/receipts/handler"

	"github.com/gin-gonic/gin"
)

// Public endpoint rate limits. The download endpoint enforces its own
// per-email limit inside the gate.
const (
	uploadRateLimit      = 5
	uploadRateWindow     = 15 * time.Minute
	newsletterRateLimit  = 5
	newsletterRateWindow = time.Hour
	codeRedeemRateLimit  = 20
	codeRedeemRateWindow = time.Hour
)

type API struct {
	router            *gin.RouterGroup
	receiptsHandler   receiptsHandler.Handler
	downloadsHandler  downloadsHandler.Handler
	newsletterHandler newsletterHandler.Handler
	codesHandler      codesHandler.Handler
	adminAuth         *auth.AdminMiddleware
	limiter           ratelimit.Limiter
	logger            *observability.Logger
}

func New(router *gin.RouterGroup, receiptsHandler receiptsHandler.Handler,
	downloadsHandler downloadsHandler.Handler, newsletterHandler newsletterHandler.Handler,
	codesHandler codesHandler.Handler, adminAuth *auth.AdminMiddleware,
	limiter ratelimit.Limiter, logger *observability.Logger) API {
	return API{
		router:            router,
		receiptsHandler:   receiptsHandler,
		downloadsHandler:  downloadsHandler,
		newsletterHandler: newsletterHandler,
		codesHandler:      codesHandler,
		adminAuth:         adminAuth,
		limiter:           limiter,
		logger:            logger,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()

	// Signed download links live outside /api so they read naturally in email.
	a.router.GET("/download/:asset_key", a.downloadsHandler.HandleDownload)

	apiGroup := a.router.Group("/api")
	{
		receiptsGroup := apiGroup.Group("/receipts")
		receiptsGroup.POST("",
			ratelimit.Middleware(a.limiter, a.logger, uploadRateLimit, uploadRateWindow),
			a.receiptsHandler.HandleSubmitReceipt)
		receiptsGroup.GET("/:receipt_id", a.receiptsHandler.HandleGetReceiptStatus)

		newsletterGroup := apiGroup.Group("/newsletter")
		newsletterGroup.POST("/subscribe",
			ratelimit.Middleware(a.limiter, a.logger, newsletterRateLimit, newsletterRateWindow),
			a.newsletterHandler.HandleSubscribe)
		newsletterGroup.GET("/confirm", a.newsletterHandler.HandleConfirm)
		newsletterGroup.GET("/unsubscribe", a.newsletterHandler.HandleUnsubscribe)

		apiGroup.POST("/codes/redeem",
			ratelimit.Middleware(a.limiter, a.logger, codeRedeemRateLimit, codeRedeemRateWindow),
			a.codesHandler.HandleRedeemCode)
	}

	adminGroup := apiGroup.Group("/admin", a.adminAuth.Authenticate())
	{
		adminGroup.POST("/receipts/:receipt_id/approve", a.receiptsHandler.HandleApproveReceipt)
		adminGroup.POST("/receipts/:receipt_id/reject", a.receiptsHandler.HandleRejectReceipt)
		adminGroup.POST("/claims/:claim_id/resend", a.receiptsHandler.HandleResendDelivery)
		adminGroup.GET("/users/:email/receipts", a.receiptsHandler.HandleListUserReceipts)

		adminGroup.POST("/codes", a.codesHandler.HandleIssueBatch)
		adminGroup.GET("/codes", a.codesHandler.HandleListCodes)
		adminGroup.POST("/codes/:code/revoke", a.codesHandler.HandleRevokeCode)

		adminGroup.GET("/newsletter/:email", a.newsletterHandler.HandleGetSubscriber)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
