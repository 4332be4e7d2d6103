package ratelimit

import (
	"fmt"
	"net/http"
	"time"

	"preorder-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware creates a Gin middleware gating a route group behind the limiter,
// keyed by client IP. Used to bound admission to expensive endpoints such as
// receipt upload; it does not bound in-flight processing duration.
func Middleware(limiter Limiter, logger *observability.Logger, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("ip:%s", observability.GetRealClientIP(c))

		result, err := limiter.Check(ctx, key, maxRequests, window)
		if err != nil {
			// A broken limiter backend must not take the endpoint down with it.
			logger.Error(ctx, "rate limit check failed", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			retryAfter := time.Until(result.ResetAt)
			if retryAfter < 0 {
				retryAfter = 0
			}
			c.Header("Retry-After", fmt.Sprintf("%d", int(retryAfter.Seconds())))
			logger.Warn(ctx, "rate limit exceeded")

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":    "Rate limit exceeded",
				"code":     "RATE_LIMIT_EXCEEDED",
				"limit":    result.Limit,
				"reset_at": result.ResetAt.Unix(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
