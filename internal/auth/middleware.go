package auth

import (
	"net/http"
	"preorder-server/internal/observability"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminMiddleware authenticates admin endpoints against a single bcrypt-hashed
// API key. The plaintext key never touches the environment or the database.
type AdminMiddleware struct {
	apiKeyHash string
	logger     *observability.Logger
}

func NewAdminMiddleware(apiKeyHash string, logger *observability.Logger) *AdminMiddleware {
	return &AdminMiddleware{
		apiKeyHash: apiKeyHash,
		logger:     logger,
	}
}

// Authenticate validates the Bearer API key on admin routes.
func (m *AdminMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if m.apiKeyHash == "" {
			m.logger.Error(ctx, "admin API key hash is not configured", nil)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Admin API is not configured",
				"code":  "CONFIGURATION_ERROR",
			})
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			m.logger.Warn(ctx, "missing authorization header on admin route")
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Missing authorization header",
				"code":  "UNAUTHORIZED",
			})
			c.Abort()
			return
		}

		apiKey, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || apiKey == "" {
			m.logger.Warn(ctx, "invalid authorization header format on admin route")
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization header format",
				"code":  "UNAUTHORIZED",
			})
			c.Abort()
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(m.apiKeyHash), []byte(apiKey)); err != nil {
			m.logger.Warn(ctx, "admin API key rejected")
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid API key",
				"code":  "UNAUTHORIZED",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
