package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"preorder-server/internal/apierrors"
	"preorder-server/internal/downloads/processor"
	"preorder-server/internal/observability"
	"preorder-server/internal/tokens"
)

type Handler struct {
	gate   *processor.Processor
	logger *observability.Logger
}

func New(gate *processor.Processor, logger *observability.Logger) Handler {
	return Handler{
		gate:   gate,
		logger: logger,
	}
}

// HandleDownload handles GET /download/:asset_key
func (h *Handler) HandleDownload(c *gin.Context) {
	ctx := c.Request.Context()
	assetKey := c.Param("asset_key")

	token := tokenFromRequest(c)
	if token == "" {
		apierrors.RespondWithError(c, tokens.ErrMalformedToken)
		return
	}

	download, err := h.gate.Resolve(ctx, assetKey, token)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", download.Asset.FileName))
	c.Data(http.StatusOK, download.Asset.ContentType, download.Data)
}

// tokenFromRequest reads the token from the Authorization header, falling
// back to the token query parameter when the header is absent.
func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		if after, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
			return strings.TrimSpace(after)
		}
		return ""
	}
	return c.Query("token")
}
