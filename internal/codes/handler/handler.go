package handler

import (
	"net/http"
	"preorder-server/internal/apierrors"
	"preorder-server/internal/codes/processor"
	"preorder-server/internal/observability"
	"preorder-server/internal/store"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	processor *processor.Processor
	logger    *observability.Logger
}

func New(processor *processor.Processor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// IssueBatchRequest represents the HTTP request for issuing a batch of access codes
type IssueBatchRequest struct {
	Count          int                    `json:"count" binding:"required,min=1,max=1000"`
	MaxRedemptions int                    `json:"max_redemptions" binding:"required,min=1"`
	ValidFrom      time.Time              `json:"valid_from" binding:"required"`
	ValidUntil     time.Time              `json:"valid_until" binding:"required"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
}

// HandleIssueBatch handles POST /api/admin/codes
func (h *Handler) HandleIssueBatch(c *gin.Context) {
	ctx := c.Request.Context()

	var req IssueBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			apierrors.RespondWithValidationError(c, err)
			return
		}
		h.logger.Error(ctx, "failed to bind issue batch request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	codes, err := h.processor.IssueBatch(ctx, req.Count, req.MaxRedemptions, req.ValidFrom, req.ValidUntil, store.JSONB(req.Metadata))
	if err != nil {
		h.logger.Error(ctx, "failed to issue access code batch", err)
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"count": len(codes),
		"codes": codes,
	})
}

// HandleListCodes handles GET /api/admin/codes
func (h *Handler) HandleListCodes(c *gin.Context) {
	ctx := c.Request.Context()

	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if v, err := strconv.Atoi(limitStr); err == nil {
			limit = v
		}
	}
	offset := 0
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if v, err := strconv.Atoi(offsetStr); err == nil {
			offset = v
		}
	}

	codes, err := h.processor.List(ctx, limit, offset)
	if err != nil {
		h.logger.Error(ctx, "failed to list access codes", err)
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"codes": codes})
}

// HandleRevokeCode handles POST /api/admin/codes/:code/revoke
func (h *Handler) HandleRevokeCode(c *gin.Context) {
	ctx := c.Request.Context()

	code := c.Param("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}

	revoked, err := h.processor.Revoke(ctx, code)
	if err != nil {
		h.logger.Error(ctx, "failed to revoke access code", err)
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, revoked)
}

// RedeemRequest represents the HTTP request for redeeming an access code
type RedeemRequest struct {
	Code string `json:"code" binding:"required"`
}

// HandleRedeemCode handles POST /api/codes/redeem
func (h *Handler) HandleRedeemCode(c *gin.Context) {
	ctx := c.Request.Context()

	var req RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			apierrors.RespondWithValidationError(c, err)
			return
		}
		h.logger.Error(ctx, "failed to bind redeem request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	redeemed, err := h.processor.Redeem(ctx, req.Code)
	if err != nil {
		h.logger.Error(ctx, "failed to redeem access code", err)
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":             redeemed.Code,
		"status":           redeemed.Status,
		"redemption_count": redeemed.RedemptionCount,
	})
}
