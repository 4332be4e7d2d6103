package handler

import (
	"net/http"
	"preorder-server/internal/apierrors"
	"preorder-server/internal/newsletter/processor"
	"preorder-server/internal/observability"

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

// SubscribeRequest represents the HTTP request for joining the mailing list
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// HandleSubscribe handles POST /api/newsletter/subscribe
func (h *Handler) HandleSubscribe(c *gin.Context) {
	ctx := c.Request.Context()

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			apierrors.RespondWithValidationError(c, err)
			return
		}
		h.logger.Error(ctx, "failed to bind subscribe request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sub, err := h.processor.Subscribe(ctx, req.Email)
	if err != nil {
		h.logger.Error(ctx, "failed to subscribe", err)
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":  sub.Status,
		"message": "Check your inbox to confirm your subscription",
	})
}

// HandleConfirm handles GET /api/newsletter/confirm
func (h *Handler) HandleConfirm(c *gin.Context) {
	ctx := c.Request.Context()

	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	sub, err := h.processor.Confirm(ctx, token)
	if err != nil {
		h.logger.Error(ctx, "failed to confirm subscription", err)
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  sub.Status,
		"message": "Subscription confirmed",
	})
}

// HandleUnsubscribe handles GET /api/newsletter/unsubscribe
func (h *Handler) HandleUnsubscribe(c *gin.Context) {
	ctx := c.Request.Context()

	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	sub, err := h.processor.Unsubscribe(ctx, token)
	if err != nil {
		h.logger.Error(ctx, "failed to unsubscribe", err)
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  sub.Status,
		"message": "You have been unsubscribed",
	})
}

// HandleGetSubscriber handles GET /api/admin/newsletter/:email
func (h *Handler) HandleGetSubscriber(c *gin.Context) {
	ctx := c.Request.Context()

	email := c.Param("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	sub, err := h.processor.Status(ctx, email)
	if err != nil {
		h.logger.Error(ctx, "failed to get subscriber", err)
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}
