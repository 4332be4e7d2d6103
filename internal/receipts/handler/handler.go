package handler

import (
	"io"
	"net/http"
	"preorder-server/internal/apierrors"
	"preorder-server/internal/fulfillment"
	"preorder-server/internal/observability"
	"preorder-server/internal/receipts/processor"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type Handler struct {
	intake         *processor.Intake
	processor      *processor.Processor
	fulfillment    *fulfillment.Service
	logger         *observability.Logger
	maxUploadBytes int64
}

func New(intake *processor.Intake, receiptProcessor *processor.Processor,
	fulfillmentService *fulfillment.Service, maxUploadBytes int64,
	logger *observability.Logger) Handler {
	return Handler{
		intake:         intake,
		processor:      receiptProcessor,
		fulfillment:    fulfillmentService,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

// HandleSubmitReceipt handles POST /api/receipts. The body is a multipart
// form with an "email" field and a "file" part holding the receipt image.
func (h *Handler) HandleSubmitReceipt(c *gin.Context) {
	ctx := c.Request.Context()

	// Reject oversized bodies before buffering the file. The intake performs
	// the authoritative size check on the decoded part.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+64*1024)

	email := c.PostForm("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.logger.Error(ctx, "failed to read receipt file from request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "receipt file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error(ctx, "failed to buffer receipt file", err)
		apierrors.RespondWithError(c, apierrors.ContentTooLarge("Receipt file is too large. Maximum size is 10MB."))
		return
	}

	result, err := h.intake.Submit(ctx, processor.SubmitRequest{
		Email:    email,
		FileName: header.Filename,
		Data:     data,
	})
	if err != nil {
		h.logger.Error(ctx, "failed to submit receipt", err)
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"receipt_id": result.Receipt.ID,
		"claim_id":   result.Claim.ID,
		"status":     result.Receipt.Status,
		"message":    "Receipt received. Verification usually takes a minute or two.",
	})
}

// HandleGetReceiptStatus handles GET /api/receipts/:receipt_id
func (h *Handler) HandleGetReceiptStatus(c *gin.Context) {
	ctx := c.Request.Context()

	receiptID, err := uuid.Parse(c.Param("receipt_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid receipt id"})
		return
	}

	result, err := h.intake.Status(ctx, receiptID)
	if err != nil {
		h.logger.Error(ctx, "failed to get receipt status", err)
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ApproveRequest represents the HTTP request for manually approving a receipt
type ApproveRequest struct {
	AdminID string `json:"admin_id" binding:"required"`
	Notes   string `json:"notes,omitempty"`
}

// HandleApproveReceipt handles POST /api/admin/receipts/:receipt_id/approve
func (h *Handler) HandleApproveReceipt(c *gin.Context) {
	ctx := c.Request.Context()

	receiptID, err := uuid.Parse(c.Param("receipt_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid receipt id"})
		return
	}

	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			apierrors.RespondWithValidationError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.processor.ManuallyApprove(ctx, receiptID, req.AdminID, req.Notes); err != nil {
		h.logger.Error(ctx, "failed to approve receipt", err)
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Receipt approved"})
}

// RejectRequest represents the HTTP request for manually rejecting a receipt
type RejectRequest struct {
	AdminID string `json:"admin_id" binding:"required"`
	Reason  string `json:"reason" binding:"required"`
}

// HandleRejectReceipt handles POST /api/admin/receipts/:receipt_id/reject
func (h *Handler) HandleRejectReceipt(c *gin.Context) {
	ctx := c.Request.Context()

	receiptID, err := uuid.Parse(c.Param("receipt_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid receipt id"})
		return
	}

	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			apierrors.RespondWithValidationError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.processor.ManuallyReject(ctx, receiptID, req.AdminID, req.Reason); err != nil {
		h.logger.Error(ctx, "failed to reject receipt", err)
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Receipt rejected"})
}

// HandleListUserReceipts handles GET /api/admin/users/:email/receipts
func (h *Handler) HandleListUserReceipts(c *gin.Context) {
	ctx := c.Request.Context()

	email := c.Param("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	receipts, err := h.intake.ReceiptsForEmail(ctx, email)
	if err != nil {
		h.logger.Error(ctx, "failed to list user receipts", err)
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"receipts": receipts})
}

// HandleResendDelivery handles POST /api/admin/claims/:claim_id/resend
func (h *Handler) HandleResendDelivery(c *gin.Context) {
	ctx := c.Request.Context()

	claimID, err := uuid.Parse(c.Param("claim_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid claim id"})
		return
	}

	if err := h.fulfillment.Resend(ctx, claimID); err != nil {
		h.logger.Error(ctx, "failed to resend bonus pack", err)
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bonus pack re-sent"})
}
