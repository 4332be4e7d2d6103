package processor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"preorder-server/internal/observability"
	"preorder-server/internal/ocr"
	"preorder-server/internal/store"
)

// Rejection and hold reasons surfaced on receipts
const (
	reasonOCRFailed       = "OCR extraction failed"
	reasonModerateScore   = "Moderate confidence - manual review recommended"
	reasonLowScore        = "Low confidence score"
	reasonProcessingError = "Processing error - requires manual review"
)

// Decision thresholds for the verification score and parser confidence
const (
	verifyScoreThreshold      = 80
	verifyConfidenceThreshold = 0.8
	reviewScoreThreshold      = 60
)

// ProcessResult carries everything a single processing pass decided, for the
// API layer to report back and for tests to assert on.
type ProcessResult struct {
	Success              bool          `json:"success"`
	Status               string        `json:"status"`
	Score                int           `json:"score"`
	Confidence           float64       `json:"confidence"`
	Parsed               ParsedReceipt `json:"parsed"`
	FraudReasons         []string      `json:"fraud_reasons,omitempty"`
	RequiresManualReview bool          `json:"requires_manual_review"`
	ManualReviewReason   string        `json:"manual_review_reason,omitempty"`
	RejectionReason      string        `json:"rejection_reason,omitempty"`
	PIIDetected          []string      `json:"pii_detected,omitempty"`
	Error                string        `json:"error,omitempty"`
}

// Processor runs the receipt verification pipeline: fetch file, OCR and
// redact, parse, fraud check, score, decide, persist, fulfill, notify.
type Processor struct {
	receiptStore   ReceiptStore
	files          FileStore
	extractor      TextExtractor
	parser         ReceiptParser
	fulfiller      Fulfiller
	deliveryQueue  DeliveryQueue
	notifier       Notifier
	ocrMaxAttempts int
	logger         *observability.Logger
	now            func() time.Time
}

func New(receiptStore ReceiptStore, files FileStore, extractor TextExtractor, parser ReceiptParser,
	fulfiller Fulfiller, deliveryQueue DeliveryQueue, notifier Notifier, ocrMaxAttempts int,
	logger *observability.Logger) *Processor {
	if ocrMaxAttempts < 1 {
		ocrMaxAttempts = 1
	}
	return &Processor{
		receiptStore:   receiptStore,
		files:          files,
		extractor:      extractor,
		parser:         parser,
		fulfiller:      fulfiller,
		deliveryQueue:  deliveryQueue,
		notifier:       notifier,
		ocrMaxAttempts: ocrMaxAttempts,
		logger:         logger,
		now:            time.Now,
	}
}

// Process runs one full verification pass for a receipt. It is safe to call
// again for the same receipt: a receipt that already left PENDING is not
// re-scored, so queue re-deliveries after a crash are harmless.
//
// Any unexpected panic is caught at this boundary and the receipt is held in
// PENDING for human triage rather than silently lost.
func (p *Processor) Process(ctx context.Context, receiptID uuid.UUID) (result ProcessResult) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "receipt_id", Value: receiptID.String()})

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic during receipt processing: %v", r)
			p.logger.Error(ctx, "receipt processing panicked", err)
			result = p.holdForReview(ctx, receiptID, err)
		}
	}()

	receipt, err := p.receiptStore.GetReceiptByID(ctx, receiptID)
	if err != nil {
		return ProcessResult{Success: false, Error: fmt.Sprintf("failed to load receipt: %v", err)}
	}

	if receipt.Status != store.ReceiptStatusPending {
		p.logger.Info(observability.WithFields(ctx,
			observability.Field{Key: "status", Value: receipt.Status}),
			"receipt already decided, skipping reprocess")
		return ProcessResult{Success: true, Status: receipt.Status}
	}

	data, err := p.files.Get(ctx, receipt.FileKey)
	if err != nil {
		p.logger.Error(ctx, "failed to fetch receipt file", err)
		return p.holdForReview(ctx, receiptID, err)
	}

	mimeType := mimeTypeForFile(receipt.FileName)

	var extraction ocr.Extraction
	var ocrErr error
	attempts := 0
	for attempts < p.ocrMaxAttempts {
		attempts++
		extraction, ocrErr = p.extractor.Extract(ctx, data, mimeType)
		if ocrErr == nil {
			break
		}
		p.logger.InfoWithError(observability.WithFields(ctx,
			observability.Field{Key: "ocr_attempt", Value: attempts}),
			"OCR attempt failed", ocrErr)
	}
	totalAttempts := receipt.OCRAttempts + attempts

	if ocrErr != nil {
		return p.rejectForOCRFailure(ctx, receipt, totalAttempts)
	}

	parsed, err := p.parser.Parse(ctx, extraction.RedactedText)
	if err != nil {
		p.logger.Error(ctx, "receipt parsing failed", err)
		return p.holdForReview(ctx, receiptID, err)
	}

	fraud := CheckFraud(parsed, p.now())
	scoreVal := Score(parsed)
	status, manualReview, reason := decide(fraud, scoreVal, parsed, extraction)

	params := store.UpdateReceiptParams{
		Status:            &status,
		VerificationScore: &scoreVal,
		OCRAttempts:       &totalAttempts,
	}
	if parsed.Retailer != "" {
		params.Retailer = &parsed.Retailer
	}
	if parsed.Format != "" {
		params.Format = &parsed.Format
	}
	if purchaseDate, dateErr := time.Parse("2006-01-02", parsed.PurchaseDate); dateErr == nil {
		params.PurchaseDate = &purchaseDate
	}
	if status == store.ReceiptStatusVerified {
		verifiedAt := p.now()
		params.VerifiedAt = &verifiedAt
	}
	if reason != "" {
		params.RejectionReason = &reason
	}

	if _, err := p.receiptStore.UpdateReceipt(ctx, receiptID, params); err != nil {
		p.logger.Error(ctx, "failed to persist receipt decision", err)
		return p.holdForReview(ctx, receiptID, err)
	}

	claim, claimErr := p.receiptStore.GetBonusClaimByReceiptID(ctx, receiptID)
	claimFound := claimErr == nil
	if !claimFound {
		p.logger.InfoWithError(ctx, "no bonus claim linked to receipt", claimErr)
	}

	if claimFound {
		switch status {
		case store.ReceiptStatusVerified:
			p.approveClaim(ctx, claim)
		case store.ReceiptStatusRejected:
			p.rejectClaim(ctx, claim)
		}
	}

	p.notify(ctx, claim, claimFound, status, parsed.Retailer, reason)

	resultReason := ""
	rejectionReason := ""
	if manualReview {
		resultReason = reason
	} else if status == store.ReceiptStatusRejected {
		rejectionReason = reason
	}

	return ProcessResult{
		Success:              true,
		Status:               status,
		Score:                scoreVal,
		Confidence:           parsed.Confidence,
		Parsed:               parsed,
		FraudReasons:         fraud.Reasons,
		RequiresManualReview: manualReview,
		ManualReviewReason:   resultReason,
		RejectionReason:      rejectionReason,
		PIIDetected:          extraction.PIIDetected,
	}
}

// decide applies the decision policy in strict precedence: fraud first, then
// the verify thresholds, then the manual review band, then auto-reject. A
// receipt that clears the verify thresholds but carries a manual review flag
// from extraction or parsing is held rather than verified.
func decide(fraud FraudCheck, score int, parsed ParsedReceipt, extraction ocr.Extraction) (status string, manualReview bool, reason string) {
	switch {
	case fraud.IsFraudulent:
		return store.ReceiptStatusRejected, false, "Fraud detected: " + strings.Join(fraud.Reasons, "; ")
	case score >= verifyScoreThreshold && parsed.Confidence >= verifyConfidenceThreshold:
		if extraction.RequiresManualReview || parsed.RequiresManualReview {
			return store.ReceiptStatusPending, true, firstNonEmpty(parsed.ManualReviewReason, "Extraction flagged for manual review")
		}
		return store.ReceiptStatusVerified, false, ""
	case score >= reviewScoreThreshold:
		return store.ReceiptStatusPending, true, firstNonEmpty(parsed.ManualReviewReason, reasonModerateScore)
	default:
		return store.ReceiptStatusRejected, false, firstNonEmpty(parsed.ManualReviewReason, reasonLowScore)
	}
}

// ManuallyApprove force-verifies a receipt, bypassing the decision policy,
// and delivers the bonus pack inline so the administrator sees a send
// failure immediately. The approval is persisted even if fulfillment fails;
// the returned error then signals that a resend is needed.
func (p *Processor) ManuallyApprove(ctx context.Context, receiptID uuid.UUID, adminID, notes string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "receipt_id", Value: receiptID.String()},
		observability.Field{Key: "admin_id", Value: adminID})

	status := store.ReceiptStatusVerified
	verifiedAt := p.now()
	if _, err := p.receiptStore.UpdateReceipt(ctx, receiptID, store.UpdateReceiptParams{
		Status:     &status,
		VerifiedAt: &verifiedAt,
		VerifiedBy: &adminID,
	}); err != nil {
		return fmt.Errorf("failed to approve receipt: %w", err)
	}

	claim, err := p.receiptStore.GetBonusClaimByReceiptID(ctx, receiptID)
	if err != nil {
		return fmt.Errorf("failed to load claim for approved receipt: %w", err)
	}

	approved := store.ClaimStatusApproved
	processedAt := p.now()
	claimParams := store.UpdateBonusClaimParams{
		Status:      &approved,
		ProcessedBy: &adminID,
		ProcessedAt: &processedAt,
	}
	if notes != "" {
		claimParams.AdminNotes = &notes
	}
	if _, err := p.receiptStore.UpdateBonusClaim(ctx, claim.ID, claimParams); err != nil {
		return fmt.Errorf("failed to approve claim: %w", err)
	}

	if err := p.fulfiller.Deliver(ctx, claim.ID); err != nil {
		p.logger.Error(ctx, "fulfillment after manual approval failed", err)
		return fmt.Errorf("receipt approved but delivery failed: %w", err)
	}
	return nil
}

// ManuallyReject force-rejects a receipt and its claim with the given reason.
func (p *Processor) ManuallyReject(ctx context.Context, receiptID uuid.UUID, adminID, reason string) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "receipt_id", Value: receiptID.String()},
		observability.Field{Key: "admin_id", Value: adminID})

	status := store.ReceiptStatusRejected
	if _, err := p.receiptStore.UpdateReceipt(ctx, receiptID, store.UpdateReceiptParams{
		Status:          &status,
		VerifiedBy:      &adminID,
		RejectionReason: &reason,
	}); err != nil {
		return fmt.Errorf("failed to reject receipt: %w", err)
	}

	claim, err := p.receiptStore.GetBonusClaimByReceiptID(ctx, receiptID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load claim for rejected receipt: %w", err)
	}

	rejected := store.ClaimStatusRejected
	processedAt := p.now()
	if _, err := p.receiptStore.UpdateBonusClaim(ctx, claim.ID, store.UpdateBonusClaimParams{
		Status:      &rejected,
		ProcessedBy: &adminID,
		ProcessedAt: &processedAt,
		AdminNotes:  &reason,
	}); err != nil {
		return fmt.Errorf("failed to reject claim: %w", err)
	}
	return nil
}

// rejectForOCRFailure terminates the pass after exhausted OCR attempts.
func (p *Processor) rejectForOCRFailure(ctx context.Context, receipt store.Receipt, attempts int) ProcessResult {
	status := store.ReceiptStatusRejected
	reason := reasonOCRFailed
	if _, err := p.receiptStore.UpdateReceipt(ctx, receipt.ID, store.UpdateReceiptParams{
		Status:          &status,
		RejectionReason: &reason,
		OCRAttempts:     &attempts,
	}); err != nil {
		p.logger.Error(ctx, "failed to persist OCR rejection", err)
		return p.holdForReview(ctx, receipt.ID, err)
	}

	claim, err := p.receiptStore.GetBonusClaimByReceiptID(ctx, receipt.ID)
	claimFound := err == nil
	if claimFound {
		p.rejectClaim(ctx, claim)
	}
	p.notify(ctx, claim, claimFound, status, "", reason)

	return ProcessResult{
		Success:         true,
		Status:          status,
		RejectionReason: reason,
	}
}

// holdForReview parks the receipt in PENDING with a triage reason after an
// unexpected failure. The reason lands in the rejection reason column even
// though the receipt is not rejected, so an administrator can see it.
func (p *Processor) holdForReview(ctx context.Context, receiptID uuid.UUID, cause error) ProcessResult {
	status := store.ReceiptStatusPending
	reason := reasonProcessingError
	if _, err := p.receiptStore.UpdateReceipt(ctx, receiptID, store.UpdateReceiptParams{
		Status:          &status,
		RejectionReason: &reason,
	}); err != nil {
		p.logger.Error(ctx, "failed to hold receipt for review", err)
	}
	return ProcessResult{
		Success:              false,
		Status:               status,
		RequiresManualReview: true,
		ManualReviewReason:   reason,
		Error:                cause.Error(),
	}
}

func (p *Processor) approveClaim(ctx context.Context, claim store.BonusClaim) {
	approved := store.ClaimStatusApproved
	processedAt := p.now()
	if _, err := p.receiptStore.UpdateBonusClaim(ctx, claim.ID, store.UpdateBonusClaimParams{
		Status:      &approved,
		ProcessedAt: &processedAt,
	}); err != nil {
		p.logger.Error(ctx, "failed to approve claim", err)
		return
	}
	// Delivery runs through the durable queue: a crash between approval and
	// the send cannot lose the bonus pack, and the worker retries transient
	// send failures. Verified status stands even if the enqueue fails; an
	// admin resend recovers.
	if err := p.deliveryQueue.EnqueueClaimDelivery(ctx, claim.ID); err != nil {
		p.logger.Error(ctx, "failed to enqueue bonus pack delivery", err)
	}
}

func (p *Processor) rejectClaim(ctx context.Context, claim store.BonusClaim) {
	rejected := store.ClaimStatusRejected
	processedAt := p.now()
	if _, err := p.receiptStore.UpdateBonusClaim(ctx, claim.ID, store.UpdateBonusClaimParams{
		Status:      &rejected,
		ProcessedAt: &processedAt,
	}); err != nil {
		p.logger.Error(ctx, "failed to reject claim", err)
	}
}

// notify sends the status email best-effort: a send failure never rolls back
// the decision already persisted.
func (p *Processor) notify(ctx context.Context, claim store.BonusClaim, claimFound bool, status, retailer, reason string) {
	if !claimFound || claim.DeliveryEmail == "" {
		return
	}
	var err error
	switch status {
	case store.ReceiptStatusVerified:
		err = p.notifier.SendReceiptVerifiedEmail(ctx, claim.DeliveryEmail, ExpectedBookTitle, retailer)
	case store.ReceiptStatusRejected:
		err = p.notifier.SendReceiptRejectedEmail(ctx, claim.DeliveryEmail, ExpectedBookTitle, reason)
	case store.ReceiptStatusPending:
		err = p.notifier.SendReceiptPendingReviewEmail(ctx, claim.DeliveryEmail, ExpectedBookTitle)
	}
	if err != nil {
		p.logger.InfoWithError(ctx, "status notification failed", err)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// mimeTypeForFile derives the MIME type from the file extension, an accepted
// simplification over sniffing magic bytes.
func mimeTypeForFile(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
