package processor

import (
	"context"

	"github.com/google/uuid"

	"preorder-server/internal/ocr"
	"preorder-server/internal/store"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=processor

// ReceiptStore is the persistence surface the pipeline needs.
type ReceiptStore interface {
	GetReceiptByID(ctx context.Context, receiptID uuid.UUID) (store.Receipt, error)
	UpdateReceipt(ctx context.Context, receiptID uuid.UUID, params store.UpdateReceiptParams) (store.Receipt, error)
	GetBonusClaimByReceiptID(ctx context.Context, receiptID uuid.UUID) (store.BonusClaim, error)
	UpdateBonusClaim(ctx context.Context, claimID uuid.UUID, params store.UpdateBonusClaimParams) (store.BonusClaim, error)
}

// FileStore fetches the raw uploaded receipt file.
type FileStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// TextExtractor runs OCR plus PII redaction over the uploaded file.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, mimeType string) (ocr.Extraction, error)
}

// CompletionClient answers a system/user prompt pair with plain text.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
}

// ReceiptParser turns redacted receipt text into structured fields.
type ReceiptParser interface {
	Parse(ctx context.Context, redactedText string) (ParsedReceipt, error)
}

// Fulfiller delivers the bonus pack for an approved claim.
type Fulfiller interface {
	Deliver(ctx context.Context, claimID uuid.UUID) error
}

// DeliveryQueue hands an approved claim to the durable delivery queue.
type DeliveryQueue interface {
	EnqueueClaimDelivery(ctx context.Context, claimID uuid.UUID) error
}

// Notifier sends best-effort status emails to the receipt owner.
type Notifier interface {
	SendReceiptVerifiedEmail(ctx context.Context, to, bookTitle, retailer string) error
	SendReceiptRejectedEmail(ctx context.Context, to, bookTitle, reason string) error
	SendReceiptPendingReviewEmail(ctx context.Context, to, bookTitle string) error
}
