package processor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"preorder-server/internal/observability"
	"preorder-server/internal/store"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrFileTooLarge is returned when an upload exceeds the configured limit.
	ErrFileTooLarge = errors.New("receipt file exceeds upload limit")
	// ErrUnsupportedFileType is returned for uploads that are not an image or PDF.
	ErrUnsupportedFileType = errors.New("unsupported receipt file type")
)

var allowedUploadExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".pdf":  true,
}

//go:generate mockgen -source=intake.go -destination=intake_mocks_test.go -package=processor

// IntakeStore persists the records created when a receipt is submitted.
type IntakeStore interface {
	UpsertUserByEmail(ctx context.Context, email string, firstName, lastName *string) (store.User, error)
	GetReceiptByFileHash(ctx context.Context, fileHash string) (store.Receipt, error)
	CreateReceipt(ctx context.Context, params store.CreateReceiptParams) (store.Receipt, error)
	CreateDuplicateReceipt(ctx context.Context, params store.CreateDuplicateReceiptParams) (store.Receipt, error)
	CreateBonusClaim(ctx context.Context, params store.CreateBonusClaimParams) (store.BonusClaim, error)
	GetReceiptByID(ctx context.Context, receiptID uuid.UUID) (store.Receipt, error)
	GetBonusClaimByReceiptID(ctx context.Context, receiptID uuid.UUID) (store.BonusClaim, error)
	GetUserByEmail(ctx context.Context, email string) (store.User, error)
	GetReceiptsByUserID(ctx context.Context, userID uuid.UUID) ([]store.Receipt, error)
}

// FileUploader stores uploaded receipt files.
type FileUploader interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
}

// TaskEnqueuer hands a submitted receipt to the background verification queue.
type TaskEnqueuer interface {
	EnqueueReceiptProcessing(ctx context.Context, receiptID uuid.UUID) error
}

// SubmitRequest carries one uploaded receipt.
type SubmitRequest struct {
	Email    string
	FileName string
	Data     []byte
}

// SubmitResult is returned to the uploader while verification runs in the
// background.
type SubmitResult struct {
	Receipt store.Receipt    `json:"receipt"`
	Claim   store.BonusClaim `json:"claim"`
}

// StatusResult pairs a receipt with its bonus claim for the status endpoint.
type StatusResult struct {
	Receipt store.Receipt     `json:"receipt"`
	Claim   *store.BonusClaim `json:"claim,omitempty"`
}

// Intake accepts receipt uploads, deduplicates them by content hash, and
// queues them for verification.
type Intake struct {
	store          IntakeStore
	files          FileUploader
	queue          TaskEnqueuer
	logger         *observability.Logger
	maxUploadBytes int64
}

func NewIntake(intakeStore IntakeStore, files FileUploader, queue TaskEnqueuer,
	maxUploadBytes int64, logger *observability.Logger) *Intake {
	return &Intake{
		store:          intakeStore,
		files:          files,
		queue:          queue,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

// Submit validates and stores an uploaded receipt, creates its bonus claim,
// and enqueues verification. The same file submitted twice, under any email,
// returns store.ErrDuplicateFileHash.
func (i *Intake) Submit(ctx context.Context, req SubmitRequest) (SubmitResult, error) {
	if int64(len(req.Data)) > i.maxUploadBytes {
		return SubmitResult{}, ErrFileTooLarge
	}
	if len(req.Data) == 0 {
		return SubmitResult{}, fmt.Errorf("%w: empty file", ErrUnsupportedFileType)
	}
	ext := strings.ToLower(filepath.Ext(req.FileName))
	if !allowedUploadExtensions[ext] {
		return SubmitResult{}, fmt.Errorf("%w: %s", ErrUnsupportedFileType, ext)
	}

	sum := sha256.Sum256(req.Data)
	fileHash := hex.EncodeToString(sum[:])

	// The same content hash, under any email, resolves to DUPLICATE: the
	// original keeps the sole claim and is never re-scored, and the attempt
	// is recorded as a DUPLICATE receipt for the audit trail. The partial
	// unique index on file_hash still covers two concurrent submissions of
	// the same file.
	if original, err := i.store.GetReceiptByFileHash(ctx, fileHash); err == nil {
		i.recordDuplicate(ctx, req, fileHash, original)
		return SubmitResult{}, store.ErrDuplicateFileHash
	} else if !errors.Is(err, store.ErrNotFound) {
		return SubmitResult{}, fmt.Errorf("failed to check for duplicate receipt: %w", err)
	}

	user, err := i.store.UpsertUserByEmail(ctx, req.Email, nil, nil)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("failed to upsert user: %w", err)
	}

	fileKey := fmt.Sprintf("receipts/%s%s", uuid.New(), ext)
	if err := i.files.Put(ctx, fileKey, req.Data, mimeTypeForFile(req.FileName)); err != nil {
		return SubmitResult{}, fmt.Errorf("failed to store receipt file: %w", err)
	}

	receipt, err := i.store.CreateReceipt(ctx, store.CreateReceiptParams{
		UserID:   user.ID,
		FileHash: fileHash,
		FileKey:  fileKey,
		FileName: req.FileName,
	})
	if err != nil {
		return SubmitResult{}, err
	}

	claim, err := i.store.CreateBonusClaim(ctx, store.CreateBonusClaimParams{
		UserID:        user.ID,
		ReceiptID:     receipt.ID,
		DeliveryEmail: req.Email,
	})
	if err != nil {
		return SubmitResult{}, fmt.Errorf("failed to create bonus claim: %w", err)
	}

	if err := i.queue.EnqueueReceiptProcessing(ctx, receipt.ID); err != nil {
		// The receipt exists and can be picked up by a manual re-run, but the
		// uploader should know verification has not started.
		i.logger.Error(ctx, "failed to enqueue receipt processing", err)
		return SubmitResult{}, fmt.Errorf("failed to enqueue receipt processing: %w", err)
	}

	return SubmitResult{Receipt: receipt, Claim: claim}, nil
}

// recordDuplicate persists a rejected re-submission in DUPLICATE status so
// repeated attempts on the same file leave a trail. Best effort: the uploader
// gets the duplicate response either way.
func (i *Intake) recordDuplicate(ctx context.Context, req SubmitRequest, fileHash string, original store.Receipt) {
	user, err := i.store.UpsertUserByEmail(ctx, req.Email, nil, nil)
	if err != nil {
		i.logger.Error(ctx, "failed to upsert user for duplicate receipt", err)
		return
	}
	if _, err := i.store.CreateDuplicateReceipt(ctx, store.CreateDuplicateReceiptParams{
		UserID:            user.ID,
		OriginalReceiptID: original.ID,
		FileHash:          fileHash,
		FileKey:           original.FileKey,
		FileName:          req.FileName,
	}); err != nil {
		i.logger.Error(ctx, "failed to record duplicate receipt", err)
	}
}

// ReceiptsForEmail returns every receipt a user has submitted, newest first.
// Used by support to see the submission history behind a complaint.
func (i *Intake) ReceiptsForEmail(ctx context.Context, email string) ([]store.Receipt, error) {
	user, err := i.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return i.store.GetReceiptsByUserID(ctx, user.ID)
}

// Status returns the receipt and, when present, its bonus claim.
func (i *Intake) Status(ctx context.Context, receiptID uuid.UUID) (StatusResult, error) {
	receipt, err := i.store.GetReceiptByID(ctx, receiptID)
	if err != nil {
		return StatusResult{}, err
	}

	result := StatusResult{Receipt: receipt}
	claim, err := i.store.GetBonusClaimByReceiptID(ctx, receiptID)
	if err == nil {
		result.Claim = &claim
	} else if !errors.Is(err, store.ErrNotFound) {
		return StatusResult{}, fmt.Errorf("failed to get bonus claim: %w", err)
	}
	return result, nil
}
