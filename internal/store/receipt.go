package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// CreateReceiptParams represents parameters for creating a receipt
type CreateReceiptParams struct {
	UserID   uuid.UUID
	FileHash string
	FileKey  string
	FileName string
}

// CreateDuplicateReceiptParams represents parameters for recording a
// re-submission of an already known file
type CreateDuplicateReceiptParams struct {
	UserID            uuid.UUID
	OriginalReceiptID uuid.UUID
	FileHash          string
	FileKey           string
	FileName          string
}

// UpdateReceiptParams represents parameters for updating a receipt after a
// processing pass. Nil fields are left unchanged.
type UpdateReceiptParams struct {
	Status            *string
	Retailer          *string
	OrderNumber       *string
	Format            *string
	PurchaseDate      *time.Time
	VerificationScore *int
	VerifiedAt        *time.Time
	VerifiedBy        *string
	RejectionReason   *string
	OCRAttempts       *int
}

// receiptColumns contains all columns for SELECT queries
const receiptColumns = `id, user_id, retailer, order_number, format, purchase_date, status, file_hash, file_key, file_name, verification_score, verified_at, verified_by, rejection_reason, ocr_attempts, created_at, updated_at`

const sqlCreateReceipt = `
INSERT INTO receipts (user_id, status, file_hash, file_key, file_name)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + receiptColumns

// CreateReceipt creates a new receipt in PENDING status. A unique violation on
// file_hash is translated to ErrDuplicateFileHash.
func (s *Store) CreateReceipt(ctx context.Context, params CreateReceiptParams) (Receipt, error) {
	var receipt Receipt
	err := s.db.GetContext(ctx, &receipt, sqlCreateReceipt,
		params.UserID,
		ReceiptStatusPending,
		params.FileHash,
		params.FileKey,
		params.FileName)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Receipt{}, ErrDuplicateFileHash
		}
		return Receipt{}, fmt.Errorf("failed to create receipt: %w", err)
	}
	return receipt, nil
}

const sqlCreateDuplicateReceipt = `
INSERT INTO receipts (user_id, status, file_hash, file_key, file_name, rejection_reason)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + receiptColumns

// CreateDuplicateReceipt records a re-submission of an already known file in
// DUPLICATE status, pointing back at the original receipt. The unique index
// on file_hash is partial and excludes DUPLICATE rows, so the audit record
// can share the original's hash.
func (s *Store) CreateDuplicateReceipt(ctx context.Context, params CreateDuplicateReceiptParams) (Receipt, error) {
	reason := fmt.Sprintf("Duplicate of receipt %s", params.OriginalReceiptID)
	var receipt Receipt
	err := s.db.GetContext(ctx, &receipt, sqlCreateDuplicateReceipt,
		params.UserID,
		ReceiptStatusDuplicate,
		params.FileHash,
		params.FileKey,
		params.FileName,
		reason)
	if err != nil {
		return Receipt{}, fmt.Errorf("failed to create duplicate receipt: %w", err)
	}
	return receipt, nil
}

const sqlGetReceiptByID = `
SELECT ` + receiptColumns + `
FROM receipts
WHERE id = $1
`

// GetReceiptByID retrieves a receipt by ID
func (s *Store) GetReceiptByID(ctx context.Context, receiptID uuid.UUID) (Receipt, error) {
	var receipt Receipt
	err := s.db.GetContext(ctx, &receipt, sqlGetReceiptByID, receiptID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Receipt{}, ErrNotFound
		}
		return Receipt{}, fmt.Errorf("failed to get receipt by id: %w", err)
	}
	return receipt, nil
}

const sqlGetReceiptByFileHash = `
SELECT ` + receiptColumns + `
FROM receipts
WHERE file_hash = $1 AND status <> 'DUPLICATE'
`

// GetReceiptByFileHash retrieves the canonical receipt for a content hash,
// skipping DUPLICATE audit rows that share it
func (s *Store) GetReceiptByFileHash(ctx context.Context, fileHash string) (Receipt, error) {
	var receipt Receipt
	err := s.db.GetContext(ctx, &receipt, sqlGetReceiptByFileHash, fileHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Receipt{}, ErrNotFound
		}
		return Receipt{}, fmt.Errorf("failed to get receipt by file hash: %w", err)
	}
	return receipt, nil
}

const sqlGetReceiptsByUserID = `
SELECT ` + receiptColumns + `
FROM receipts
WHERE user_id = $1
ORDER BY created_at DESC
`

// GetReceiptsByUserID retrieves all receipts for a user, newest first
func (s *Store) GetReceiptsByUserID(ctx context.Context, userID uuid.UUID) ([]Receipt, error) {
	var receipts []Receipt
	err := s.db.SelectContext(ctx, &receipts, sqlGetReceiptsByUserID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get receipts by user id: %w", err)
	}
	return receipts, nil
}

const sqlUpdateReceipt = `
UPDATE receipts
SET status = COALESCE($2, status),
    retailer = COALESCE($3, retailer),
    order_number = COALESCE($4, order_number),
    format = COALESCE($5, format),
    purchase_date = COALESCE($6, purchase_date),
    verification_score = COALESCE($7, verification_score),
    verified_at = COALESCE($8, verified_at),
    verified_by = COALESCE($9, verified_by),
    rejection_reason = COALESCE($10, rejection_reason),
    ocr_attempts = COALESCE($11, ocr_attempts),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + receiptColumns

// UpdateReceipt updates a receipt with the outcome of a processing pass
func (s *Store) UpdateReceipt(ctx context.Context, receiptID uuid.UUID, params UpdateReceiptParams) (Receipt, error) {
	var receipt Receipt
	err := s.db.GetContext(ctx, &receipt, sqlUpdateReceipt,
		receiptID,
		params.Status,
		params.Retailer,
		params.OrderNumber,
		params.Format,
		params.PurchaseDate,
		params.VerificationScore,
		params.VerifiedAt,
		params.VerifiedBy,
		params.RejectionReason,
		params.OCRAttempts)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Receipt{}, ErrNotFound
		}
		return Receipt{}, fmt.Errorf("failed to update receipt: %w", err)
	}
	return receipt, nil
}
