package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateBonusClaimParams represents parameters for creating a bonus claim
type CreateBonusClaimParams struct {
	UserID        uuid.UUID
	ReceiptID     uuid.UUID
	DeliveryEmail string
}

// UpdateBonusClaimParams represents parameters for updating a bonus claim.
// Nil fields are left unchanged.
type UpdateBonusClaimParams struct {
	Status             *string
	DeliveryEmail      *string
	DeliveredAt        *time.Time
	DeliveryTrackingID *string
	AdminNotes         *string
	ProcessedBy        *string
	ProcessedAt        *time.Time
}

// bonusClaimColumns contains all columns for SELECT queries
const bonusClaimColumns = `id, user_id, receipt_id, status, delivery_email, delivered_at, delivery_tracking_id, admin_notes, processed_by, processed_at, created_at, updated_at`

const sqlCreateBonusClaim = `
INSERT INTO bonus_claims (user_id, receipt_id, status, delivery_email)
VALUES ($1, $2, $3, $4)
RETURNING ` + bonusClaimColumns

// CreateBonusClaim creates a new claim in PENDING status alongside its receipt
func (s *Store) CreateBonusClaim(ctx context.Context, params CreateBonusClaimParams) (BonusClaim, error) {
	var claim BonusClaim
	err := s.db.GetContext(ctx, &claim, sqlCreateBonusClaim,
		params.UserID,
		params.ReceiptID,
		ClaimStatusPending,
		params.DeliveryEmail)
	if err != nil {
		return BonusClaim{}, fmt.Errorf("failed to create bonus claim: %w", err)
	}
	return claim, nil
}

const sqlGetBonusClaimByID = `
SELECT ` + bonusClaimColumns + `
FROM bonus_claims
WHERE id = $1
`

// GetBonusClaimByID retrieves a claim by ID
func (s *Store) GetBonusClaimByID(ctx context.Context, claimID uuid.UUID) (BonusClaim, error) {
	var claim BonusClaim
	err := s.db.GetContext(ctx, &claim, sqlGetBonusClaimByID, claimID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return BonusClaim{}, ErrNotFound
		}
		return BonusClaim{}, fmt.Errorf("failed to get bonus claim by id: %w", err)
	}
	return claim, nil
}

const sqlGetBonusClaimByReceiptID = `
SELECT ` + bonusClaimColumns + `
FROM bonus_claims
WHERE receipt_id = $1
`

// GetBonusClaimByReceiptID retrieves the claim linked to a receipt
func (s *Store) GetBonusClaimByReceiptID(ctx context.Context, receiptID uuid.UUID) (BonusClaim, error) {
	var claim BonusClaim
	err := s.db.GetContext(ctx, &claim, sqlGetBonusClaimByReceiptID, receiptID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return BonusClaim{}, ErrNotFound
		}
		return BonusClaim{}, fmt.Errorf("failed to get bonus claim by receipt id: %w", err)
	}
	return claim, nil
}

const sqlUpdateBonusClaim = `
UPDATE bonus_claims
SET status = COALESCE($2, status),
    delivery_email = COALESCE($3, delivery_email),
    delivered_at = COALESCE($4, delivered_at),
    delivery_tracking_id = COALESCE($5, delivery_tracking_id),
    admin_notes = COALESCE($6, admin_notes),
    processed_by = COALESCE($7, processed_by),
    processed_at = COALESCE($8, processed_at),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + bonusClaimColumns

// UpdateBonusClaim updates a claim's status and delivery tracking
func (s *Store) UpdateBonusClaim(ctx context.Context, claimID uuid.UUID, params UpdateBonusClaimParams) (BonusClaim, error) {
	var claim BonusClaim
	err := s.db.GetContext(ctx, &claim, sqlUpdateBonusClaim,
		claimID,
		params.Status,
		params.DeliveryEmail,
		params.DeliveredAt,
		params.DeliveryTrackingID,
		params.AdminNotes,
		params.ProcessedBy,
		params.ProcessedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return BonusClaim{}, ErrNotFound
		}
		return BonusClaim{}, fmt.Errorf("failed to update bonus claim: %w", err)
	}
	return claim, nil
}
