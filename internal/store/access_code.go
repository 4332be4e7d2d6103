package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrCodeExhausted is returned when a code has reached its redemption limit
	ErrCodeExhausted = errors.New("access code redemption limit reached")
	// ErrCodeNotRedeemable is returned when a code is outside its validity
	// window or not in ACTIVE status
	ErrCodeNotRedeemable = errors.New("access code not redeemable")
)

// CreateAccessCodeParams represents parameters for issuing a single access code
type CreateAccessCodeParams struct {
	Code           string
	MaxRedemptions int
	ValidFrom      time.Time
	ValidUntil     time.Time
	Metadata       JSONB
}

// accessCodeColumns contains all columns for SELECT queries
const accessCodeColumns = `id, code, status, max_redemptions, redemption_count, valid_from, valid_until, revoked_at, metadata, created_at, updated_at`

const sqlCreateAccessCode = `
INSERT INTO access_codes (code, status, max_redemptions, valid_from, valid_until, metadata)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + accessCodeColumns

// CreateAccessCode issues a single access code
func (s *Store) CreateAccessCode(ctx context.Context, params CreateAccessCodeParams) (AccessCode, error) {
	var code AccessCode
	err := s.db.GetContext(ctx, &code, sqlCreateAccessCode,
		params.Code,
		CodeStatusActive,
		params.MaxRedemptions,
		params.ValidFrom,
		params.ValidUntil,
		params.Metadata)
	if err != nil {
		return AccessCode{}, fmt.Errorf("failed to create access code: %w", err)
	}
	return code, nil
}

const sqlGetAccessCodeByCode = `
SELECT ` + accessCodeColumns + `
FROM access_codes
WHERE code = $1
`

// GetAccessCodeByCode retrieves an access code by its code string
func (s *Store) GetAccessCodeByCode(ctx context.Context, codeStr string) (AccessCode, error) {
	var code AccessCode
	err := s.db.GetContext(ctx, &code, sqlGetAccessCodeByCode, codeStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AccessCode{}, ErrNotFound
		}
		return AccessCode{}, fmt.Errorf("failed to get access code: %w", err)
	}
	return code, nil
}

// RedeemAccessCode atomically increments the redemption count of an ACTIVE
// code inside its validity window. The WHERE clause is the concurrency guard:
// two racing redemptions of the last slot cannot both succeed.
const sqlRedeemAccessCode = `
UPDATE access_codes
SET redemption_count = redemption_count + 1,
    status = CASE WHEN redemption_count + 1 >= max_redemptions THEN $2 ELSE status END,
    updated_at = CURRENT_TIMESTAMP
WHERE code = $1
  AND status = $3
  AND redemption_count < max_redemptions
  AND valid_from <= CURRENT_TIMESTAMP
  AND valid_until >= CURRENT_TIMESTAMP
RETURNING ` + accessCodeColumns

// RedeemAccessCode redeems an access code, enforcing the max-redemption count
// and validity window in a single statement
func (s *Store) RedeemAccessCode(ctx context.Context, codeStr string) (AccessCode, error) {
	var code AccessCode
	err := s.db.GetContext(ctx, &code, sqlRedeemAccessCode, codeStr, CodeStatusRedeemed, CodeStatusActive)
	if err == nil {
		return code, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return AccessCode{}, fmt.Errorf("failed to redeem access code: %w", err)
	}

	// Distinguish why the guarded update matched nothing
	existing, lookupErr := s.GetAccessCodeByCode(ctx, codeStr)
	if lookupErr != nil {
		return AccessCode{}, lookupErr
	}
	if existing.Status == CodeStatusActive && existing.RedemptionCount >= existing.MaxRedemptions {
		return AccessCode{}, ErrCodeExhausted
	}
	return AccessCode{}, ErrCodeNotRedeemable
}

const sqlRevokeAccessCode = `
UPDATE access_codes
SET status = $2,
    revoked_at = CURRENT_TIMESTAMP,
    updated_at = CURRENT_TIMESTAMP
WHERE code = $1 AND status != $2
RETURNING ` + accessCodeColumns

// RevokeAccessCode revokes a code regardless of its current state
func (s *Store) RevokeAccessCode(ctx context.Context, codeStr string) (AccessCode, error) {
	var code AccessCode
	err := s.db.GetContext(ctx, &code, sqlRevokeAccessCode, codeStr, CodeStatusRevoked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AccessCode{}, ErrNotFound
		}
		return AccessCode{}, fmt.Errorf("failed to revoke access code: %w", err)
	}
	return code, nil
}

const sqlExpireAccessCodes = `
UPDATE access_codes
SET status = $1,
    updated_at = CURRENT_TIMESTAMP
WHERE status = $2 AND valid_until < CURRENT_TIMESTAMP
`

// ExpireAccessCodes marks all lapsed ACTIVE codes as EXPIRED and returns the
// number of codes transitioned. Invoked by the scheduled sweep.
func (s *Store) ExpireAccessCodes(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, sqlExpireAccessCodes, CodeStatusExpired, CodeStatusActive)
	if err != nil {
		return 0, fmt.Errorf("failed to expire access codes: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows, nil
}

const sqlListAccessCodes = `
SELECT ` + accessCodeColumns + `
FROM access_codes
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`

// ListAccessCodes returns a page of issued codes, newest first
func (s *Store) ListAccessCodes(ctx context.Context, limit, offset int) ([]AccessCode, error) {
	var codes []AccessCode
	err := s.db.SelectContext(ctx, &codes, sqlListAccessCodes, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list access codes: %w", err)
	}
	return codes, nil
}
