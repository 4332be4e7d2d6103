package processor

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"preorder-server/internal/observability"
	"preorder-server/internal/store"
)

//go:generate mockgen -source=processor.go -destination=mocks_test.go -package=processor

// Code generation shape: unambiguous alphabet, grouped for readability,
// e.g. VIP-7KTM-29XQ
const (
	codeAlphabet    = "ABCDEFGHJKMNPQRSTVWXYZ23456789"
	codeGroupLength = 4
	codeGroups      = 2
	codePrefix      = "VIP"
)

// CodeStore is the persistence surface for access codes.
type CodeStore interface {
	CreateAccessCode(ctx context.Context, params store.CreateAccessCodeParams) (store.AccessCode, error)
	GetAccessCodeByCode(ctx context.Context, code string) (store.AccessCode, error)
	RedeemAccessCode(ctx context.Context, code string) (store.AccessCode, error)
	RevokeAccessCode(ctx context.Context, code string) (store.AccessCode, error)
	ExpireAccessCodes(ctx context.Context) (int64, error)
	ListAccessCodes(ctx context.Context, limit, offset int) ([]store.AccessCode, error)
}

// Processor issues, redeems, and revokes VIP access codes.
type Processor struct {
	codeStore CodeStore
	logger    *observability.Logger
}

func New(codeStore CodeStore, logger *observability.Logger) *Processor {
	return &Processor{codeStore: codeStore, logger: logger}
}

// IssueBatch generates count random codes, each redeemable up to
// maxRedemptions times within the validity window.
func (p *Processor) IssueBatch(ctx context.Context, count, maxRedemptions int, validFrom, validUntil time.Time, metadata store.JSONB) ([]store.AccessCode, error) {
	if count < 1 {
		return nil, fmt.Errorf("batch count must be positive")
	}
	if maxRedemptions < 1 {
		return nil, fmt.Errorf("max redemptions must be positive")
	}
	if !validUntil.After(validFrom) {
		return nil, fmt.Errorf("validity window is empty")
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "batch_count", Value: count})

	issued := make([]store.AccessCode, 0, count)
	for i := 0; i < count; i++ {
		codeStr, err := generateCode()
		if err != nil {
			return issued, fmt.Errorf("failed to generate code: %w", err)
		}
		code, err := p.codeStore.CreateAccessCode(ctx, store.CreateAccessCodeParams{
			Code:           codeStr,
			MaxRedemptions: maxRedemptions,
			ValidFrom:      validFrom,
			ValidUntil:     validUntil,
			Metadata:       metadata,
		})
		if err != nil {
			return issued, fmt.Errorf("failed to issue code %d of %d: %w", i+1, count, err)
		}
		issued = append(issued, code)
	}

	p.logger.Info(ctx, "access code batch issued")
	return issued, nil
}

// Redeem consumes one redemption of a code. The store enforces the status,
// window, and count guards atomically.
func (p *Processor) Redeem(ctx context.Context, codeStr string) (store.AccessCode, error) {
	code, err := p.codeStore.RedeemAccessCode(ctx, codeStr)
	if err != nil {
		return store.AccessCode{}, err
	}
	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "code_id", Value: code.ID.String()},
		observability.Field{Key: "redemption_count", Value: code.RedemptionCount}),
		"access code redeemed")
	return code, nil
}

// Revoke permanently disables a code.
func (p *Processor) Revoke(ctx context.Context, codeStr string) (store.AccessCode, error) {
	return p.codeStore.RevokeAccessCode(ctx, codeStr)
}

// ExpireLapsed transitions all ACTIVE codes past their validity window to
// EXPIRED. Called by the scheduler.
func (p *Processor) ExpireLapsed(ctx context.Context) (int64, error) {
	expired, err := p.codeStore.ExpireAccessCodes(ctx)
	if err != nil {
		return 0, err
	}
	if expired > 0 {
		p.logger.Info(observability.WithFields(ctx,
			observability.Field{Key: "expired_count", Value: expired}),
			"lapsed access codes expired")
	}
	return expired, nil
}

// List returns a page of issued codes, newest first.
func (p *Processor) List(ctx context.Context, limit, offset int) ([]store.AccessCode, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return p.codeStore.ListAccessCodes(ctx, limit, offset)
}

// generateCode builds a code like VIP-7KTM-29XQ from crypto/rand
func generateCode() (string, error) {
	buf := make([]byte, codeGroups*codeGroupLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	code := codePrefix
	for i, b := range buf {
		if i%codeGroupLength == 0 {
			code += "-"
		}
		code += string(codeAlphabet[int(b)%len(codeAlphabet)])
	}
	return code, nil
}
