package fulfillment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"preorder-server/internal/email"
	"preorder-server/internal/observability"
	"preorder-server/internal/store"
)

//go:generate mockgen -source=service.go -destination=mocks_test.go -package=fulfillment

// DownloadTokenTTL is how long each minted download link stays valid
const DownloadTokenTTL = 24 * time.Hour

const bookTitle = "AI-Born"

var (
	// ErrClaimNotApproved means the claim is not in a state eligible for delivery
	ErrClaimNotApproved = errors.New("claim is not approved for delivery")
	// ErrAlreadyDelivered means the claim was already delivered; callers that
	// want a fresh send use Resend instead.
	ErrAlreadyDelivered = errors.New("claim already delivered")
)

// ClaimStore is the persistence surface the fulfillment service needs.
type ClaimStore interface {
	GetBonusClaimByID(ctx context.Context, claimID uuid.UUID) (store.BonusClaim, error)
	UpdateBonusClaim(ctx context.Context, claimID uuid.UUID, params store.UpdateBonusClaimParams) (store.BonusClaim, error)
}

// TokenMinter mints signed download tokens.
type TokenMinter interface {
	MintDownloadToken(email string, claimID uuid.UUID, asset string, ttl time.Duration) (string, error)
}

// DeliveryMailer sends the bonus pack email and returns the provider message id.
type DeliveryMailer interface {
	SendBonusPackEmail(ctx context.Context, to, bookTitle string, links []email.AssetLink, fullPackLink string) (string, error)
}

// Service mints one independently-expiring download link per bonus asset and
// delivers them by email, then advances the claim to DELIVERED.
type Service struct {
	claimStore ClaimStore
	codec      TokenMinter
	mailer     DeliveryMailer
	baseURL    string
	logger     *observability.Logger
	now        func() time.Time
}

func New(claimStore ClaimStore, codec TokenMinter, mailer DeliveryMailer, baseURL string, logger *observability.Logger) *Service {
	return &Service{
		claimStore: claimStore,
		codec:      codec,
		mailer:     mailer,
		baseURL:    baseURL,
		logger:     logger,
		now:        time.Now,
	}
}

// Deliver sends the bonus pack for an approved claim. Delivery is idempotent:
// a claim that is already DELIVERED is skipped so that re-delivered queue jobs
// do not send duplicate emails.
func (s *Service) Deliver(ctx context.Context, claimID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "claim_id", Value: claimID.String()})

	claim, err := s.claimStore.GetBonusClaimByID(ctx, claimID)
	if err != nil {
		return fmt.Errorf("failed to load claim: %w", err)
	}

	if claim.Status == store.ClaimStatusDelivered {
		s.logger.Info(ctx, "claim already delivered, skipping")
		return nil
	}
	if claim.Status != store.ClaimStatusApproved {
		return fmt.Errorf("%w: status is %s", ErrClaimNotApproved, claim.Status)
	}

	return s.send(ctx, claim)
}

// Resend sends a fresh set of links for a claim whose original email failed or
// whose links have expired. Allowed for APPROVED and DELIVERED claims.
func (s *Service) Resend(ctx context.Context, claimID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "claim_id", Value: claimID.String()})

	claim, err := s.claimStore.GetBonusClaimByID(ctx, claimID)
	if err != nil {
		return fmt.Errorf("failed to load claim: %w", err)
	}

	if claim.Status != store.ClaimStatusApproved && claim.Status != store.ClaimStatusDelivered {
		return fmt.Errorf("%w: status is %s", ErrClaimNotApproved, claim.Status)
	}

	return s.send(ctx, claim)
}

func (s *Service) send(ctx context.Context, claim store.BonusClaim) error {
	links := make([]email.AssetLink, 0, len(BonusAssets))
	for _, asset := range BonusAssets {
		token, err := s.codec.MintDownloadToken(claim.DeliveryEmail, claim.ID, asset.Key, DownloadTokenTTL)
		if err != nil {
			return fmt.Errorf("failed to mint token for asset %s: %w", asset.Key, err)
		}
		links = append(links, email.AssetLink{
			Title: asset.Title,
			URL:   s.downloadURL(asset.Key, token),
		})
	}

	fullPackToken, err := s.codec.MintDownloadToken(claim.DeliveryEmail, claim.ID, FullPackKey, DownloadTokenTTL)
	if err != nil {
		return fmt.Errorf("failed to mint full pack token: %w", err)
	}

	messageID, err := s.mailer.SendBonusPackEmail(ctx, claim.DeliveryEmail, bookTitle, links, s.downloadURL(FullPackKey, fullPackToken))
	if err != nil {
		// Claim stays APPROVED so an admin resend can recover.
		s.logger.Error(ctx, "bonus pack email send failed, claim left approved", err)
		return fmt.Errorf("failed to deliver bonus pack: %w", err)
	}

	deliveredAt := s.now()
	status := store.ClaimStatusDelivered
	if _, err := s.claimStore.UpdateBonusClaim(ctx, claim.ID, store.UpdateBonusClaimParams{
		Status:             &status,
		DeliveredAt:        &deliveredAt,
		DeliveryTrackingID: &messageID,
	}); err != nil {
		// The email went out; surface the bookkeeping failure rather than retry the send.
		s.logger.Error(ctx, "failed to mark claim delivered after successful send", err)
		return fmt.Errorf("failed to record delivery: %w", err)
	}

	s.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "delivery_tracking_id", Value: messageID}),
		"bonus pack delivered")
	return nil
}

func (s *Service) downloadURL(assetKey, token string) string {
	return fmt.Sprintf("%s/download/%s?token=%s", s.baseURL, assetKey, token)
}
