package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"preorder-server/internal/fulfillment"
	"preorder-server/internal/observability"
	"preorder-server/internal/ratelimit"
	"preorder-server/internal/store"
	"preorder-server/internal/tokens"
)

//go:generate mockgen -source=processor.go -destination=mocks_test.go -package=processor

// Download rate limit per identity
const (
	MaxDownloadsPerWindow = 20
	DownloadWindow        = time.Hour
)

var (
	// ErrAssetNotFound means the requested asset key is not in the inventory
	ErrAssetNotFound = errors.New("unknown asset")
	// ErrAssetMismatch means the token was minted for a different asset
	ErrAssetMismatch = errors.New("token was minted for a different asset")
	// ErrClaimNotEligible means the linked claim is not APPROVED or DELIVERED
	ErrClaimNotEligible = errors.New("claim is not eligible for downloads")
	// ErrRateLimited means the identity exceeded the download rate limit
	ErrRateLimited = errors.New("download rate limit exceeded")
)

// TokenVerifier verifies signed download tokens.
type TokenVerifier interface {
	VerifyDownloadToken(token string) (tokens.DownloadClaims, error)
}

// ClaimStore loads the claim a token references.
type ClaimStore interface {
	GetBonusClaimByID(ctx context.Context, claimID uuid.UUID) (store.BonusClaim, error)
}

// FileStore fetches asset bytes from object storage.
type FileStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// Download is a resolved asset ready to stream.
type Download struct {
	Asset fulfillment.Asset
	Data  []byte
}

// Processor is the download gate: it decides allow, deny, or expired for a
// token presented against an asset key.
type Processor struct {
	codec   TokenVerifier
	claims  ClaimStore
	files   FileStore
	limiter ratelimit.Limiter
	logger  *observability.Logger
}

func New(codec TokenVerifier, claims ClaimStore, files FileStore, limiter ratelimit.Limiter, logger *observability.Logger) *Processor {
	return &Processor{
		codec:   codec,
		claims:  claims,
		files:   files,
		limiter: limiter,
		logger:  logger,
	}
}

// Resolve validates a download token against an asset key and returns the
// asset bytes. Checks run in a fixed order: token shape, signature, expiry,
// asset binding, claim status, rate limit. The error distinguishes expired
// from invalid from unknown so the client can render the right message.
func (p *Processor) Resolve(ctx context.Context, assetKey, token string) (Download, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "asset_key", Value: assetKey})

	claims, err := p.codec.VerifyDownloadToken(token)
	if err != nil {
		if errors.Is(err, tokens.ErrTokenExpired) {
			p.logger.Info(observability.WithFields(ctx,
				observability.Field{Key: "token_email", Value: claims.Email}),
				"expired download token presented")
		}
		return Download{}, err
	}

	asset, ok := fulfillment.AssetByKey(assetKey)
	if !ok {
		return Download{}, ErrAssetNotFound
	}

	// A valid token for asset A must not fetch asset B.
	if claims.Asset != assetKey {
		p.logger.Info(observability.WithFields(ctx,
			observability.Field{Key: "token_asset", Value: claims.Asset}),
			"download token presented against a different asset")
		return Download{}, ErrAssetMismatch
	}

	claimID, err := uuid.Parse(claims.ClaimID)
	if err != nil {
		return Download{}, tokens.ErrMalformedToken
	}

	claim, err := p.claims.GetBonusClaimByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Download{}, ErrClaimNotEligible
		}
		return Download{}, fmt.Errorf("failed to load claim: %w", err)
	}
	if claim.Status != store.ClaimStatusApproved && claim.Status != store.ClaimStatusDelivered {
		return Download{}, ErrClaimNotEligible
	}

	result, err := p.limiter.Check(ctx, "download:"+claims.Email, MaxDownloadsPerWindow, DownloadWindow)
	if err != nil {
		// Limiter trouble fails open; admission control is best-effort.
		p.logger.InfoWithError(ctx, "download rate limit check failed, allowing", err)
	} else if !result.Allowed {
		return Download{}, ErrRateLimited
	}

	data, err := p.files.Get(ctx, fulfillment.ObjectKey(asset))
	if err != nil {
		return Download{}, fmt.Errorf("failed to fetch asset %s: %w", asset.Key, err)
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "claim_id", Value: claim.ID.String()}),
		"download authorized")
	return Download{Asset: asset, Data: data}, nil
}
