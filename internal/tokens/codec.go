package tokens

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrMissingSecret means the signing secret is not configured. This is a
	// deployment failure, not a bad token.
	ErrMissingSecret = errors.New("signing secret is not configured")
	// ErrMalformedToken means the token does not have the header.payload.signature shape
	ErrMalformedToken = errors.New("malformed token")
	// ErrInvalidSignature means the signature does not match the header and
	// payload: tampering, or a token minted with a different secret
	ErrInvalidSignature = errors.New("invalid token signature")
	// ErrTokenExpired means the token is well-formed and correctly signed but
	// past its expiry. The decoded payload is still returned alongside.
	ErrTokenExpired = errors.New("token expired")
)

// Newsletter token purposes
const (
	PurposeConfirmation = "confirmation"
	PurposeUnsubscribe  = "unsubscribe"
)

// downloadTokenVersion is the payload format version embedded in download tokens
const downloadTokenVersion = 1

// DownloadClaims is the payload of a signed download link token. Timestamps
// are integer milliseconds since epoch.
type DownloadClaims struct {
	Email     string `json:"email"`
	ClaimID   string `json:"claimId"`
	Asset     string `json:"asset"`
	IssuedAt  int64  `json:"issuedAt"`
	ExpiresAt int64  `json:"expiresAt"`
	Version   int    `json:"v"`
}

// NewsletterClaims is the payload of a newsletter confirmation or unsubscribe
// link token. Timestamps are integer milliseconds since epoch.
type NewsletterClaims struct {
	Email     string `json:"email"`
	Purpose   string `json:"purpose"`
	IssuedAt  int64  `json:"issuedAt"`
	ExpiresAt int64  `json:"expiresAt"`
}

type tokenHeader struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

// Codec mints and verifies compact signed tokens. It holds no state beyond
// the secret; tokens are never persisted.
type Codec struct {
	secret string
	now    func() time.Time
}

// NewCodec creates a codec signing with the given secret
func NewCodec(secret string) *Codec {
	return &Codec{secret: secret, now: time.Now}
}

// MintDownloadToken mints a signed token authorizing the download of one
// asset for one claim
func (c *Codec) MintDownloadToken(email string, claimID uuid.UUID, asset string, ttl time.Duration) (string, error) {
	if c.secret == "" {
		return "", ErrMissingSecret
	}
	now := c.now()
	claims := DownloadClaims{
		Email:     email,
		ClaimID:   claimID.String(),
		Asset:     asset,
		IssuedAt:  now.UnixMilli(),
		ExpiresAt: now.Add(ttl).UnixMilli(),
		Version:   downloadTokenVersion,
	}
	return c.mint(claims)
}

// VerifyDownloadToken verifies a download token. On ErrTokenExpired the
// decoded claims are still returned so callers can log who and what expired.
func (c *Codec) VerifyDownloadToken(token string) (DownloadClaims, error) {
	var claims DownloadClaims
	payload, err := c.verifySignature(token)
	if err != nil {
		return DownloadClaims{}, err
	}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return DownloadClaims{}, ErrMalformedToken
	}
	if claims.ExpiresAt < c.now().UnixMilli() {
		return claims, ErrTokenExpired
	}
	return claims, nil
}

// MintNewsletterToken mints a signed token for a newsletter confirmation or
// unsubscribe link
func (c *Codec) MintNewsletterToken(email, purpose string, ttl time.Duration) (string, error) {
	if c.secret == "" {
		return "", ErrMissingSecret
	}
	now := c.now()
	claims := NewsletterClaims{
		Email:     email,
		Purpose:   purpose,
		IssuedAt:  now.UnixMilli(),
		ExpiresAt: now.Add(ttl).UnixMilli(),
	}
	return c.mint(claims)
}

// VerifyNewsletterToken verifies a newsletter link token. On ErrTokenExpired
// the decoded claims are still returned.
func (c *Codec) VerifyNewsletterToken(token string) (NewsletterClaims, error) {
	var claims NewsletterClaims
	payload, err := c.verifySignature(token)
	if err != nil {
		return NewsletterClaims{}, err
	}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return NewsletterClaims{}, ErrMalformedToken
	}
	if claims.ExpiresAt < c.now().UnixMilli() {
		return claims, ErrTokenExpired
	}
	return claims, nil
}

// mint serializes header and payload to base64url JSON and signs them with
// HMAC-SHA256. The result is URL-safe: no characters require escaping in a
// query string.
func (c *Codec) mint(claims interface{}) (string, error) {
	headerJSON, err := json.Marshal(tokenHeader{Alg: "HS256", Typ: "JWT"})
	if err != nil {
		return "", fmt.Errorf("failed to encode token header: %w", err)
	}
	payloadJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to encode token payload: %w", err)
	}

	signingString := base64.RawURLEncoding.EncodeToString(headerJSON) +
		"." + base64.RawURLEncoding.EncodeToString(payloadJSON)

	sig, err := jwt.SigningMethodHS256.Sign(signingString, []byte(c.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signingString + "." + base64.RawURLEncoding.EncodeToString(sig), nil
}

// verifySignature checks the token shape and signature, in that order, and
// returns the raw payload bytes. The payload is not decoded until the
// signature has been verified.
func (c *Codec) verifySignature(token string) ([]byte, error) {
	if c.secret == "" {
		return nil, ErrMissingSecret
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, ErrMalformedToken
	}

	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, ErrMalformedToken
	}

	signingString := parts[0] + "." + parts[1]
	if err := jwt.SigningMethodHS256.Verify(signingString, sig, []byte(c.secret)); err != nil {
		return nil, ErrInvalidSignature
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, ErrMalformedToken
	}
	return payload, nil
}
