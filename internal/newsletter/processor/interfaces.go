package processor

import (
	"context"
	"preorder-server/internal/store"
	"preorder-server/internal/tokens"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=processor

// SubscriberStore persists newsletter signups and their lifecycle state.
type SubscriberStore interface {
	CreateSubscriber(ctx context.Context, email string) (store.NewsletterSubscriber, error)
	GetSubscriberByEmail(ctx context.Context, email string) (store.NewsletterSubscriber, error)
	ConfirmSubscriber(ctx context.Context, email string) (store.NewsletterSubscriber, error)
	UnsubscribeSubscriber(ctx context.Context, email string) (store.NewsletterSubscriber, error)
}

// TokenMinter mints and verifies the signed tokens embedded in confirmation
// and unsubscribe links.
type TokenMinter interface {
	MintNewsletterToken(email, purpose string, ttl time.Duration) (string, error)
	VerifyNewsletterToken(token string) (tokens.NewsletterClaims, error)
}

// Mailer sends newsletter lifecycle emails.
type Mailer interface {
	SendNewsletterConfirmationEmail(ctx context.Context, to, bookTitle, confirmLink string) error
	SendNewsletterWelcomeEmail(ctx context.Context, to, bookTitle, unsubscribeLink string) error
}
