package processor

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"preorder-server/internal/observability"
	"preorder-server/internal/store"
	"preorder-server/internal/tokens"
	"time"
)

const (
	// ConfirmationTokenTTL bounds how long a double-opt-in link stays valid.
	ConfirmationTokenTTL = 48 * time.Hour
	// UnsubscribeTokenTTL keeps footer unsubscribe links working for a year.
	UnsubscribeTokenTTL = 365 * 24 * time.Hour

	bookTitle = "AI-Born"
)

// ErrInvalidPurpose is returned when a token minted for one link type is
// presented to the other endpoint.
var ErrInvalidPurpose = errors.New("token purpose does not match endpoint")

type Processor struct {
	subscribers SubscriberStore
	tokens      TokenMinter
	mailer      Mailer
	logger      *observability.Logger
	baseURL     string
}

func New(subscribers SubscriberStore, tokens TokenMinter, mailer Mailer, baseURL string,
	logger *observability.Logger) *Processor {
	return &Processor{
		subscribers: subscribers,
		tokens:      tokens,
		mailer:      mailer,
		logger:      logger,
		baseURL:     baseURL,
	}
}

// Subscribe registers an email and sends a confirmation link. Subscribing an
// already-confirmed address is a no-op so the endpoint cannot be used to spam
// existing subscribers with confirmation mail.
func (p *Processor) Subscribe(ctx context.Context, email string) (store.NewsletterSubscriber, error) {
	sub, err := p.subscribers.CreateSubscriber(ctx, email)
	if err != nil {
		return store.NewsletterSubscriber{}, fmt.Errorf("failed to register subscriber: %w", err)
	}
	if sub.Status == store.SubscriberStatusConfirmed {
		return sub, nil
	}

	token, err := p.tokens.MintNewsletterToken(email, tokens.PurposeConfirmation, ConfirmationTokenTTL)
	if err != nil {
		return store.NewsletterSubscriber{}, fmt.Errorf("failed to mint confirmation token: %w", err)
	}

	confirmLink := fmt.Sprintf("%s/newsletter/confirm?token=%s", p.baseURL, url.QueryEscape(token))
	if err := p.mailer.SendNewsletterConfirmationEmail(ctx, email, bookTitle, confirmLink); err != nil {
		return store.NewsletterSubscriber{}, fmt.Errorf("failed to send confirmation email: %w", err)
	}

	return sub, nil
}

// Confirm completes double opt-in from a confirmation link token. The welcome
// email carries a long-lived unsubscribe link; failing to send it does not
// roll back the confirmation.
func (p *Processor) Confirm(ctx context.Context, token string) (store.NewsletterSubscriber, error) {
	claims, err := p.tokens.VerifyNewsletterToken(token)
	if err != nil {
		return store.NewsletterSubscriber{}, err
	}
	if claims.Purpose != tokens.PurposeConfirmation {
		return store.NewsletterSubscriber{}, ErrInvalidPurpose
	}

	sub, err := p.subscribers.ConfirmSubscriber(ctx, claims.Email)
	if err != nil {
		return store.NewsletterSubscriber{}, fmt.Errorf("failed to confirm subscriber: %w", err)
	}

	unsubToken, err := p.tokens.MintNewsletterToken(claims.Email, tokens.PurposeUnsubscribe, UnsubscribeTokenTTL)
	if err != nil {
		p.logger.Error(ctx, "failed to mint unsubscribe token for welcome email", err)
		return sub, nil
	}
	unsubscribeLink := fmt.Sprintf("%s/newsletter/unsubscribe?token=%s", p.baseURL, url.QueryEscape(unsubToken))
	if err := p.mailer.SendNewsletterWelcomeEmail(ctx, claims.Email, bookTitle, unsubscribeLink); err != nil {
		p.logger.Error(ctx, "failed to send welcome email", err)
	}

	return sub, nil
}

// Status reports the current lifecycle state for an email address.
func (p *Processor) Status(ctx context.Context, email string) (store.NewsletterSubscriber, error) {
	return p.subscribers.GetSubscriberByEmail(ctx, email)
}

// Unsubscribe removes a subscriber via an unsubscribe link token.
func (p *Processor) Unsubscribe(ctx context.Context, token string) (store.NewsletterSubscriber, error) {
	claims, err := p.tokens.VerifyNewsletterToken(token)
	if err != nil {
		return store.NewsletterSubscriber{}, err
	}
	if claims.Purpose != tokens.PurposeUnsubscribe {
		return store.NewsletterSubscriber{}, ErrInvalidPurpose
	}

	sub, err := p.subscribers.UnsubscribeSubscriber(ctx, claims.Email)
	if err != nil {
		return store.NewsletterSubscriber{}, fmt.Errorf("failed to unsubscribe: %w", err)
	}
	return sub, nil
}
