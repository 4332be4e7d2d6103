package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// subscriberColumns contains all columns for SELECT queries
const subscriberColumns = `id, email, status, confirmed_at, unsubscribed_at, created_at, updated_at`

const sqlCreateSubscriber = `
INSERT INTO newsletter_subscribers (email, status)
VALUES ($1, $2)
ON CONFLICT (email) DO UPDATE SET updated_at = CURRENT_TIMESTAMP
RETURNING ` + subscriberColumns

// CreateSubscriber registers an email in pending status. Re-subscribing an
// existing address returns the current record unchanged so a repeated signup
// never resets a confirmed subscriber.
func (s *Store) CreateSubscriber(ctx context.Context, email string) (NewsletterSubscriber, error) {
	var sub NewsletterSubscriber
	err := s.db.GetContext(ctx, &sub, sqlCreateSubscriber, email, SubscriberStatusPending)
	if err != nil {
		return NewsletterSubscriber{}, fmt.Errorf("failed to create subscriber: %w", err)
	}
	return sub, nil
}

const sqlGetSubscriberByEmail = `
SELECT ` + subscriberColumns + `
FROM newsletter_subscribers
WHERE email = $1
`

// GetSubscriberByEmail retrieves a subscriber by email
func (s *Store) GetSubscriberByEmail(ctx context.Context, email string) (NewsletterSubscriber, error) {
	var sub NewsletterSubscriber
	err := s.db.GetContext(ctx, &sub, sqlGetSubscriberByEmail, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NewsletterSubscriber{}, ErrNotFound
		}
		return NewsletterSubscriber{}, fmt.Errorf("failed to get subscriber by email: %w", err)
	}
	return sub, nil
}

const sqlConfirmSubscriber = `
UPDATE newsletter_subscribers
SET status = $2,
    confirmed_at = CURRENT_TIMESTAMP,
    updated_at = CURRENT_TIMESTAMP
WHERE email = $1
RETURNING ` + subscriberColumns

// ConfirmSubscriber marks a subscriber as confirmed
func (s *Store) ConfirmSubscriber(ctx context.Context, email string) (NewsletterSubscriber, error) {
	var sub NewsletterSubscriber
	err := s.db.GetContext(ctx, &sub, sqlConfirmSubscriber, email, SubscriberStatusConfirmed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NewsletterSubscriber{}, ErrNotFound
		}
		return NewsletterSubscriber{}, fmt.Errorf("failed to confirm subscriber: %w", err)
	}
	return sub, nil
}

const sqlUnsubscribeSubscriber = `
UPDATE newsletter_subscribers
SET status = $2,
    unsubscribed_at = CURRENT_TIMESTAMP,
    updated_at = CURRENT_TIMESTAMP
WHERE email = $1
RETURNING ` + subscriberColumns

// UnsubscribeSubscriber marks a subscriber as unsubscribed
func (s *Store) UnsubscribeSubscriber(ctx context.Context, email string) (NewsletterSubscriber, error) {
	var sub NewsletterSubscriber
	err := s.db.GetContext(ctx, &sub, sqlUnsubscribeSubscriber, email, SubscriberStatusUnsubscribed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NewsletterSubscriber{}, ErrNotFound
		}
		return NewsletterSubscriber{}, fmt.Errorf("failed to unsubscribe subscriber: %w", err)
	}
	return sub, nil
}
