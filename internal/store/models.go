package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// JSONB is a custom type for JSONB fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for JSONB")
	}

	// Handle empty or null JSON
	if len(bytes) == 0 || string(bytes) == "null" {
		*j = make(JSONB)
		return nil
	}

	result := make(JSONB)
	err := json.Unmarshal(bytes, &result)
	if err != nil {
		return err
	}
	*j = result
	return nil
}

// User represents a site account that owns receipts and claims
type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	FirstName *string   `db:"first_name" json:"first_name,omitempty"`
	LastName  *string   `db:"last_name" json:"last_name,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Receipt represents an uploaded proof-of-purchase and its verification outcome
type Receipt struct {
	ID                uuid.UUID  `db:"id" json:"id"`
	UserID            uuid.UUID  `db:"user_id" json:"user_id"`
	Retailer          *string    `db:"retailer" json:"retailer,omitempty"`
	OrderNumber       *string    `db:"order_number" json:"order_number,omitempty"`
	Format            *string    `db:"format" json:"format,omitempty"`
	PurchaseDate      *time.Time `db:"purchase_date" json:"purchase_date,omitempty"`
	Status            string     `db:"status" json:"status"`
	FileHash          string     `db:"file_hash" json:"-"`
	FileKey           string     `db:"file_key" json:"-"`
	FileName          string     `db:"file_name" json:"file_name"`
	VerificationScore *int       `db:"verification_score" json:"verification_score,omitempty"`
	VerifiedAt        *time.Time `db:"verified_at" json:"verified_at,omitempty"`
	VerifiedBy        *string    `db:"verified_by" json:"verified_by,omitempty"`
	RejectionReason   *string    `db:"rejection_reason" json:"rejection_reason,omitempty"`
	OCRAttempts       int        `db:"ocr_attempts" json:"-"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}

// BonusClaim tracks bonus-pack eligibility and delivery, 1:1 with a Receipt
type BonusClaim struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	UserID             uuid.UUID  `db:"user_id" json:"user_id"`
	ReceiptID          uuid.UUID  `db:"receipt_id" json:"receipt_id"`
	Status             string     `db:"status" json:"status"`
	DeliveryEmail      string     `db:"delivery_email" json:"delivery_email"`
	DeliveredAt        *time.Time `db:"delivered_at" json:"delivered_at,omitempty"`
	DeliveryTrackingID *string    `db:"delivery_tracking_id" json:"delivery_tracking_id,omitempty"`
	AdminNotes         *string    `db:"admin_notes" json:"admin_notes,omitempty"`
	ProcessedBy        *string    `db:"processed_by" json:"processed_by,omitempty"`
	ProcessedAt        *time.Time `db:"processed_at" json:"processed_at,omitempty"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}

// AccessCode is a bulk-issued VIP code redeemable within a validity window
type AccessCode struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	Code            string     `db:"code" json:"code"`
	Status          string     `db:"status" json:"status"`
	MaxRedemptions  int        `db:"max_redemptions" json:"max_redemptions"`
	RedemptionCount int        `db:"redemption_count" json:"redemption_count"`
	ValidFrom       time.Time  `db:"valid_from" json:"valid_from"`
	ValidUntil      time.Time  `db:"valid_until" json:"valid_until"`
	RevokedAt       *time.Time `db:"revoked_at" json:"revoked_at,omitempty"`
	Metadata        JSONB      `db:"metadata" json:"metadata,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// NewsletterSubscriber represents a mailing-list signup pending or past confirmation
type NewsletterSubscriber struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	Email          string     `db:"email" json:"email"`
	Status         string     `db:"status" json:"status"`
	ConfirmedAt    *time.Time `db:"confirmed_at" json:"confirmed_at,omitempty"`
	UnsubscribedAt *time.Time `db:"unsubscribed_at" json:"unsubscribed_at,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}
