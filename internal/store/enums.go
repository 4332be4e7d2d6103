package store

// Receipt ENUMs
const (
	ReceiptStatusPending   = "PENDING"
	ReceiptStatusVerified  = "VERIFIED"
	ReceiptStatusRejected  = "REJECTED"
	ReceiptStatusDuplicate = "DUPLICATE"
)

// Bonus Claim ENUMs
const (
	ClaimStatusPending    = "PENDING"
	ClaimStatusProcessing = "PROCESSING"
	ClaimStatusApproved   = "APPROVED"
	ClaimStatusRejected   = "REJECTED"
	ClaimStatusDelivered  = "DELIVERED"
)

// Book format ENUMs
const (
	FormatHardcover = "hardcover"
	FormatPaperback = "paperback"
	FormatEbook     = "ebook"
	FormatAudiobook = "audiobook"
)

// Access Code ENUMs
const (
	CodeStatusActive   = "ACTIVE"
	CodeStatusRedeemed = "REDEEMED"
	CodeStatusExpired  = "EXPIRED"
	CodeStatusRevoked  = "REVOKED"
)

// Newsletter Subscriber ENUMs
const (
	SubscriberStatusPending      = "pending"
	SubscriberStatusConfirmed    = "confirmed"
	SubscriberStatusUnsubscribed = "unsubscribed"
)
