package jobs

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Job type constants
const (
	TypeReceiptProcess = "receipt:process"
	TypeClaimDelivery  = "claim:delivery"
)

// Queue names
const (
	QueueHigh    = "high"
	QueueDefault = "default"
	QueueLow     = "low"
)

// ReceiptProcessPayload identifies a submitted receipt awaiting verification
type ReceiptProcessPayload struct {
	ReceiptID uuid.UUID `json:"receipt_id"`
}

// NewReceiptProcessTask creates a receipt verification task
func NewReceiptProcessTask(payload ReceiptProcessPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeReceiptProcess, data, asynq.Queue(QueueHigh), asynq.MaxRetry(5)), nil
}

// ClaimDeliveryPayload identifies an approved bonus claim awaiting its
// delivery email
type ClaimDeliveryPayload struct {
	ClaimID uuid.UUID `json:"claim_id"`
}

// NewClaimDeliveryTask creates a bonus pack delivery task
func NewClaimDeliveryTask(payload ClaimDeliveryPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeClaimDelivery, data, asynq.Queue(QueueHigh), asynq.MaxRetry(5)), nil
}
