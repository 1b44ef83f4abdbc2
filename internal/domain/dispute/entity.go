package dispute

import (
	"errors"
	"slices"
	"time"
)

// Dispute tracks one chargeback opened against a payment. Rows are keyed by
// the processor's dispute id, so redelivered created-events collapse into one
// row and later lifecycle events update it in place.
type Dispute struct {
	ID                string    `json:"dispute_id"`
	PaymentID         string    `json:"payment_id"`
	ProviderDisputeID string    `json:"provider_dispute_id"`
	Amount            int64     `json:"amount"`
	Currency          string    `json:"currency"`
	Reason            string    `json:"reason"`
	Status            Status    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NewDispute is the insert shape; the store assigns ID and timestamps.
type NewDispute struct {
	PaymentID         string
	ProviderDisputeID string
	Amount            int64
	Currency          string
	Reason            string
	Status            Status
}

type Status string

const (
	StatusNeedsResponse Status = "needs_response"
	StatusUnderReview   Status = "under_review"
	StatusWon           Status = "won"
	StatusLost          Status = "lost"
	// StatusClosed means the processor closed the dispute without telling us
	// the resolution; a later won/lost event may still refine it.
	StatusClosed Status = "closed"
)

var AvailableStatuses = []Status{StatusNeedsResponse, StatusUnderReview, StatusWon, StatusLost, StatusClosed}

func NewStatus(raw string) (Status, error) {
	if slices.Contains(AvailableStatuses, Status(raw)) {
		return Status(raw), nil
	}
	return "", errors.New("invalid dispute status")
}

// CanBeUpdatedTo guards the dispute lifecycle: response and review states
// only move forward, won and lost are final.
func (s Status) CanBeUpdatedTo(next Status) bool {
	if s == next {
		return false
	}
	switch s {
	case StatusNeedsResponse:
		return true
	case StatusUnderReview:
		return next != StatusNeedsResponse
	case StatusClosed:
		return next == StatusWon || next == StatusLost
	default:
		return false
	}
}

// Event is the projection of a charge.dispute.* webhook object.
type Event struct {
	ProviderDisputeID string `json:"id"`
	ChargeID          string `json:"charge"`
	Amount            int64  `json:"amount"`
	Currency          string `json:"currency"`
	Reason            string `json:"reason"`
	Status            string `json:"status"`
}

type DisputesQuery struct {
	PaymentIDs []string
	Statuses   []Status
}
