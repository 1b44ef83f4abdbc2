package payout

import (
	"errors"
	"slices"
	"time"
)

// Payout mirrors one processor payout to a connected account's bank. The
// processor owns the lifecycle; we only record it, and only forward.
type Payout struct {
	ID               string     `json:"payout_id"`
	ProviderPayoutID string     `json:"provider_payout_id"`
	Status           Status     `json:"status"`
	Amount           int64      `json:"amount"`
	Currency         string     `json:"currency"`
	ArrivalDate      *time.Time `json:"arrival_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type NewPayout struct {
	ProviderPayoutID string
	Status           Status
	Amount           int64
	Currency         string
	ArrivalDate      *time.Time
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusInTransit Status = "in_transit"
	StatusPaid      Status = "paid"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

var AvailableStatuses = []Status{StatusPending, StatusInTransit, StatusPaid, StatusFailed, StatusCancelled}

func NewStatus(raw string) (Status, error) {
	if slices.Contains(AvailableStatuses, Status(raw)) {
		return Status(raw), nil
	}
	return "", errors.New("invalid payout status")
}

func (s Status) Terminal() bool {
	return s == StatusPaid || s == StatusFailed || s == StatusCancelled
}

// CanBeUpdatedTo allows only forward movement: pending -> in_transit ->
// paid/failed/cancelled. A paid payout stays paid no matter what arrives
// later, and the same holds for the other terminal states.
func (s Status) CanBeUpdatedTo(newStatus Status) bool {
	switch s {
	case StatusPending:
		return slices.Contains([]Status{StatusInTransit, StatusPaid, StatusFailed, StatusCancelled}, newStatus)
	case StatusInTransit:
		return slices.Contains([]Status{StatusPaid, StatusFailed, StatusCancelled}, newStatus)
	default:
		return false
	}
}

// Transfer records one processor transfer moving funds to a connected
// account. Transfers have no lifecycle of their own here; the row is an
// idempotent fact keyed by the processor's transfer id.
type Transfer struct {
	ID                   string    `json:"transfer_id"`
	ProviderTransferID   string    `json:"provider_transfer_id"`
	DestinationAccountID string    `json:"destination_account_id"`
	Amount               int64     `json:"amount"`
	Currency             string    `json:"currency"`
	CreatedAt            time.Time `json:"created_at"`
}

type NewTransfer struct {
	ProviderTransferID   string
	DestinationAccountID string
	Amount               int64
	Currency             string
}

// PayoutEvent is the projection of a payout.* webhook object.
type PayoutEvent struct {
	ProviderPayoutID string `json:"id"`
	Amount           int64  `json:"amount"`
	Currency         string `json:"currency"`
	Status           string `json:"status"`
	// ArrivalDate is a unix timestamp in the processor's payload.
	ArrivalDate int64 `json:"arrival_date"`
}

// TransferEvent is the projection of a transfer.created webhook object.
type TransferEvent struct {
	ProviderTransferID string `json:"id"`
	Destination        string `json:"destination"`
	Amount             int64  `json:"amount"`
	Currency           string `json:"currency"`
}

type PayoutsQuery struct {
	Statuses []Status
}
