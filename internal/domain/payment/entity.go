package payment

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Payment mirrors one processor payment intent. Rows are created in pending
// state by the booking flow; everything after that is written only by the
// webhook reconciliation handlers.
type Payment struct {
	ID           string     `json:"payment_id"`
	IntentID     string     `json:"intent_id"`
	ChargeID     *string    `json:"charge_id,omitempty"`
	Status       Status     `json:"status"`
	Amount       int64      `json:"amount"`
	RefundAmount int64      `json:"refund_amount"`
	BookingID    *string    `json:"booking_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	PaidAt       *time.Time `json:"paid_at,omitempty"`
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusRefunded  Status = "refunded"
)

var AvailableStatuses = []Status{StatusPending, StatusCompleted, StatusFailed, StatusRefunded}

func NewStatus(raw string) (Status, error) {
	if slices.Contains(AvailableStatuses, Status(raw)) {
		return Status(raw), nil
	}
	return "", errors.New("invalid payment status")
}

// Terminal reports whether no further forward transition is expected.
// refunded supersedes completed, so completed stays open for refunds only.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusRefunded
}

type Pagination struct {
	PageSize   int
	PageNumber int
}

type PaymentsQuery struct {
	IDs        []string
	IntentIDs  []string
	BookingIDs []string
	Statuses   []Status
	Pagination *Pagination
	SortBy     *string
	SortOrder  *string
}

func (q *PaymentsQuery) Validate() error {
	if q.SortBy != nil && *q.SortBy != "created_at" && *q.SortBy != "updated_at" {
		return fmt.Errorf("invalid sort by: %s", *q.SortBy)
	}
	if q.SortOrder != nil && *q.SortOrder != "asc" && *q.SortOrder != "desc" {
		return fmt.Errorf("invalid sort order: %s", *q.SortOrder)
	}
	return nil
}

type PaymentsQueryBuilder struct {
	query *PaymentsQuery
}

func NewPaymentsQueryBuilder() *PaymentsQueryBuilder {
	return &PaymentsQueryBuilder{query: &PaymentsQuery{}}
}

func (b *PaymentsQueryBuilder) Build() (*PaymentsQuery, error) {
	if err := b.query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid payments query: %w", err)
	}
	return b.query, nil
}

func (b *PaymentsQueryBuilder) WithIDs(ids ...string) *PaymentsQueryBuilder {
	b.query.IDs = ids
	return b
}

func (b *PaymentsQueryBuilder) WithIntentIDs(intentIDs ...string) *PaymentsQueryBuilder {
	b.query.IntentIDs = intentIDs
	return b
}

func (b *PaymentsQueryBuilder) WithBookingIDs(bookingIDs ...string) *PaymentsQueryBuilder {
	b.query.BookingIDs = bookingIDs
	return b
}

func (b *PaymentsQueryBuilder) WithStatuses(statuses ...Status) *PaymentsQueryBuilder {
	b.query.Statuses = statuses
	return b
}

func (b *PaymentsQueryBuilder) WithSort(sortBy, sortOrder string) *PaymentsQueryBuilder {
	b.query.SortBy = &sortBy
	b.query.SortOrder = &sortOrder
	return b
}

func (b *PaymentsQueryBuilder) WithPagination(p Pagination) *PaymentsQueryBuilder {
	b.query.Pagination = &p
	return b
}

// IntentEvent is the projection of a payment_intent.* webhook object that the
// handlers consume. The raw payload stays in the event ledger.
type IntentEvent struct {
	IntentID string            `json:"id"`
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Metadata map[string]string `json:"metadata"`
}

// BookingRef returns the booking reference carried in the event metadata,
// or "" when the payment is not attached to a booking.
func (e IntentEvent) BookingRef() string {
	return e.Metadata["booking_id"]
}

// ChargeEvent is the projection of a charge.* webhook object.
type ChargeEvent struct {
	ChargeID       string            `json:"id"`
	IntentID       string            `json:"payment_intent"`
	Amount         int64             `json:"amount"`
	AmountRefunded int64             `json:"amount_refunded"`
	Metadata       map[string]string `json:"metadata"`
}
