package payment

import (
	"context"
	"time"
)

//go:generate mockgen -source repo_port.go -destination mock_repo.go -package payment

// TxRepo is the per-transaction view of the payment store. GetBy* methods
// return (nil, nil) when no row matches, so callers can distinguish an
// absent payment (retryable race) from a store failure.
type TxRepo interface {
	GetPayments(ctx context.Context, query *PaymentsQuery) ([]Payment, error)
	GetByIntentID(ctx context.Context, intentID string) (*Payment, error)
	GetByChargeID(ctx context.Context, chargeID string) (*Payment, error)

	MarkCompleted(ctx context.Context, id string, paidAt time.Time) error
	MarkFailed(ctx context.Context, id string) error
	MarkRefunded(ctx context.Context, id string, refundAmount int64) error
	SetChargeID(ctx context.Context, id, chargeID string) error

	// UpdateBookingPayment mirrors payment status onto the booking projection.
	// Only payment_status and payment_date are ever written; the booking row
	// itself is owned by the booking subsystem.
	UpdateBookingPayment(ctx context.Context, bookingID string, status Status, paymentDate *time.Time) error
}

type Repo interface {
	TxRepo
	InTransaction(ctx context.Context, fn func(repo TxRepo) error) error
}
