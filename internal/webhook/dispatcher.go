package webhook

import (
	"context"
	"encoding/json"
	"time"

	"sessionpay/internal/controller/apperror"
	"sessionpay/internal/domain/account"
	"sessionpay/internal/domain/dispute"
	"sessionpay/internal/domain/payment"
	"sessionpay/internal/domain/payout"
	"sessionpay/pkg/logger"
)

type PaymentService interface {
	ApplyIntentSucceeded(ctx context.Context, ev payment.IntentEvent) error
	ApplyIntentFailed(ctx context.Context, ev payment.IntentEvent) error
	ApplyChargeSucceeded(ctx context.Context, ev payment.ChargeEvent) error
	ApplyChargeRefunded(ctx context.Context, ev payment.ChargeEvent) error
}

type DisputeService interface {
	ApplyCreated(ctx context.Context, ev dispute.Event) error
	ApplyUpdated(ctx context.Context, ev dispute.Event) error
	ApplyClosed(ctx context.Context, ev dispute.Event) error
}

type PayoutService interface {
	ApplyPayoutEvent(ctx context.Context, ev payout.PayoutEvent) error
	ApplyTransferCreated(ctx context.Context, ev payout.TransferEvent) error
}

type AccountService interface {
	ApplyUpdated(ctx context.Context, ev account.Event, eventTime time.Time) error
}

// Dispatcher routes a ledgered event to its reconciliation handler.
type Dispatcher struct {
	payments PaymentService
	disputes DisputeService
	payouts  PayoutService
	accounts AccountService
	l        *logger.Logger
}

func NewDispatcher(payments PaymentService, disputes DisputeService, payouts PayoutService, accounts AccountService, l *logger.Logger) *Dispatcher {
	return &Dispatcher{
		payments: payments,
		disputes: disputes,
		payouts:  payouts,
		accounts: accounts,
		l:        l,
	}
}

// Dispatch applies the event. handled=false means the type is not one we
// reconcile; such events are acknowledged and kept in the ledger untouched.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) (handled bool, err error) {
	switch ev.Type {
	case TypeIntentSucceeded:
		return true, applyObject(ctx, ev, d.payments.ApplyIntentSucceeded)
	case TypeIntentFailed:
		return true, applyObject(ctx, ev, d.payments.ApplyIntentFailed)
	case TypeChargeSucceeded:
		return true, applyObject(ctx, ev, d.payments.ApplyChargeSucceeded)
	case TypeChargeRefunded:
		return true, applyObject(ctx, ev, d.payments.ApplyChargeRefunded)
	case TypeDisputeCreated:
		return true, applyObject(ctx, ev, d.disputes.ApplyCreated)
	case TypeDisputeUpdated:
		return true, applyObject(ctx, ev, d.disputes.ApplyUpdated)
	case TypeDisputeClosed:
		return true, applyObject(ctx, ev, d.disputes.ApplyClosed)
	case TypePayoutPaid, TypePayoutFailed:
		return true, applyObject(ctx, ev, d.payouts.ApplyPayoutEvent)
	case TypeTransferCreated:
		return true, applyObject(ctx, ev, d.payouts.ApplyTransferCreated)
	case TypeAccountUpdated:
		return true, applyObject(ctx, ev, func(ctx context.Context, obj account.Event) error {
			return d.accounts.ApplyUpdated(ctx, obj, ev.CreatedTime())
		})
	default:
		d.l.InfoCtx(ctx, "unhandled event type acknowledged: event_id=%s type=%s", ev.ID, ev.Type)
		return false, nil
	}
}

func applyObject[T any](ctx context.Context, ev Event, apply func(context.Context, T) error) error {
	var obj T
	if err := json.Unmarshal(ev.Data.Object, &obj); err != nil {
		return apperror.Wrap(apperror.KindMalformedPayload, err, "decode event object")
	}
	return apply(ctx, obj)
}
