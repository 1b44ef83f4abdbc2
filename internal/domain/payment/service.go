package payment

import (
	"context"
	"fmt"
	"time"

	"sessionpay/internal/controller/apperror"
	"sessionpay/pkg/logger"
)

// Service applies payment lifecycle events to the payment store. Every Apply*
// method is idempotent: re-delivering the same event converges to the same
// end state.
type Service struct {
	repo Repo
	l    *logger.Logger
	now  func() time.Time
}

func NewService(repo Repo, l *logger.Logger) *Service {
	return &Service{repo: repo, l: l, now: time.Now}
}

func (s *Service) GetPaymentByID(ctx context.Context, id string) (Payment, error) {
	query, err := NewPaymentsQueryBuilder().WithIDs(id).Build()
	if err != nil {
		return Payment{}, err
	}

	payments, err := s.repo.GetPayments(ctx, query)
	if err != nil {
		return Payment{}, fmt.Errorf("get payment: %w", err)
	}
	if len(payments) == 0 {
		return Payment{}, apperror.New(apperror.KindNotFound, "payment %s not found", id)
	}
	return payments[0], nil
}

func (s *Service) GetPayments(ctx context.Context, query PaymentsQuery) ([]Payment, error) {
	payments, err := s.repo.GetPayments(ctx, &query)
	if err != nil {
		return nil, fmt.Errorf("filter payments: %w", err)
	}
	return payments, nil
}

// PaymentIDByCharge resolves the payment owning a processor charge. It backs
// the dispute domain's payment lookup and returns a retryable not-found while
// the charge link is still in flight.
func (s *Service) PaymentIDByCharge(ctx context.Context, chargeID string) (string, error) {
	p, err := s.repo.GetByChargeID(ctx, chargeID)
	if err != nil {
		return "", apperror.Wrap(apperror.KindStoreUnavailable, err, "load payment by charge")
	}
	if p == nil {
		return "", apperror.New(apperror.KindNotFound, "payment for charge %s not visible yet", chargeID)
	}
	return p.ID, nil
}

// ApplyIntentSucceeded transitions pending -> completed, stamps paid_at and
// mirrors the status onto the booking projection in the same transaction.
// A payment already completed is a duplicate delivery and a no-op.
func (s *Service) ApplyIntentSucceeded(ctx context.Context, ev IntentEvent) error {
	if ev.IntentID == "" {
		return apperror.New(apperror.KindMalformedPayload, "intent event without id")
	}

	return s.repo.InTransaction(ctx, func(tx TxRepo) error {
		p, err := tx.GetByIntentID(ctx, ev.IntentID)
		if err != nil {
			return apperror.Wrap(apperror.KindStoreUnavailable, err, "load payment by intent")
		}
		if p == nil {
			// The booking flow may not have committed the payment row yet.
			return apperror.New(apperror.KindNotFound, "payment for intent %s not visible yet", ev.IntentID)
		}

		if p.Status == StatusCompleted {
			s.l.InfoCtx(ctx, "duplicate intent.succeeded ignored: intent_id=%s", ev.IntentID)
			return nil
		}
		if p.Status.Terminal() {
			return apperror.New(apperror.KindStateConflict,
				"intent %s is %s, cannot complete", ev.IntentID, p.Status)
		}

		paidAt := s.now().UTC()
		if err := tx.MarkCompleted(ctx, p.ID, paidAt); err != nil {
			return apperror.Wrap(apperror.KindStoreUnavailable, err, "mark payment completed")
		}

		if ref := bookingRef(p, ev.BookingRef()); ref != "" {
			if err := tx.UpdateBookingPayment(ctx, ref, StatusCompleted, &paidAt); err != nil {
				return apperror.Wrap(apperror.KindStoreUnavailable, err, "mirror booking payment status")
			}
		}
		return nil
	})
}

// ApplyIntentFailed moves a payment out of pending only. A late failure for
// an intent that already completed or refunded is a reordered delivery and
// must never regress the terminal status.
func (s *Service) ApplyIntentFailed(ctx context.Context, ev IntentEvent) error {
	if ev.IntentID == "" {
		return apperror.New(apperror.KindMalformedPayload, "intent event without id")
	}

	return s.repo.InTransaction(ctx, func(tx TxRepo) error {
		p, err := tx.GetByIntentID(ctx, ev.IntentID)
		if err != nil {
			return apperror.Wrap(apperror.KindStoreUnavailable, err, "load payment by intent")
		}
		if p == nil {
			return apperror.New(apperror.KindNotFound, "payment for intent %s not visible yet", ev.IntentID)
		}

		if p.Status == StatusFailed {
			s.l.InfoCtx(ctx, "duplicate intent.failed ignored: intent_id=%s", ev.IntentID)
			return nil
		}
		if p.Status.Terminal() {
			return apperror.New(apperror.KindStateConflict,
				"intent %s is %s, failure event cannot regress it", ev.IntentID, p.Status)
		}

		if err := tx.MarkFailed(ctx, p.ID); err != nil {
			return apperror.Wrap(apperror.KindStoreUnavailable, err, "mark payment failed")
		}
		return nil
	})
}

// ApplyChargeSucceeded links the processor charge id onto the payment so that
// later refund and dispute events can resolve it by charge id.
func (s *Service) ApplyChargeSucceeded(ctx context.Context, ev ChargeEvent) error {
	if ev.ChargeID == "" || ev.IntentID == "" {
		return apperror.New(apperror.KindMalformedPayload, "charge event missing id or payment_intent")
	}

	return s.repo.InTransaction(ctx, func(tx TxRepo) error {
		p, err := tx.GetByIntentID(ctx, ev.IntentID)
		if err != nil {
			return apperror.Wrap(apperror.KindStoreUnavailable, err, "load payment by intent")
		}
		if p == nil {
			return apperror.New(apperror.KindNotFound, "payment for intent %s not visible yet", ev.IntentID)
		}

		if p.ChargeID != nil && *p.ChargeID == ev.ChargeID {
			s.l.InfoCtx(ctx, "duplicate charge.succeeded ignored: charge_id=%s", ev.ChargeID)
			return nil
		}

		if err := tx.SetChargeID(ctx, p.ID, ev.ChargeID); err != nil {
			return apperror.Wrap(apperror.KindStoreUnavailable, err, "set charge id")
		}
		return nil
	})
}

// ApplyChargeRefunded sets status refunded and stores the event's
// amount_refunded as authoritative. Partial-refund sequences always carry the
// cumulative amount, so repeated or re-ordered deliveries never double-count.
func (s *Service) ApplyChargeRefunded(ctx context.Context, ev ChargeEvent) error {
	if ev.ChargeID == "" {
		return apperror.New(apperror.KindMalformedPayload, "charge event without id")
	}

	return s.repo.InTransaction(ctx, func(tx TxRepo) error {
		p, err := tx.GetByChargeID(ctx, ev.ChargeID)
		if err != nil {
			return apperror.Wrap(apperror.KindStoreUnavailable, err, "load payment by charge")
		}
		if p == nil {
			// charge.succeeded may still be in flight; redelivery will find it.
			return apperror.New(apperror.KindNotFound, "payment for charge %s not visible yet", ev.ChargeID)
		}

		if p.Status == StatusFailed {
			return apperror.New(apperror.KindStateConflict,
				"charge %s belongs to a failed payment, refund rejected", ev.ChargeID)
		}
		if p.Status == StatusRefunded && p.RefundAmount == ev.AmountRefunded {
			s.l.InfoCtx(ctx, "duplicate charge.refunded ignored: charge_id=%s", ev.ChargeID)
			return nil
		}

		if err := tx.MarkRefunded(ctx, p.ID, ev.AmountRefunded); err != nil {
			return apperror.Wrap(apperror.KindStoreUnavailable, err, "mark payment refunded")
		}

		if ref := bookingRef(p, ev.Metadata["booking_id"]); ref != "" {
			if err := tx.UpdateBookingPayment(ctx, ref, StatusRefunded, nil); err != nil {
				return apperror.Wrap(apperror.KindStoreUnavailable, err, "mirror booking payment status")
			}
		}
		return nil
	})
}

// bookingRef prefers the reference stored on the payment row and falls back
// to the one carried in event metadata.
func bookingRef(p *Payment, metaRef string) string {
	if p.BookingID != nil && *p.BookingID != "" {
		return *p.BookingID
	}
	return metaRef
}
