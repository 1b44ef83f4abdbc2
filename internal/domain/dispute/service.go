package dispute

import (
	"context"
	"fmt"

	"sessionpay/internal/controller/apperror"
	"sessionpay/pkg/logger"
)

// Service applies charge.dispute.* events. Creation is keyed by the
// processor's dispute id so duplicate deliveries collapse into one row;
// later lifecycle events move the status forward in place.
type Service struct {
	repo     Repo
	payments PaymentResolver
	l        *logger.Logger
}

func NewService(repo Repo, payments PaymentResolver, l *logger.Logger) *Service {
	return &Service{repo: repo, payments: payments, l: l}
}

func (s *Service) GetDisputes(ctx context.Context, query DisputesQuery) ([]Dispute, error) {
	disputes, err := s.repo.GetDisputes(ctx, &query)
	if err != nil {
		return nil, fmt.Errorf("filter disputes: %w", err)
	}
	return disputes, nil
}

func (s *Service) GetDisputeByProviderID(ctx context.Context, providerDisputeID string) (*Dispute, error) {
	d, err := s.repo.GetByProviderDisputeID(ctx, providerDisputeID)
	if err != nil {
		return nil, fmt.Errorf("get dispute: %w", err)
	}
	if d == nil {
		return nil, apperror.New(apperror.KindNotFound, "dispute %s not found", providerDisputeID)
	}
	return d, nil
}

// ApplyCreated inserts the dispute once. The owning payment must already
// carry the charge id; until it does, the failure is retryable and the
// processor's redelivery will find it.
func (s *Service) ApplyCreated(ctx context.Context, ev Event) error {
	if ev.ProviderDisputeID == "" || ev.ChargeID == "" {
		return apperror.New(apperror.KindMalformedPayload, "dispute event missing id or charge")
	}

	status := StatusNeedsResponse
	if ev.Status != "" {
		parsed, err := NewStatus(ev.Status)
		if err != nil {
			return apperror.Wrap(apperror.KindMalformedPayload, err, "dispute status")
		}
		status = parsed
	}

	paymentID, err := s.payments.PaymentIDByCharge(ctx, ev.ChargeID)
	if err != nil {
		return fmt.Errorf("resolve payment for dispute: %w", err)
	}

	return s.repo.InTransaction(ctx, func(tx TxRepo) error {
		existing, err := tx.GetByProviderDisputeID(ctx, ev.ProviderDisputeID)
		if err != nil {
			return apperror.Wrap(apperror.KindStoreUnavailable, err, "load dispute")
		}
		if existing != nil {
			s.l.InfoCtx(ctx, "duplicate dispute.created ignored: provider_dispute_id=%s", ev.ProviderDisputeID)
			return nil
		}

		if _, err := tx.Create(ctx, NewDispute{
			PaymentID:         paymentID,
			ProviderDisputeID: ev.ProviderDisputeID,
			Amount:            ev.Amount,
			Currency:          ev.Currency,
			Reason:            ev.Reason,
			Status:            status,
		}); err != nil {
			return apperror.Wrap(apperror.KindStoreUnavailable, err, "create dispute")
		}
		return nil
	})
}

// ApplyUpdated moves the dispute status forward in place. Won and lost are
// final; a bare closed may still be refined into either.
func (s *Service) ApplyUpdated(ctx context.Context, ev Event) error {
	return s.applyTransition(ctx, ev, "dispute.updated")
}

// ApplyClosed records the processor's resolution. Same transition rules as
// ApplyUpdated; the event type only differs on the wire.
func (s *Service) ApplyClosed(ctx context.Context, ev Event) error {
	return s.applyTransition(ctx, ev, "dispute.closed")
}

func (s *Service) applyTransition(ctx context.Context, ev Event, eventName string) error {
	if ev.ProviderDisputeID == "" {
		return apperror.New(apperror.KindMalformedPayload, "dispute event without id")
	}
	status, err := NewStatus(ev.Status)
	if err != nil {
		return apperror.Wrap(apperror.KindMalformedPayload, err, "dispute status")
	}

	return s.repo.InTransaction(ctx, func(tx TxRepo) error {
		d, err := tx.GetByProviderDisputeID(ctx, ev.ProviderDisputeID)
		if err != nil {
			return apperror.Wrap(apperror.KindStoreUnavailable, err, "load dispute")
		}
		if d == nil {
			// created-event may still be in flight
			return apperror.New(apperror.KindNotFound, "dispute %s not visible yet", ev.ProviderDisputeID)
		}

		if d.Status == status {
			s.l.InfoCtx(ctx, "duplicate %s ignored: provider_dispute_id=%s", eventName, ev.ProviderDisputeID)
			return nil
		}
		if !d.Status.CanBeUpdatedTo(status) {
			return apperror.New(apperror.KindStateConflict,
				"dispute %s is %s, cannot move to %s", ev.ProviderDisputeID, d.Status, status)
		}

		if err := tx.UpdateStatus(ctx, d.ID, status); err != nil {
			return apperror.Wrap(apperror.KindStoreUnavailable, err, "update dispute status")
		}
		return nil
	})
}
