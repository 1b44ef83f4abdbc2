package payout

import (
	"context"
	"fmt"
	"time"

	"sessionpay/internal/controller/apperror"
	"sessionpay/pkg/logger"
)

// Service applies payout.* and transfer.created events. Payouts are created
// on first sight because the processor, not us, initiates them; from then on
// the status only moves forward.
type Service struct {
	repo Repo
	l    *logger.Logger
}

func NewService(repo Repo, l *logger.Logger) *Service {
	return &Service{repo: repo, l: l}
}

func (s *Service) GetPayouts(ctx context.Context, query PayoutsQuery) ([]Payout, error) {
	payouts, err := s.repo.GetPayouts(ctx, &query)
	if err != nil {
		return nil, fmt.Errorf("filter payouts: %w", err)
	}
	return payouts, nil
}

// ApplyPayoutEvent upserts the payout row for any payout.* delivery.
// Whatever order paid and failed arrive in, the first terminal status wins
// and every later event for the same id is a no-op.
func (s *Service) ApplyPayoutEvent(ctx context.Context, ev PayoutEvent) error {
	if ev.ProviderPayoutID == "" {
		return apperror.New(apperror.KindMalformedPayload, "payout event without id")
	}
	status, err := NewStatus(ev.Status)
	if err != nil {
		return apperror.Wrap(apperror.KindMalformedPayload, err, "payout status")
	}

	return s.repo.InTransaction(ctx, func(tx TxRepo) error {
		p, err := tx.GetByProviderPayoutID(ctx, ev.ProviderPayoutID)
		if err != nil {
			return apperror.Wrap(apperror.KindStoreUnavailable, err, "load payout")
		}

		if p == nil {
			if _, err := tx.CreatePayout(ctx, NewPayout{
				ProviderPayoutID: ev.ProviderPayoutID,
				Status:           status,
				Amount:           ev.Amount,
				Currency:         ev.Currency,
				ArrivalDate:      arrivalDate(ev.ArrivalDate),
			}); err != nil {
				return apperror.Wrap(apperror.KindStoreUnavailable, err, "create payout")
			}
			return nil
		}

		if p.Status == status {
			s.l.InfoCtx(ctx, "duplicate payout event ignored: provider_payout_id=%s status=%s",
				ev.ProviderPayoutID, status)
			return nil
		}
		if p.Status.Terminal() {
			// out-of-order delivery after the payout settled
			s.l.InfoCtx(ctx, "stale payout event ignored: provider_payout_id=%s is %s, event says %s",
				ev.ProviderPayoutID, p.Status, status)
			return nil
		}
		if !p.Status.CanBeUpdatedTo(status) {
			return apperror.New(apperror.KindStateConflict,
				"payout %s is %s, cannot move to %s", ev.ProviderPayoutID, p.Status, status)
		}

		if err := tx.UpdatePayoutStatus(ctx, p.ID, status); err != nil {
			return apperror.Wrap(apperror.KindStoreUnavailable, err, "update payout status")
		}
		return nil
	})
}

// ApplyTransferCreated records the transfer once; redelivery finds the row
// under the unique provider transfer id and stops.
func (s *Service) ApplyTransferCreated(ctx context.Context, ev TransferEvent) error {
	if ev.ProviderTransferID == "" {
		return apperror.New(apperror.KindMalformedPayload, "transfer event without id")
	}

	created, err := s.repo.CreateTransferIfAbsent(ctx, NewTransfer{
		ProviderTransferID:   ev.ProviderTransferID,
		DestinationAccountID: ev.Destination,
		Amount:               ev.Amount,
		Currency:             ev.Currency,
	})
	if err != nil {
		return apperror.Wrap(apperror.KindStoreUnavailable, err, "create transfer")
	}
	if !created {
		s.l.InfoCtx(ctx, "duplicate transfer.created ignored: provider_transfer_id=%s", ev.ProviderTransferID)
	}
	return nil
}

func arrivalDate(unix int64) *time.Time {
	if unix == 0 {
		return nil
	}
	t := time.Unix(unix, 0).UTC()
	return &t
}
