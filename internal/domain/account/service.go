package account

import (
	"context"
	"fmt"
	"time"

	"sessionpay/internal/controller/apperror"
	"sessionpay/pkg/logger"
)

// Service applies account.updated snapshots. Because deliveries are not
// ordered, each snapshot carries the event's own creation time and a stale
// snapshot never overwrites a newer one.
type Service struct {
	repo Repo
	l    *logger.Logger
}

func NewService(repo Repo, l *logger.Logger) *Service {
	return &Service{repo: repo, l: l}
}

func (s *Service) GetAccountByProviderID(ctx context.Context, providerAccountID string) (*ConnectAccount, error) {
	acc, err := s.repo.GetByProviderAccountID(ctx, providerAccountID)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	if acc == nil {
		return nil, apperror.New(apperror.KindNotFound, "account %s not found", providerAccountID)
	}
	return acc, nil
}

// ApplyUpdated overwrites the snapshot wholesale when eventTime is newer
// than the stored one. An older or equal eventTime means the stored snapshot
// already reflects this or a later event, so the delivery is acknowledged
// without writing.
func (s *Service) ApplyUpdated(ctx context.Context, ev Event, eventTime time.Time) error {
	if ev.ProviderAccountID == "" {
		return apperror.New(apperror.KindMalformedPayload, "account event without id")
	}

	return s.repo.InTransaction(ctx, func(tx TxRepo) error {
		existing, err := tx.GetByProviderAccountID(ctx, ev.ProviderAccountID)
		if err != nil {
			return apperror.Wrap(apperror.KindStoreUnavailable, err, "load account")
		}

		if existing != nil && !eventTime.After(existing.LastEventAt) {
			s.l.InfoCtx(ctx, "stale account.updated ignored: provider_account_id=%s event_at=%s stored_at=%s",
				ev.ProviderAccountID, eventTime.Format(time.RFC3339), existing.LastEventAt.Format(time.RFC3339))
			return nil
		}

		if err := tx.Upsert(ctx, Snapshot{
			ProviderAccountID: ev.ProviderAccountID,
			ChargesEnabled:    ev.ChargesEnabled,
			PayoutsEnabled:    ev.PayoutsEnabled,
			DetailsSubmitted:  ev.DetailsSubmitted,
			Requirements:      ev.Requirements,
			Capabilities:      ev.Capabilities,
			Status:            ev.DeriveStatus(),
			LastEventAt:       eventTime,
		}); err != nil {
			return apperror.Wrap(apperror.KindStoreUnavailable, err, "upsert account snapshot")
		}
		return nil
	})
}
