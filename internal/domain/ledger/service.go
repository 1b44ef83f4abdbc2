package ledger

import (
	"context"
	"fmt"
	"time"

	"sessionpay/internal/controller/apperror"
	"sessionpay/pkg/logger"
)

// Service owns the event ledger. RecordIfNew is the synchronization point
// for the whole webhook pipeline; everything downstream trusts that exactly
// one delivery of each event id got inserted=true.
type Service struct {
	repo  Repo
	audit AuditSink
	l     *logger.Logger
	now   func() time.Time
}

// NewService builds the ledger service; audit may be nil when no search
// backend is configured.
func NewService(repo Repo, audit AuditSink, l *logger.Logger) *Service {
	return &Service{repo: repo, audit: audit, l: l, now: time.Now}
}

// RecordIfNew ledgers the event on first delivery and returns the stored row
// either way. Callers decide what a redelivery means from inserted and
// stored.Processed.
func (s *Service) RecordIfNew(ctx context.Context, e Event) (Event, bool, error) {
	e.ReceivedAt = s.now().UTC()

	stored, inserted, err := s.repo.InsertIfAbsent(ctx, e)
	if err != nil {
		return Event{}, false, apperror.Wrap(apperror.KindStoreUnavailable, err, "ledger event")
	}

	if inserted && s.audit != nil {
		if err := s.audit.Record(ctx, stored); err != nil {
			s.l.WarnCtx(ctx, "audit sink write failed: event_id=%s err=%s", stored.ID, err)
		}
	}
	return stored, inserted, nil
}

// MarkOutcome finalizes the ledger row after handler dispatch. processingError
// nil means the event applied cleanly; non-nil records a permanent rejection.
// Marking is best-effort for callers: an unmarked row stays unprocessed and
// simply gets handled again on redelivery.
func (s *Service) MarkOutcome(ctx context.Context, id string, processingError *string) error {
	if err := s.repo.MarkOutcome(ctx, id, processingError); err != nil {
		return fmt.Errorf("mark event outcome: %w", err)
	}
	return nil
}

func (s *Service) GetEvents(ctx context.Context, query EventsQuery) ([]Event, error) {
	events, err := s.repo.GetEvents(ctx, &query)
	if err != nil {
		return nil, fmt.Errorf("filter events: %w", err)
	}
	return events, nil
}
