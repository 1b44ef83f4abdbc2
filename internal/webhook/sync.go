package webhook

import (
	"context"
	"fmt"

	"sessionpay/internal/controller/apperror"
	"sessionpay/internal/domain/ledger"
	"sessionpay/pkg/logger"
	"sessionpay/pkg/metrics"
)

// SyncProcessor ledgers and dispatches the event inside the request. The
// kafka-mode consumer reuses it as well: RecordIfNew is idempotent, so a
// second pass over an already-ledgered, unprocessed event just dispatches.
type SyncProcessor struct {
	ledger     *ledger.Service
	dispatcher *Dispatcher
	l          *logger.Logger
}

func NewSyncProcessor(ledgerService *ledger.Service, dispatcher *Dispatcher, l *logger.Logger) *SyncProcessor {
	return &SyncProcessor{ledger: ledgerService, dispatcher: dispatcher, l: l}
}

func (p *SyncProcessor) Process(ctx context.Context, ev Event) error {
	metrics.WebhookEventsReceived.WithLabelValues(ev.Type).Inc()

	stored, inserted, err := p.ledger.RecordIfNew(ctx, ledger.Event{
		ID:      ev.ID,
		Type:    ev.Type,
		Payload: ev.Raw,
	})
	if err != nil {
		return fmt.Errorf("record event: %w", err)
	}

	if !inserted && stored.Processed {
		p.l.InfoCtx(ctx, "duplicate delivery acknowledged: event_id=%s type=%s", ev.ID, ev.Type)
		metrics.WebhookEventsProcessed.WithLabelValues(ev.Type, metrics.OutcomeDuplicate).Inc()
		return nil
	}

	return p.apply(ctx, ev)
}

// apply runs the handler and settles the ledger row. Marking the outcome is
// best-effort: if it fails the row stays unprocessed and the next delivery
// converges via the handlers' own idempotency.
func (p *SyncProcessor) apply(ctx context.Context, ev Event) error {
	handled, err := p.dispatcher.Dispatch(ctx, ev)

	switch {
	case err == nil:
		outcome := metrics.OutcomeApplied
		if !handled {
			outcome = metrics.OutcomeIgnored
		}
		p.markOutcome(ctx, ev.ID, nil)
		metrics.WebhookEventsProcessed.WithLabelValues(ev.Type, outcome).Inc()
		return nil

	case apperror.Retryable(err):
		p.l.WarnCtx(ctx, "event processing failed, awaiting redelivery: event_id=%s type=%s err=%s",
			ev.ID, ev.Type, err)
		metrics.WebhookEventsProcessed.WithLabelValues(ev.Type, metrics.OutcomeRetryable).Inc()
		return err

	default:
		// permanent: record the reason and acknowledge, retrying cannot help
		reason := err.Error()
		p.l.WarnCtx(ctx, "event rejected permanently: event_id=%s type=%s err=%s", ev.ID, ev.Type, err)
		p.markOutcome(ctx, ev.ID, &reason)
		metrics.WebhookEventsProcessed.WithLabelValues(ev.Type, metrics.OutcomePermanent).Inc()
		return nil
	}
}

func (p *SyncProcessor) markOutcome(ctx context.Context, eventID string, processingError *string) {
	if err := p.ledger.MarkOutcome(ctx, eventID, processingError); err != nil {
		p.l.WarnCtx(ctx, "mark event outcome failed: event_id=%s err=%s", eventID, err)
	}
}
