package webhook

import (
	"context"
	"fmt"

	"sessionpay/internal/domain/ledger"
	"sessionpay/internal/messaging"
	"sessionpay/pkg/logger"
	"sessionpay/pkg/metrics"
)

// AsyncProcessor ledgers the event at the HTTP edge and defers dispatch to
// the Kafka consumer. The 200 therefore only promises "recorded", which the
// ledger's durable insert backs; the consumer path owns applying it.
type AsyncProcessor struct {
	ledger    *ledger.Service
	publisher messaging.Publisher
	l         *logger.Logger
}

func NewAsyncProcessor(ledgerService *ledger.Service, publisher messaging.Publisher, l *logger.Logger) *AsyncProcessor {
	return &AsyncProcessor{ledger: ledgerService, publisher: publisher, l: l}
}

func (p *AsyncProcessor) Process(ctx context.Context, ev Event) error {
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

	// Unprocessed redeliveries are republished on purpose: the consumer's
	// pass through the ledger and handlers is idempotent. The raw body goes
	// on the wire so the consumer re-parses exactly what was signed.
	envelope, err := messaging.NewEnvelope(ev.ID, ev.Type, ev.Raw)
	if err != nil {
		return fmt.Errorf("create envelope: %w", err)
	}
	if err := p.publisher.Publish(ctx, envelope); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}
