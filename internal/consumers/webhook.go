package consumers

import (
	"context"
	"encoding/json"
	"fmt"

	"sessionpay/internal/messaging"
	"sessionpay/internal/webhook"
	"sessionpay/pkg/logger"
)

// WebhookMessageController drains the webhook relay topic in kafka mode.
// The processor it wraps is the same sync pipeline the HTTP path uses, so a
// message replayed by Kafka meets the same ledger-based idempotency.
type WebhookMessageController struct {
	logger    *logger.Logger
	processor webhook.Processor
}

func NewWebhookMessageController(l *logger.Logger, processor webhook.Processor) *WebhookMessageController {
	return &WebhookMessageController{
		logger:    l,
		processor: processor,
	}
}

// HandleMessage processes one relayed webhook event. A nil return commits
// the offset; a non-nil return leaves it for the retry/DLQ middleware.
func (c *WebhookMessageController) HandleMessage(ctx context.Context, key, value []byte) error {
	var env messaging.Envelope
	if err := json.Unmarshal(value, &env); err != nil {
		c.logger.ErrorCtx(ctx, "Failed to unmarshal envelope: key=%s error=%v", string(key), err)
		return fmt.Errorf("unmarshal envelope: %w", err)
	}

	c.logger.DebugCtx(ctx, "Processing webhook message: event_id=%s key=%s type=%s",
		env.EventID, env.Key, env.Type)

	ev, err := webhook.Parse(env.Payload)
	if err != nil {
		// the HTTP edge parsed this body once already; treat it as poison
		c.logger.ErrorCtx(ctx, "Undecodable relayed event: event_id=%s error=%v", env.EventID, err)
		return fmt.Errorf("parse relayed event: %w", err)
	}

	if err := c.processor.Process(ctx, ev); err != nil {
		c.logger.ErrorCtx(ctx, "Failed to process webhook event: event_id=%s type=%s error=%v",
			ev.ID, ev.Type, err)
		return err
	}

	c.logger.InfoCtx(ctx, "Webhook event processed: event_id=%s type=%s", ev.ID, ev.Type)
	return nil
}
