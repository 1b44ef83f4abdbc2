package consumers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"sessionpay/internal/messaging"
	"sessionpay/internal/webhook"
	"sessionpay/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProcessor struct {
	processed []webhook.Event
	err       error
}

func (f *fakeProcessor) Process(_ context.Context, ev webhook.Event) error {
	f.processed = append(f.processed, ev)
	return f.err
}

func envelopeBytes(t *testing.T, payload string) []byte {
	t.Helper()

	env, err := messaging.NewEnvelope("evt_1", "payment_intent.succeeded", json.RawMessage(payload))
	require.NoError(t, err)
	value, err := json.Marshal(env)
	require.NoError(t, err)
	return value
}

func TestWebhookMessageController_HandleMessage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	body := `{"id":"evt_1","type":"payment_intent.succeeded","created":1767225600,"data":{"object":{"id":"pi_1"}}}`

	t.Run("should hand the relayed event to the processor", func(t *testing.T) {
		// given
		processor := &fakeProcessor{}
		controller := NewWebhookMessageController(logger.New("error"), processor)

		// when
		err := controller.HandleMessage(ctx, []byte("evt_1"), envelopeBytes(t, body))

		// then
		assert.NoError(t, err)
		require.Len(t, processor.processed, 1)
		assert.Equal(t, "evt_1", processor.processed[0].ID)
		assert.Equal(t, webhook.TypeIntentSucceeded, processor.processed[0].Type)
	})

	t.Run("should reject a value that is not an envelope", func(t *testing.T) {
		// given
		processor := &fakeProcessor{}
		controller := NewWebhookMessageController(logger.New("error"), processor)

		// when
		err := controller.HandleMessage(ctx, []byte("evt_1"), []byte("not json"))

		// then
		assert.Error(t, err)
		assert.Empty(t, processor.processed)
	})

	t.Run("should reject an envelope with an undecodable event", func(t *testing.T) {
		// given
		processor := &fakeProcessor{}
		controller := NewWebhookMessageController(logger.New("error"), processor)

		// when
		err := controller.HandleMessage(ctx, []byte("evt_1"), envelopeBytes(t, `{"id":""}`))

		// then
		assert.Error(t, err)
		assert.Empty(t, processor.processed)
	})

	t.Run("should bubble processor failures for retry middleware", func(t *testing.T) {
		// given
		processor := &fakeProcessor{err: errors.New("store unavailable")}
		controller := NewWebhookMessageController(logger.New("error"), processor)

		// when
		err := controller.HandleMessage(ctx, []byte("evt_1"), envelopeBytes(t, body))

		// then
		assert.EqualError(t, err, "store unavailable")
	})
}
