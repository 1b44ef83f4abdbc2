package webhook

import (
	"encoding/json"
	"time"

	"sessionpay/internal/controller/apperror"
)

// Event types delivered by the payment processor.
const (
	TypeIntentSucceeded = "payment_intent.succeeded"
	TypeIntentFailed    = "payment_intent.payment_failed"
	TypeChargeSucceeded = "charge.succeeded"
	TypeChargeRefunded  = "charge.refunded"
	TypeDisputeCreated  = "charge.dispute.created"
	TypeDisputeUpdated  = "charge.dispute.updated"
	TypeDisputeClosed   = "charge.dispute.closed"
	TypeTransferCreated = "transfer.created"
	TypePayoutPaid      = "payout.paid"
	TypePayoutFailed    = "payout.failed"
	TypeAccountUpdated  = "account.updated"
)

// Event is the processor's webhook envelope. ID is the processor event id
// that keys the ledger; Data.Object carries the affected entity.
type Event struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Created int64  `json:"created"`
	Data    struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`

	// Raw is the verified request body as received, kept for the ledger.
	Raw json.RawMessage `json:"-"`
}

// Parse decodes a verified body into an Event. Structural problems are
// permanent: the processor will only ever redeliver the same bytes.
func Parse(body []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(body, &ev); err != nil {
		return Event{}, apperror.Wrap(apperror.KindMalformedPayload, err, "decode event envelope")
	}
	if ev.ID == "" || ev.Type == "" {
		return Event{}, apperror.New(apperror.KindMalformedPayload, "event envelope missing id or type")
	}
	if len(ev.Data.Object) == 0 {
		return Event{}, apperror.New(apperror.KindMalformedPayload, "event %s has no data.object", ev.ID)
	}
	ev.Raw = body
	return ev, nil
}

// CreatedTime returns the processor-side creation time of the event.
func (e Event) CreatedTime() time.Time {
	return time.Unix(e.Created, 0).UTC()
}
