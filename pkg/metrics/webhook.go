package metrics

import "github.com/prometheus/client_golang/prometheus"

// Outcome labels for WebhookEventsProcessed.
const (
	OutcomeApplied   = "applied"
	OutcomeDuplicate = "duplicate"
	OutcomeIgnored   = "ignored"
	OutcomePermanent = "permanent_failure"
	OutcomeRetryable = "retryable_failure"
)

var (
	WebhookEventsReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sessionpay",
			Subsystem: "webhook",
			Name:      "events_received_total",
			Help:      "Signed webhook events accepted into the ledger",
		},
		[]string{"type"},
	)

	WebhookEventsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sessionpay",
			Subsystem: "webhook",
			Name:      "events_processed_total",
			Help:      "Webhook events by processing outcome",
		},
		[]string{"type", "outcome"},
	)

	WebhookSignatureFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "sessionpay",
			Subsystem: "webhook",
			Name:      "signature_failures_total",
			Help:      "Requests rejected by signature verification",
		},
	)
)

func init() {
	Registry.MustRegister(WebhookEventsReceived, WebhookEventsProcessed, WebhookSignatureFailures)
}
