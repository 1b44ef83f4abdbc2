package webhook

import "context"

// Processor takes a verified, parsed event the rest of the way. The sync
// implementation dispatches inline; the async one ledgers and hands off to
// Kafka. A nil return always means "acknowledge with 200": applied,
// duplicate, ignored and permanently-rejected events all land there. A
// non-nil return is retryable and maps to 500 so the processor redelivers.
type Processor interface {
	Process(ctx context.Context, ev Event) error
}
