package ledger

import "context"

//go:generate mockgen -source repo_port.go -destination mock_repo.go -package ledger

type Repo interface {
	// InsertIfAbsent atomically records the event. When a row with the same id
	// already exists the stored row is returned with inserted=false; the write
	// and the read-back race safely against concurrent deliveries.
	InsertIfAbsent(ctx context.Context, e Event) (Event, bool, error)
	MarkOutcome(ctx context.Context, id string, processingError *string) error
	GetEvents(ctx context.Context, query *EventsQuery) ([]Event, error)
}

// AuditSink mirrors ledgered events into a search backend. Failures are
// logged, never propagated: the ledger row is the source of truth.
type AuditSink interface {
	Record(ctx context.Context, e Event) error
}
