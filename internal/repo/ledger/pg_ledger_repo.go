package ledger_repo

import (
	"context"
	"fmt"

	"sessionpay/internal/domain/ledger"
	"sessionpay/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// PgLedgerRepo persists the webhook event ledger.
type PgLedgerRepo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewPgLedgerRepo(pg *postgres.Postgres) ledger.Repo {
	return &PgLedgerRepo{db: pg.Pool, builder: pg.Builder}
}

func (r *PgLedgerRepo) InsertIfAbsent(ctx context.Context, e ledger.Event) (ledger.Event, bool, error) {
	query, args, err := r.builder.Insert("webhook_events").
		Columns("id", "type", "payload", "received_at").
		Values(e.ID, e.Type, e.Payload, e.ReceivedAt).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return ledger.Event{}, false, fmt.Errorf("build insert query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return ledger.Event{}, false, fmt.Errorf("insert webhook event: %w", err)
	}

	if tag.RowsAffected() > 0 {
		return e, true, nil
	}

	// Conflict: another delivery won the insert. Read the stored row so the
	// caller sees its processed flag rather than the incoming copy.
	stored, err := r.getByID(ctx, e.ID)
	if err != nil {
		return ledger.Event{}, false, err
	}
	return stored, false, nil
}

func (r *PgLedgerRepo) MarkOutcome(ctx context.Context, id string, processingError *string) error {
	query, args, err := r.builder.Update("webhook_events").
		Set("processed", true).
		Set("processing_error", processingError).
		Set("processed_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("mark webhook event: %w", err)
	}
	return nil
}

func (r *PgLedgerRepo) GetEvents(ctx context.Context, q *ledger.EventsQuery) ([]ledger.Event, error) {
	query := r.builder.Select(
		"id", "type", "payload", "received_at", "processed", "processing_error", "processed_at").
		From("webhook_events").
		OrderBy("received_at DESC")

	if len(q.IDs) > 0 {
		query = query.Where(squirrel.Eq{"id": q.IDs})
	}

	if len(q.Types) > 0 {
		query = query.Where(squirrel.Eq{"type": q.Types})
	}

	if q.Processed != nil {
		query = query.Where(squirrel.Eq{"processed": *q.Processed})
	}

	if q.Pagination != nil {
		offset := (q.Pagination.PageNumber - 1) * q.Pagination.PageSize
		query = query.Limit(uint64(q.Pagination.PageSize)).Offset(uint64(offset))
	}

	sql, args, _ := query.ToSql()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query webhook events: %w", err)
	}
	defer rows.Close()

	return parseEventRows(rows)
}

func (r *PgLedgerRepo) getByID(ctx context.Context, id string) (ledger.Event, error) {
	query, args, err := r.builder.Select(
		"id", "type", "payload", "received_at", "processed", "processing_error", "processed_at").
		From("webhook_events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return ledger.Event{}, fmt.Errorf("build select query: %w", err)
	}

	e, err := parseEventRow(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return ledger.Event{}, fmt.Errorf("get webhook event: %w", err)
	}
	return e, nil
}

// Helper functions
func parseEventRow(row pgx.Row) (ledger.Event, error) {
	var e ledger.Event
	err := row.Scan(&e.ID, &e.Type, &e.Payload, &e.ReceivedAt,
		&e.Processed, &e.ProcessingError, &e.ProcessedAt)
	if err != nil {
		return ledger.Event{}, err
	}
	return e, nil
}

func parseEventRows(rows pgx.Rows) ([]ledger.Event, error) {
	var events []ledger.Event
	for rows.Next() {
		e, err := parseEventRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan webhook event row: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate webhook event rows: %w", err)
	}

	return events, nil
}
