package dispute_repo

import (
	"context"
	"errors"
	"fmt"

	"sessionpay/internal/domain/dispute"
	"sessionpay/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PgDisputeRepo is the main repository
type PgDisputeRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgDisputeRepo(pg *postgres.Postgres) dispute.Repo {
	return &PgDisputeRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

func (r *PgDisputeRepo) InTransaction(ctx context.Context, fn func(tx dispute.TxRepo) error) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		txRepo := &repo{db: tx, builder: r.pg.Builder}
		return fn(txRepo)
	})
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func (r *repo) GetByProviderDisputeID(ctx context.Context, providerDisputeID string) (*dispute.Dispute, error) {
	query, args, err := r.builder.Select(
		"id", "payment_id", "provider_dispute_id", "amount", "currency",
		"reason", "status", "created_at", "updated_at").
		From("disputes").
		Where(squirrel.Eq{"provider_dispute_id": providerDisputeID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	d, err := parseDisputeRow(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dispute: %w", err)
	}
	return &d, nil
}

func (r *repo) Create(ctx context.Context, d dispute.NewDispute) (*dispute.Dispute, error) {
	id := uuid.NewString()

	query, args, err := r.builder.Insert("disputes").
		Columns("id", "payment_id", "provider_dispute_id", "amount", "currency", "reason", "status").
		Values(id, d.PaymentID, d.ProviderDisputeID, d.Amount, d.Currency, d.Reason, d.Status).
		Suffix("RETURNING id, payment_id, provider_dispute_id, amount, currency, reason, status, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	created, err := parseDisputeRow(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("create dispute: %w", err)
	}
	return &created, nil
}

func (r *repo) UpdateStatus(ctx context.Context, id string, status dispute.Status) error {
	query, args, err := r.builder.Update("disputes").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update dispute status: %w", err)
	}
	return nil
}

func (r *repo) GetDisputes(ctx context.Context, q *dispute.DisputesQuery) ([]dispute.Dispute, error) {
	query := r.builder.Select(
		"id", "payment_id", "provider_dispute_id", "amount", "currency",
		"reason", "status", "created_at", "updated_at").
		From("disputes").
		OrderBy("created_at DESC")

	if len(q.PaymentIDs) > 0 {
		query = query.Where(squirrel.Eq{"payment_id": q.PaymentIDs})
	}

	if len(q.Statuses) > 0 {
		query = query.Where(squirrel.Eq{"status": q.Statuses})
	}

	sql, args, _ := query.ToSql()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query disputes: %w", err)
	}
	defer rows.Close()

	return parseDisputeRows(rows)
}

// Helper functions
func parseDisputeRow(row pgx.Row) (dispute.Dispute, error) {
	var d dispute.Dispute
	var rawStatus string
	err := row.Scan(&d.ID, &d.PaymentID, &d.ProviderDisputeID, &d.Amount,
		&d.Currency, &d.Reason, &rawStatus, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return dispute.Dispute{}, err
	}

	status, err := dispute.NewStatus(rawStatus)
	if err != nil {
		return dispute.Dispute{}, fmt.Errorf("invalid status in database: %w", err)
	}
	d.Status = status

	return d, nil
}

func parseDisputeRows(rows pgx.Rows) ([]dispute.Dispute, error) {
	var disputes []dispute.Dispute
	for rows.Next() {
		d, err := parseDisputeRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dispute row: %w", err)
		}
		disputes = append(disputes, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dispute rows: %w", err)
	}

	return disputes, nil
}
