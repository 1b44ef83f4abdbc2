package payout_repo

import (
	"context"
	"errors"
	"fmt"

	"sessionpay/internal/domain/payout"
	"sessionpay/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PgPayoutRepo is the main repository
type PgPayoutRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgPayoutRepo(pg *postgres.Postgres) payout.Repo {
	return &PgPayoutRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

func (r *PgPayoutRepo) InTransaction(ctx context.Context, fn func(tx payout.TxRepo) error) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		txRepo := &repo{db: tx, builder: r.pg.Builder}
		return fn(txRepo)
	})
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func (r *repo) GetByProviderPayoutID(ctx context.Context, providerPayoutID string) (*payout.Payout, error) {
	query, args, err := r.builder.Select(
		"id", "provider_payout_id", "status", "amount", "currency",
		"arrival_date", "created_at", "updated_at").
		From("payouts").
		Where(squirrel.Eq{"provider_payout_id": providerPayoutID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	p, err := parsePayoutRow(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payout: %w", err)
	}
	return &p, nil
}

func (r *repo) CreatePayout(ctx context.Context, p payout.NewPayout) (*payout.Payout, error) {
	id := uuid.NewString()

	query, args, err := r.builder.Insert("payouts").
		Columns("id", "provider_payout_id", "status", "amount", "currency", "arrival_date").
		Values(id, p.ProviderPayoutID, p.Status, p.Amount, p.Currency, p.ArrivalDate).
		Suffix("RETURNING id, provider_payout_id, status, amount, currency, arrival_date, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	created, err := parsePayoutRow(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("create payout: %w", err)
	}
	return &created, nil
}

func (r *repo) UpdatePayoutStatus(ctx context.Context, id string, status payout.Status) error {
	query, args, err := r.builder.Update("payouts").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update payout status: %w", err)
	}
	return nil
}

func (r *repo) GetPayouts(ctx context.Context, q *payout.PayoutsQuery) ([]payout.Payout, error) {
	query := r.builder.Select(
		"id", "provider_payout_id", "status", "amount", "currency",
		"arrival_date", "created_at", "updated_at").
		From("payouts").
		OrderBy("created_at DESC")

	if len(q.Statuses) > 0 {
		query = query.Where(squirrel.Eq{"status": q.Statuses})
	}

	sql, args, _ := query.ToSql()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query payouts: %w", err)
	}
	defer rows.Close()

	return parsePayoutRows(rows)
}

func (r *repo) CreateTransferIfAbsent(ctx context.Context, t payout.NewTransfer) (bool, error) {
	id := uuid.NewString()

	query, args, err := r.builder.Insert("transfers").
		Columns("id", "provider_transfer_id", "destination_account_id", "amount", "currency").
		Values(id, t.ProviderTransferID, t.DestinationAccountID, t.Amount, t.Currency).
		Suffix("ON CONFLICT (provider_transfer_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build insert query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("create transfer: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Helper functions
func parsePayoutRow(row pgx.Row) (payout.Payout, error) {
	var p payout.Payout
	var rawStatus string
	err := row.Scan(&p.ID, &p.ProviderPayoutID, &rawStatus, &p.Amount,
		&p.Currency, &p.ArrivalDate, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return payout.Payout{}, err
	}

	status, err := payout.NewStatus(rawStatus)
	if err != nil {
		return payout.Payout{}, fmt.Errorf("invalid status in database: %w", err)
	}
	p.Status = status

	return p, nil
}

func parsePayoutRows(rows pgx.Rows) ([]payout.Payout, error) {
	var payouts []payout.Payout
	for rows.Next() {
		p, err := parsePayoutRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payout row: %w", err)
		}
		payouts = append(payouts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payout rows: %w", err)
	}

	return payouts, nil
}
