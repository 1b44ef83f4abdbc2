package account_repo

import (
	"context"
	"errors"
	"fmt"

	"sessionpay/internal/domain/account"
	"sessionpay/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PgAccountRepo is the main repository
type PgAccountRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgAccountRepo(pg *postgres.Postgres) account.Repo {
	return &PgAccountRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

func (r *PgAccountRepo) InTransaction(ctx context.Context, fn func(tx account.TxRepo) error) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		txRepo := &repo{db: tx, builder: r.pg.Builder}
		return fn(txRepo)
	})
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func (r *repo) GetByProviderAccountID(ctx context.Context, providerAccountID string) (*account.ConnectAccount, error) {
	query, args, err := r.builder.Select(
		"id", "provider_account_id", "charges_enabled", "payouts_enabled", "details_submitted",
		"requirements", "capabilities", "status", "last_event_at", "created_at", "updated_at").
		From("connect_accounts").
		Where(squirrel.Eq{"provider_account_id": providerAccountID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	var a account.ConnectAccount
	var rawStatus string
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&a.ID, &a.ProviderAccountID, &a.ChargesEnabled, &a.PayoutsEnabled, &a.DetailsSubmitted,
		&a.Requirements, &a.Capabilities, &rawStatus, &a.LastEventAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get connect account: %w", err)
	}
	a.Status = account.Status(rawStatus)

	return &a, nil
}

func (r *repo) Upsert(ctx context.Context, s account.Snapshot) error {
	query, args, err := r.builder.Insert("connect_accounts").
		Columns("id", "provider_account_id", "charges_enabled", "payouts_enabled", "details_submitted",
			"requirements", "capabilities", "status", "last_event_at").
		Values(uuid.NewString(), s.ProviderAccountID, s.ChargesEnabled, s.PayoutsEnabled, s.DetailsSubmitted,
			s.Requirements, s.Capabilities, s.Status, s.LastEventAt).
		Suffix(`ON CONFLICT (provider_account_id) DO UPDATE SET
			charges_enabled = EXCLUDED.charges_enabled,
			payouts_enabled = EXCLUDED.payouts_enabled,
			details_submitted = EXCLUDED.details_submitted,
			requirements = EXCLUDED.requirements,
			capabilities = EXCLUDED.capabilities,
			status = EXCLUDED.status,
			last_event_at = EXCLUDED.last_event_at,
			updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("upsert connect account: %w", err)
	}
	return nil
}
