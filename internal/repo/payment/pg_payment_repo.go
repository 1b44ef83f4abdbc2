package payment_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sessionpay/internal/domain/payment"
	"sessionpay/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// PgPaymentRepo is the main repository
type PgPaymentRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgPaymentRepo(pg *postgres.Postgres) payment.Repo {
	return &PgPaymentRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

func (r *PgPaymentRepo) InTransaction(ctx context.Context, fn func(repo payment.TxRepo) error) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		txRepo := &repo{db: tx, builder: r.pg.Builder}
		return fn(txRepo)
	})
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func (r *repo) GetPayments(ctx context.Context, query *payment.PaymentsQuery) ([]payment.Payment, error) {
	sql, args := r.buildPaymentsQuery(query)
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	return parsePaymentRows(rows)
}

func (r *repo) GetByIntentID(ctx context.Context, intentID string) (*payment.Payment, error) {
	return r.getOne(ctx, squirrel.Eq{"intent_id": intentID})
}

func (r *repo) GetByChargeID(ctx context.Context, chargeID string) (*payment.Payment, error) {
	return r.getOne(ctx, squirrel.Eq{"charge_id": chargeID})
}

func (r *repo) getOne(ctx context.Context, where squirrel.Eq) (*payment.Payment, error) {
	query, args, err := r.builder.Select(
		"id", "intent_id", "charge_id", "status", "amount", "refund_amount",
		"booking_id", "created_at", "updated_at", "paid_at").
		From("payments").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	p, err := parsePaymentRow(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

func (r *repo) MarkCompleted(ctx context.Context, id string, paidAt time.Time) error {
	query, args, err := r.builder.Update("payments").
		Set("status", payment.StatusCompleted).
		Set("paid_at", paidAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("mark payment completed: %w", err)
	}
	return nil
}

func (r *repo) MarkFailed(ctx context.Context, id string) error {
	query, args, err := r.builder.Update("payments").
		Set("status", payment.StatusFailed).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("mark payment failed: %w", err)
	}
	return nil
}

func (r *repo) MarkRefunded(ctx context.Context, id string, refundAmount int64) error {
	query, args, err := r.builder.Update("payments").
		Set("status", payment.StatusRefunded).
		Set("refund_amount", refundAmount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("mark payment refunded: %w", err)
	}
	return nil
}

func (r *repo) SetChargeID(ctx context.Context, id, chargeID string) error {
	query, args, err := r.builder.Update("payments").
		Set("charge_id", chargeID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("set payment charge: %w", err)
	}
	return nil
}

func (r *repo) UpdateBookingPayment(ctx context.Context, bookingID string, status payment.Status, paymentDate *time.Time) error {
	query, args, err := r.builder.Update("bookings").
		Set("payment_status", status).
		Set("payment_date", paymentDate).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": bookingID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query: %w", err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking payment: %w", err)
	}
	return nil
}

func (r *repo) buildPaymentsQuery(q *payment.PaymentsQuery) (string, []interface{}) {
	query := r.builder.Select(
		"id", "intent_id", "charge_id", "status", "amount", "refund_amount",
		"booking_id", "created_at", "updated_at", "paid_at").
		From("payments")

	if len(q.IDs) > 0 {
		query = query.Where(squirrel.Eq{"id": q.IDs})
	}

	if len(q.IntentIDs) > 0 {
		query = query.Where(squirrel.Eq{"intent_id": q.IntentIDs})
	}

	if len(q.BookingIDs) > 0 {
		query = query.Where(squirrel.Eq{"booking_id": q.BookingIDs})
	}

	if len(q.Statuses) > 0 {
		query = query.Where(squirrel.Eq{"status": q.Statuses})
	}

	if q.SortBy != nil && q.SortOrder != nil {
		query = query.OrderBy(fmt.Sprintf("%s %s", *q.SortBy, *q.SortOrder))
	}

	if q.Pagination != nil {
		offset := (q.Pagination.PageNumber - 1) * q.Pagination.PageSize
		query = query.Limit(uint64(q.Pagination.PageSize)).Offset(uint64(offset))
	}

	sql, args, _ := query.ToSql()
	return sql, args
}

// Helper functions
func parsePaymentRow(row pgx.Row) (payment.Payment, error) {
	var p payment.Payment
	var rawStatus string
	err := row.Scan(&p.ID, &p.IntentID, &p.ChargeID, &rawStatus, &p.Amount,
		&p.RefundAmount, &p.BookingID, &p.CreatedAt, &p.UpdatedAt, &p.PaidAt)
	if err != nil {
		return payment.Payment{}, err
	}

	status, err := payment.NewStatus(rawStatus)
	if err != nil {
		return payment.Payment{}, fmt.Errorf("invalid status in database: %w", err)
	}
	p.Status = status

	return p, nil
}

func parsePaymentRows(rows pgx.Rows) ([]payment.Payment, error) {
	var payments []payment.Payment
	for rows.Next() {
		p, err := parsePaymentRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment rows: %w", err)
	}

	return payments, nil
}
