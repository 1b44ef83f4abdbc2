package payment_repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"sessionpay/internal/domain/payment"
	"sessionpay/pkg/pointers"
	"sessionpay/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPgPaymentRepo wraps the mock pool to implement the transaction testing
type testPgPaymentRepo struct {
	repo
	pool pgxmock.PgxPoolIface
	pg   *postgres.Postgres
}

func (r *testPgPaymentRepo) InTransaction(ctx context.Context, fn func(repo payment.TxRepo) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	txRepo := &repo{db: tx, builder: r.pg.Builder}

	if err := fn(txRepo); err != nil {
		tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func TestGetPayments(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &repo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}
	ctx := context.Background()

	t.Run("should return payments with basic query", func(t *testing.T) {
		expectedTime := time.Now()

		query := &payment.PaymentsQuery{
			IDs: []string{"pay-1", "pay-2"},
		}

		rows := mock.NewRows([]string{"id", "intent_id", "charge_id", "status", "amount", "refund_amount", "booking_id", "created_at", "updated_at", "paid_at"}).
			AddRow("pay-1", "pi_1", nil, "pending", int64(2500), int64(0), nil, expectedTime, expectedTime, nil).
			AddRow("pay-2", "pi_2", pointers.Ptr("ch_2"), "completed", int64(900), int64(0), pointers.Ptr("bk-2"), expectedTime, expectedTime, pointers.Ptr(expectedTime))

		mock.ExpectQuery(`SELECT id, intent_id, charge_id, status, amount, refund_amount, booking_id, created_at, updated_at, paid_at FROM payments WHERE id IN \(\$1,\$2\)`).
			WithArgs("pay-1", "pay-2").
			WillReturnRows(rows)

		result, err := repo.GetPayments(ctx, query)

		require.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "pay-1", result[0].ID)
		assert.Equal(t, "pay-2", result[1].ID)
		assert.Equal(t, payment.StatusPending, result[0].Status)
		assert.Equal(t, payment.StatusCompleted, result[1].Status)
	})

	t.Run("should reject unknown status coming from database", func(t *testing.T) {
		expectedTime := time.Now()

		rows := mock.NewRows([]string{"id", "intent_id", "charge_id", "status", "amount", "refund_amount", "booking_id", "created_at", "updated_at", "paid_at"}).
			AddRow("pay-1", "pi_1", nil, "half-done", int64(100), int64(0), nil, expectedTime, expectedTime, nil)

		mock.ExpectQuery(`SELECT id, intent_id, charge_id, status, amount, refund_amount, booking_id, created_at, updated_at, paid_at FROM payments`).
			WillReturnRows(rows)

		_, err := repo.GetPayments(ctx, &payment.PaymentsQuery{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid status in database")
	})
}

func TestGetByIntentID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &repo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}
	ctx := context.Background()

	t.Run("should return payment by intent id", func(t *testing.T) {
		expectedTime := time.Now()

		rows := mock.NewRows([]string{"id", "intent_id", "charge_id", "status", "amount", "refund_amount", "booking_id", "created_at", "updated_at", "paid_at"}).
			AddRow("pay-1", "pi_1", nil, "pending", int64(2500), int64(0), nil, expectedTime, expectedTime, nil)

		mock.ExpectQuery(`SELECT id, intent_id, charge_id, status, amount, refund_amount, booking_id, created_at, updated_at, paid_at FROM payments WHERE intent_id = \$1`).
			WithArgs("pi_1").
			WillReturnRows(rows)

		result, err := repo.GetByIntentID(ctx, "pi_1")

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "pay-1", result.ID)
		assert.Equal(t, "pi_1", result.IntentID)
	})

	t.Run("should return nil when no payment matches", func(t *testing.T) {
		rows := mock.NewRows([]string{"id", "intent_id", "charge_id", "status", "amount", "refund_amount", "booking_id", "created_at", "updated_at", "paid_at"})

		mock.ExpectQuery(`SELECT id, intent_id, charge_id, status, amount, refund_amount, booking_id, created_at, updated_at, paid_at FROM payments WHERE intent_id = \$1`).
			WithArgs("pi_missing").
			WillReturnRows(rows)

		result, err := repo.GetByIntentID(ctx, "pi_missing")

		require.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestMarkCompleted(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &repo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}
	ctx := context.Background()

	t.Run("should mark payment completed", func(t *testing.T) {
		paidAt := time.Now()

		mock.ExpectExec(`UPDATE payments SET status = \$1, paid_at = \$2, updated_at = NOW\(\) WHERE id = \$3`).
			WithArgs(payment.StatusCompleted, paidAt, "pay-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.MarkCompleted(ctx, "pay-1", paidAt)

		require.NoError(t, err)
	})

	t.Run("should handle database error", func(t *testing.T) {
		mock.ExpectExec(`UPDATE payments SET status = \$1, paid_at = \$2, updated_at = NOW\(\) WHERE id = \$3`).
			WillReturnError(assert.AnError)

		err := repo.MarkCompleted(ctx, "pay-1", time.Now())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "mark payment completed")
	})
}

func TestMarkRefunded(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &repo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}
	ctx := context.Background()

	t.Run("should write cumulative refund amount", func(t *testing.T) {
		mock.ExpectExec(`UPDATE payments SET status = \$1, refund_amount = \$2, updated_at = NOW\(\) WHERE id = \$3`).
			WithArgs(payment.StatusRefunded, int64(1200), "pay-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.MarkRefunded(ctx, "pay-1", 1200)

		require.NoError(t, err)
	})
}

func TestUpdateBookingPayment(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &repo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}
	ctx := context.Background()

	t.Run("should mirror completed payment onto booking", func(t *testing.T) {
		paymentDate := time.Now()

		mock.ExpectExec(`UPDATE bookings SET payment_status = \$1, payment_date = \$2, updated_at = NOW\(\) WHERE id = \$3`).
			WithArgs(payment.StatusCompleted, &paymentDate, "bk-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateBookingPayment(ctx, "bk-1", payment.StatusCompleted, &paymentDate)

		require.NoError(t, err)
	})

	t.Run("should clear payment date on failure mirror", func(t *testing.T) {
		mock.ExpectExec(`UPDATE bookings SET payment_status = \$1, payment_date = \$2, updated_at = NOW\(\) WHERE id = \$3`).
			WithArgs(payment.StatusFailed, (*time.Time)(nil), "bk-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateBookingPayment(ctx, "bk-1", payment.StatusFailed, nil)

		require.NoError(t, err)
	})
}

func TestPaymentInTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	pg := &postgres.Postgres{
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
	pgRepo := &testPgPaymentRepo{
		repo: repo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)},
		pool: mock,
		pg:   pg,
	}
	ctx := context.Background()

	t.Run("should execute function in transaction successfully", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectCommit()

		executed := false
		err := pgRepo.InTransaction(ctx, func(repo payment.TxRepo) error {
			executed = true
			assert.NotNil(t, repo)
			return nil
		})

		require.NoError(t, err)
		assert.True(t, executed)
	})

	t.Run("should rollback transaction on function error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectRollback()

		expectedErr := assert.AnError
		err := pgRepo.InTransaction(ctx, func(repo payment.TxRepo) error {
			return expectedErr
		})

		require.Error(t, err)
		assert.Equal(t, expectedErr, err)
	})
}
