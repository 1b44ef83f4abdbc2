package dispute_repo

import (
	"context"
	"testing"
	"time"

	"sessionpay/internal/domain/dispute"

	"github.com/Masterminds/squirrel"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByProviderDisputeID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &repo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}
	ctx := context.Background()

	t.Run("should return dispute by provider id", func(t *testing.T) {
		expectedTime := time.Now()

		rows := mock.NewRows([]string{"id", "payment_id", "provider_dispute_id", "amount", "currency", "reason", "status", "created_at", "updated_at"}).
			AddRow("disp-1", "pay-1", "dp_1", int64(2500), "usd", "fraudulent", "needs_response", expectedTime, expectedTime)

		mock.ExpectQuery(`SELECT id, payment_id, provider_dispute_id, amount, currency, reason, status, created_at, updated_at FROM disputes WHERE provider_dispute_id = \$1`).
			WithArgs("dp_1").
			WillReturnRows(rows)

		result, err := repo.GetByProviderDisputeID(ctx, "dp_1")

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "disp-1", result.ID)
		assert.Equal(t, dispute.StatusNeedsResponse, result.Status)
	})

	t.Run("should return nil when dispute is absent", func(t *testing.T) {
		rows := mock.NewRows([]string{"id", "payment_id", "provider_dispute_id", "amount", "currency", "reason", "status", "created_at", "updated_at"})

		mock.ExpectQuery(`SELECT id, payment_id, provider_dispute_id, amount, currency, reason, status, created_at, updated_at FROM disputes WHERE provider_dispute_id = \$1`).
			WithArgs("dp_missing").
			WillReturnRows(rows)

		result, err := repo.GetByProviderDisputeID(ctx, "dp_missing")

		require.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestCreateDispute(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &repo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}
	ctx := context.Background()

	t.Run("should create dispute and return stored row", func(t *testing.T) {
		expectedTime := time.Now()

		d := dispute.NewDispute{
			PaymentID:         "pay-1",
			ProviderDisputeID: "dp_1",
			Amount:            2500,
			Currency:          "usd",
			Reason:            "fraudulent",
			Status:            dispute.StatusNeedsResponse,
		}

		rows := mock.NewRows([]string{"id", "payment_id", "provider_dispute_id", "amount", "currency", "reason", "status", "created_at", "updated_at"}).
			AddRow("disp-1", "pay-1", "dp_1", int64(2500), "usd", "fraudulent", "needs_response", expectedTime, expectedTime)

		mock.ExpectQuery(`INSERT INTO disputes \(id,payment_id,provider_dispute_id,amount,currency,reason,status\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7\) RETURNING`).
			WithArgs(pgxmock.AnyArg(), "pay-1", "dp_1", int64(2500), "usd", "fraudulent", dispute.StatusNeedsResponse).
			WillReturnRows(rows)

		result, err := repo.Create(ctx, d)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "disp-1", result.ID)
		assert.Equal(t, "dp_1", result.ProviderDisputeID)
	})

	t.Run("should handle database error", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO disputes`).
			WillReturnError(assert.AnError)

		_, err := repo.Create(ctx, dispute.NewDispute{ProviderDisputeID: "dp_1"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "create dispute")
	})
}

func TestUpdateDisputeStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &repo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}
	ctx := context.Background()

	t.Run("should update status", func(t *testing.T) {
		mock.ExpectExec(`UPDATE disputes SET status = \$1, updated_at = NOW\(\) WHERE id = \$2`).
			WithArgs(dispute.StatusWon, "disp-1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateStatus(ctx, "disp-1", dispute.StatusWon)

		require.NoError(t, err)
	})
}

func TestGetDisputes(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &repo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}
	ctx := context.Background()

	t.Run("should filter by payment and status", func(t *testing.T) {
		expectedTime := time.Now()

		rows := mock.NewRows([]string{"id", "payment_id", "provider_dispute_id", "amount", "currency", "reason", "status", "created_at", "updated_at"}).
			AddRow("disp-1", "pay-1", "dp_1", int64(2500), "usd", "fraudulent", "under_review", expectedTime, expectedTime)

		mock.ExpectQuery(`SELECT id, payment_id, provider_dispute_id, amount, currency, reason, status, created_at, updated_at FROM disputes WHERE payment_id IN \(\$1\) AND status IN \(\$2\) ORDER BY created_at DESC`).
			WithArgs("pay-1", dispute.StatusUnderReview).
			WillReturnRows(rows)

		result, err := repo.GetDisputes(ctx, &dispute.DisputesQuery{
			PaymentIDs: []string{"pay-1"},
			Statuses:   []dispute.Status{dispute.StatusUnderReview},
		})

		require.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, dispute.StatusUnderReview, result[0].Status)
	})
}
