package account_repo

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"sessionpay/internal/domain/account"

	"github.com/Masterminds/squirrel"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByProviderAccountID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &repo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}
	ctx := context.Background()

	t.Run("should return account by provider id", func(t *testing.T) {
		expectedTime := time.Now()
		requirements := json.RawMessage(`{"currently_due":[]}`)

		rows := mock.NewRows([]string{"id", "provider_account_id", "charges_enabled", "payouts_enabled", "details_submitted", "requirements", "capabilities", "status", "last_event_at", "created_at", "updated_at"}).
			AddRow("acc-1", "acct_1", true, true, true, requirements, json.RawMessage(`{}`), "active", expectedTime, expectedTime, expectedTime)

		mock.ExpectQuery(`SELECT id, provider_account_id, charges_enabled, payouts_enabled, details_submitted, requirements, capabilities, status, last_event_at, created_at, updated_at FROM connect_accounts WHERE provider_account_id = \$1`).
			WithArgs("acct_1").
			WillReturnRows(rows)

		result, err := repo.GetByProviderAccountID(ctx, "acct_1")

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "acc-1", result.ID)
		assert.Equal(t, account.StatusActive, result.Status)
		assert.True(t, result.ChargesEnabled)
	})

	t.Run("should return nil for unknown account", func(t *testing.T) {
		rows := mock.NewRows([]string{"id", "provider_account_id", "charges_enabled", "payouts_enabled", "details_submitted", "requirements", "capabilities", "status", "last_event_at", "created_at", "updated_at"})

		mock.ExpectQuery(`SELECT id, provider_account_id, charges_enabled, payouts_enabled, details_submitted, requirements, capabilities, status, last_event_at, created_at, updated_at FROM connect_accounts WHERE provider_account_id = \$1`).
			WithArgs("acct_missing").
			WillReturnRows(rows)

		result, err := repo.GetByProviderAccountID(ctx, "acct_missing")

		require.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestUpsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &repo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}
	ctx := context.Background()

	t.Run("should upsert snapshot keyed by provider account id", func(t *testing.T) {
		lastEventAt := time.Now()
		snapshot := account.Snapshot{
			ProviderAccountID: "acct_1",
			ChargesEnabled:    true,
			PayoutsEnabled:    false,
			DetailsSubmitted:  true,
			Requirements:      json.RawMessage(`{"currently_due":["tax_id"]}`),
			Capabilities:      json.RawMessage(`{}`),
			Status:            account.StatusRestricted,
			LastEventAt:       lastEventAt,
		}

		mock.ExpectExec(`INSERT INTO connect_accounts .+ ON CONFLICT \(provider_account_id\) DO UPDATE SET`).
			WithArgs(pgxmock.AnyArg(), "acct_1", true, false, true,
				snapshot.Requirements, snapshot.Capabilities, account.StatusRestricted, lastEventAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.Upsert(ctx, snapshot)

		require.NoError(t, err)
	})

	t.Run("should handle database error", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO connect_accounts`).
			WillReturnError(assert.AnError)

		err := repo.Upsert(ctx, account.Snapshot{ProviderAccountID: "acct_1"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "upsert connect account")
	})
}
