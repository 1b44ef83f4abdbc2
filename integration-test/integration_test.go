//go:build integration
// +build integration

package integration_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sessionpay/internal/app"
	"sessionpay/internal/controller/rest"
	"sessionpay/internal/controller/rest/handlers"
	"sessionpay/internal/domain/account"
	"sessionpay/internal/domain/dispute"
	"sessionpay/internal/domain/ledger"
	"sessionpay/internal/domain/payment"
	"sessionpay/internal/domain/payout"
	"sessionpay/internal/testinfra"
	"sessionpay/internal/webhook"
	account_repo "sessionpay/internal/repo/account"
	dispute_repo "sessionpay/internal/repo/dispute"
	ledger_repo "sessionpay/internal/repo/ledger"
	payment_repo "sessionpay/internal/repo/payment"
	payout_repo "sessionpay/internal/repo/payout"
	"sessionpay/pkg/health"
	"sessionpay/pkg/logger"
	"sessionpay/pkg/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const signingSecret = "whsec_integration"

var (
	pg     *testinfra.PostgresContainer
	server *httptest.Server
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	var err error
	pg, err = testinfra.NewPostgres(ctx)
	if err != nil {
		panic(err)
	}
	defer pg.Cleanup(ctx)

	server = httptest.NewServer(buildEngine(pg.Pool))
	defer server.Close()

	m.Run()
}

func buildEngine(pool *postgres.Postgres) http.Handler {
	l := logger.New("error")

	paymentService := payment.NewService(payment_repo.NewPgPaymentRepo(pool), l)
	disputeService := dispute.NewService(dispute_repo.NewPgDisputeRepo(pool), paymentService, l)
	payoutService := payout.NewService(payout_repo.NewPgPayoutRepo(pool), l)
	accountService := account.NewService(account_repo.NewPgAccountRepo(pool), l)
	ledgerService := ledger.NewService(ledger_repo.NewPgLedgerRepo(pool), nil, l)

	dispatcher := webhook.NewDispatcher(paymentService, disputeService, payoutService, accountService, l)
	processor := webhook.NewSyncProcessor(ledgerService, dispatcher, l)
	verifier := webhook.NewVerifier(signingSecret, webhook.DefaultTolerance)

	router := rest.NewRouter(
		handlers.NewWebhookHandler(verifier, processor, 1<<20, l),
		handlers.NewPaymentHandler(paymentService),
		handlers.NewDisputeHandler(disputeService),
		handlers.NewPayoutHandler(payoutService),
		handlers.NewAccountHandler(accountService),
		handlers.NewEventHandler(ledgerService),
		health.NewRegistry(health.NewPostgresChecker(pool.Pool)),
	)

	engine := app.NewGinEngine(l)
	router.SetUp(engine)
	return engine
}

func seed(t *testing.T, sql string, args ...any) {
	t.Helper()
	_, err := pg.Pool.Pool.Exec(context.Background(), sql, args...)
	require.NoError(t, err)
}

func deliver(t *testing.T, body string) *http.Response {
	t.Helper()

	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(signingSecret))
	mac.Write([]byte(fmt.Sprintf("%d.%s", ts, body)))

	req, err := http.NewRequest(http.MethodPost, server.URL+"/webhooks/processor", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set(webhook.SignatureHeader,
		fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil))))

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestIntentSucceededReconciliation(t *testing.T) {
	require.NoError(t, pg.Truncate(context.Background()))

	seed(t, `INSERT INTO bookings (id) VALUES ('bk-1')`)
	seed(t, `INSERT INTO payments (id, intent_id, status, amount, booking_id) VALUES ('pay-1', 'pi_1', 'pending', 2500, 'bk-1')`)

	body := `{"id":"evt_1","type":"payment_intent.succeeded","created":1767225600,"data":{"object":{"id":"pi_1","amount":2500,"currency":"usd","metadata":{"booking_id":"bk-1"}}}}`

	resp := deliver(t, body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status string
	var paidAt *time.Time
	err := pg.Pool.Pool.QueryRow(context.Background(),
		`SELECT status, paid_at FROM payments WHERE id = 'pay-1'`).Scan(&status, &paidAt)
	require.NoError(t, err)
	assert.Equal(t, "completed", status)
	assert.NotNil(t, paidAt)

	var bookingStatus string
	err = pg.Pool.Pool.QueryRow(context.Background(),
		`SELECT payment_status FROM bookings WHERE id = 'bk-1'`).Scan(&bookingStatus)
	require.NoError(t, err)
	assert.Equal(t, "completed", bookingStatus)

	// Redelivery of the settled event is acknowledged without another write.
	firstPaidAt := *paidAt
	resp = deliver(t, body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	err = pg.Pool.Pool.QueryRow(context.Background(),
		`SELECT status, paid_at FROM payments WHERE id = 'pay-1'`).Scan(&status, &paidAt)
	require.NoError(t, err)
	assert.Equal(t, "completed", status)
	assert.Equal(t, firstPaidAt, *paidAt)

	var ledgered int
	err = pg.Pool.Pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM webhook_events WHERE id = 'evt_1' AND processed`).Scan(&ledgered)
	require.NoError(t, err)
	assert.Equal(t, 1, ledgered)
}

func TestDuplicateDisputeCreatesOneRow(t *testing.T) {
	require.NoError(t, pg.Truncate(context.Background()))

	seed(t, `INSERT INTO payments (id, intent_id, charge_id, status, amount) VALUES ('pay-1', 'pi_1', 'ch_1', 'completed', 2500)`)

	// Same dispute arrives under two distinct event ids; the provider dispute
	// id keys the row, so the second delivery must collapse into the first.
	first := `{"id":"evt_d1","type":"charge.dispute.created","created":1767225600,"data":{"object":{"id":"dp_1","charge":"ch_1","amount":2500,"currency":"usd","reason":"fraudulent"}}}`
	second := `{"id":"evt_d2","type":"charge.dispute.created","created":1767225610,"data":{"object":{"id":"dp_1","charge":"ch_1","amount":2500,"currency":"usd","reason":"fraudulent"}}}`

	require.Equal(t, http.StatusOK, deliver(t, first).StatusCode)
	require.Equal(t, http.StatusOK, deliver(t, second).StatusCode)

	var count int
	err := pg.Pool.Pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM disputes WHERE provider_dispute_id = 'dp_1'`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPayoutSettlementIsOrderIndependent(t *testing.T) {
	require.NoError(t, pg.Truncate(context.Background()))

	paid := `{"id":"evt_p1","type":"payout.paid","created":1767225600,"data":{"object":{"id":"po_1","amount":10000,"currency":"usd","status":"paid","arrival_date":1767312000}}}`
	failedLate := `{"id":"evt_p2","type":"payout.failed","created":1767225500,"data":{"object":{"id":"po_1","amount":10000,"currency":"usd","status":"failed"}}}`

	require.Equal(t, http.StatusOK, deliver(t, paid).StatusCode)
	require.Equal(t, http.StatusOK, deliver(t, failedLate).StatusCode)

	var status string
	err := pg.Pool.Pool.QueryRow(context.Background(),
		`SELECT status FROM payouts WHERE provider_payout_id = 'po_1'`).Scan(&status)
	require.NoError(t, err)
	assert.Equal(t, "paid", status)
}

func TestUnsignedRequestIsNeverLedgered(t *testing.T) {
	require.NoError(t, pg.Truncate(context.Background()))

	body := `{"id":"evt_x","type":"payout.paid","created":1767225600,"data":{"object":{"id":"po_9","status":"paid"}}}`
	resp, err := http.Post(server.URL+"/webhooks/processor", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int
	err = pg.Pool.Pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM webhook_events WHERE id = 'evt_x'`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRetryableFailureLeavesEventOpen(t *testing.T) {
	require.NoError(t, pg.Truncate(context.Background()))

	// No payment with pi_ghost exists: the handler must ask for redelivery
	// and leave the ledger row unprocessed.
	body := `{"id":"evt_r1","type":"payment_intent.succeeded","created":1767225600,"data":{"object":{"id":"pi_ghost","amount":100,"currency":"usd"}}}`

	resp := deliver(t, body)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var processed bool
	err := pg.Pool.Pool.QueryRow(context.Background(),
		`SELECT processed FROM webhook_events WHERE id = 'evt_r1'`).Scan(&processed)
	require.NoError(t, err)
	assert.False(t, processed)

	// The payment shows up, the processor redelivers, reconciliation settles.
	seed(t, `INSERT INTO payments (id, intent_id, status, amount) VALUES ('pay-g', 'pi_ghost', 'pending', 100)`)

	resp = deliver(t, body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	err = pg.Pool.Pool.QueryRow(context.Background(),
		`SELECT processed FROM webhook_events WHERE id = 'evt_r1'`).Scan(&processed)
	require.NoError(t, err)
	assert.True(t, processed)
}
