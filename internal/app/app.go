package app

import (
	"context"
	"embed"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"sessionpay/config"
	"sessionpay/internal/controller/rest"
	"sessionpay/internal/controller/rest/handlers"
	"sessionpay/internal/domain/account"
	"sessionpay/internal/domain/dispute"
	"sessionpay/internal/domain/ledger"
	"sessionpay/internal/domain/payment"
	"sessionpay/internal/domain/payout"
	"sessionpay/internal/external/kafka"
	"sessionpay/internal/external/opensearch"
	"sessionpay/internal/webhook"
	account_repo "sessionpay/internal/repo/account"
	dispute_repo "sessionpay/internal/repo/dispute"
	ledger_repo "sessionpay/internal/repo/ledger"
	payment_repo "sessionpay/internal/repo/payment"
	payout_repo "sessionpay/internal/repo/payout"
	"sessionpay/pkg/health"
	"sessionpay/pkg/logger"
	"sessionpay/pkg/postgres"
)

//go:embed migrations/*.sql
var MIGRATION_FS embed.FS

func Run(cfg config.Config) {
	l := logger.New(cfg.LogLevel)

	// Setup graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	engine := NewGinEngine(l)

	pool, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pool.Close()

	paymentRepo := payment_repo.NewPgPaymentRepo(pool)
	disputeRepo := dispute_repo.NewPgDisputeRepo(pool)
	payoutRepo := payout_repo.NewPgPayoutRepo(pool)
	accountRepo := account_repo.NewPgAccountRepo(pool)
	ledgerRepo := ledger_repo.NewPgLedgerRepo(pool)

	// Optional Opensearch mirror of the event ledger
	var auditSink ledger.AuditSink
	if len(cfg.OpensearchUrls) > 0 {
		sink, err := opensearch.NewAuditSink(ctx, cfg.OpensearchUrls, cfg.OpensearchIndexEvents)
		if err != nil {
			l.Fatal(fmt.Errorf("app - Run - opensearch.NewAuditSink: %w", err))
		}
		auditSink = sink
	}

	// Services
	paymentService := payment.NewService(paymentRepo, l)
	disputeService := dispute.NewService(disputeRepo, paymentService, l)
	payoutService := payout.NewService(payoutRepo, l)
	accountService := account.NewService(accountRepo, l)
	ledgerService := ledger.NewService(ledgerRepo, auditSink, l)

	dispatcher := webhook.NewDispatcher(paymentService, disputeService, payoutService, accountService, l)

	healthChecks := []health.Checker{health.NewPostgresChecker(pool.Pool)}

	// The processor behind the webhook endpoint depends on the mode: sync
	// dispatches in-request, kafka ledgers and parks the event on a topic.
	var processor webhook.Processor
	if cfg.WebhookMode == "kafka" {
		publisher := kafka.NewPublisher(l, cfg.KafkaBrokers, cfg.KafkaWebhooksTopic)
		defer publisher.Close()

		processor = webhook.NewAsyncProcessor(ledgerService, publisher, l)
		healthChecks = append(healthChecks, health.NewKafkaChecker(cfg.KafkaBrokers))

		l.Info("Webhook mode: kafka - starting consumers")
		StartWorkers(ctx, l, cfg, webhook.NewSyncProcessor(ledgerService, dispatcher, l))
	} else {
		processor = webhook.NewSyncProcessor(ledgerService, dispatcher, l)
	}

	verifier := webhook.NewVerifier(cfg.WebhookSigningSecret, cfg.WebhookTolerance)

	router := rest.NewRouter(
		handlers.NewWebhookHandler(verifier, processor, cfg.WebhookMaxBodyBytes, l),
		handlers.NewPaymentHandler(paymentService),
		handlers.NewDisputeHandler(disputeService),
		handlers.NewPayoutHandler(payoutService),
		handlers.NewAccountHandler(accountService),
		handlers.NewEventHandler(ledgerService),
		health.NewRegistry(healthChecks...),
	)
	router.SetUp(engine)

	err = ApplyMigrations(cfg.PgURL, MIGRATION_FS)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - ApplyMigrations: %w", err))
	}

	// Start HTTP server in a goroutine
	go func() {
		l.Info("Starting HTTP server: port=%d", cfg.Port)
		if err := engine.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			l.Error("HTTP server error: error=%v", err)
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	l.Info("Shutting down gracefully...")
}
