package app

import (
	"context"

	"sessionpay/config"
	"sessionpay/internal/consumers"
	"sessionpay/internal/external/kafka"
	"sessionpay/internal/messaging"
	"sessionpay/internal/webhook"
	"sessionpay/pkg/logger"
)

// StartWorkers starts the Kafka consumer that drains the webhook topic.
// It returns immediately; the consumer stops when ctx is cancelled.
func StartWorkers(
	ctx context.Context,
	l *logger.Logger,
	cfg config.Config,
	processor webhook.Processor,
) {
	dlqPublisher := kafka.NewDLQPublisher(l, cfg.KafkaBrokers, cfg.KafkaWebhooksDLQTopic)

	// Consumer with metrics + retry + DLQ middleware
	controller := consumers.NewWebhookMessageController(l, processor)
	handler := messaging.WithMetrics(
		messaging.WithDLQ(
			messaging.WithRetry(controller.HandleMessage, messaging.DefaultRetryConfig()),
			dlqPublisher,
		),
		cfg.KafkaWebhooksTopic,
		cfg.KafkaWebhooksConsumerGroup,
	)
	consumer := kafka.NewConsumer(
		l,
		cfg.KafkaBrokers,
		cfg.KafkaWebhooksTopic,
		cfg.KafkaWebhooksConsumerGroup,
	)
	runner := messaging.NewRunner(l, []messaging.Worker{consumer}, handler)

	go func() {
		defer dlqPublisher.Close()

		l.Info("Starting webhook consumer: topic=%s group=%s",
			cfg.KafkaWebhooksTopic, cfg.KafkaWebhooksConsumerGroup)
		if err := runner.Start(ctx); err != nil {
			l.Error("Webhook runner failed: error=%v", err)
		}
	}()
}
