package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	PgURL     string `env:"PG_URL" required:"true"`
	PgPoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`

	// Webhook ingress
	WebhookSigningSecret string        `env:"WEBHOOK_SIGNING_SECRET" required:"true"`
	WebhookTolerance     time.Duration `env:"WEBHOOK_TOLERANCE" envDefault:"5m"`
	WebhookMaxBodyBytes  int64         `env:"WEBHOOK_MAX_BODY_BYTES" envDefault:"1048576"`

	// Webhook processing mode: "sync" (in-request) or "kafka" (async via Kafka)
	WebhookMode string `env:"WEBHOOK_MODE" envDefault:"sync"`

	// Kafka configuration, required in kafka mode
	KafkaBrokers               []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaWebhooksTopic         string   `env:"KAFKA_WEBHOOKS_TOPIC" envDefault:"webhooks.events"`
	KafkaWebhooksDLQTopic      string   `env:"KAFKA_WEBHOOKS_DLQ_TOPIC" envDefault:"webhooks.events.dlq"`
	KafkaWebhooksConsumerGroup string   `env:"KAFKA_WEBHOOKS_CONSUMER_GROUP" envDefault:"sessionpay-webhooks"`

	// Opensearch audit mirror, disabled when no URLs are given
	OpensearchUrls        []string `env:"OPENSEARCH_URLS" envSeparator:","`
	OpensearchIndexEvents string   `env:"OPENSEARCH_INDEX_EVENTS" envDefault:"webhook-events"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	if c.WebhookMode != "sync" && c.WebhookMode != "kafka" {
		return Config{}, fmt.Errorf("invalid WEBHOOK_MODE %q", c.WebhookMode)
	}
	if c.WebhookMode == "kafka" && len(c.KafkaBrokers) == 0 {
		return Config{}, fmt.Errorf("KAFKA_BROKERS is required in kafka mode")
	}

	return c, nil
}
