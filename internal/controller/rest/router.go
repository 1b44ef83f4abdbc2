package rest

import (
	"time"

	"sessionpay/internal/controller/rest/handlers"
	"sessionpay/pkg/health"
	"sessionpay/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const readinessTimeout = 5 * time.Second

type Router struct {
	webhook handlers.WebhookHandler
	payment handlers.PaymentHandler
	dispute handlers.DisputeHandler
	payout  handlers.PayoutHandler
	account handlers.AccountHandler
	event   handlers.EventHandler
	checks  *health.Registry
}

func NewRouter(
	webhook handlers.WebhookHandler,
	payment handlers.PaymentHandler,
	dispute handlers.DisputeHandler,
	payout handlers.PayoutHandler,
	account handlers.AccountHandler,
	event handlers.EventHandler,
	checks *health.Registry,
) *Router {
	return &Router{
		webhook: webhook,
		payment: payment,
		dispute: dispute,
		payout:  payout,
		account: account,
		event:   event,
		checks:  checks,
	}
}

func (r *Router) SetUp(engine *gin.Engine) {
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(r.checks, readinessTimeout))
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	engine.POST("/webhooks/processor", r.webhook.Receive)

	engine.GET("/payments", r.payment.Filter)
	engine.GET("/payments/:payment_id", r.payment.Get)

	engine.GET("/disputes", r.dispute.GetDisputes)
	engine.GET("/disputes/:provider_dispute_id", r.dispute.Get)

	engine.GET("/payouts", r.payout.GetPayouts)

	engine.GET("/accounts/:provider_account_id", r.account.Get)

	engine.GET("/events", r.event.GetEvents)
}
