package handlers

import (
	"io"
	"net/http"

	"sessionpay/internal/controller/apperror"
	"sessionpay/internal/webhook"
	"sessionpay/pkg/logger"
	"sessionpay/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// WebhookHandler is the single ingress point for processor webhooks. The
// response code is the retry signal: 400 means never resend, 200 means the
// event is settled, 500 means resend later.
type WebhookHandler struct {
	verifier     *webhook.Verifier
	processor    webhook.Processor
	maxBodyBytes int64
	l            *logger.Logger
}

func NewWebhookHandler(verifier *webhook.Verifier, processor webhook.Processor, maxBodyBytes int64, l *logger.Logger) WebhookHandler {
	return WebhookHandler{
		verifier:     verifier,
		processor:    processor,
		maxBodyBytes: maxBodyBytes,
		l:            l,
	}
}

func (h *WebhookHandler) Receive(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "body too large or unreadable"})
		return
	}

	if err := h.verifier.Verify(c.GetHeader(webhook.SignatureHeader), body); err != nil {
		metrics.WebhookSignatureFailures.Inc()
		h.l.WarnCtx(c.Request.Context(), "webhook signature rejected: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid signature"})
		return
	}

	ev, err := webhook.Parse(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.processor.Process(c.Request.Context(), ev); err != nil {
		h.l.ErrorCtx(c.Request.Context(), "webhook %s (%s) not settled: %v", ev.ID, ev.Type, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "event not processed, retry later"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

// httpStatusFor maps classified reconciliation errors onto read-API codes.
// The webhook path never uses it; acknowledgement semantics live in Receive.
func httpStatusFor(err error) int {
	switch apperror.KindOf(err) {
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindMalformedPayload:
		return http.StatusBadRequest
	case apperror.KindStateConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
