package handlers

import (
	"net/http"
	"strings"

	"sessionpay/internal/domain/payout"

	"github.com/gin-gonic/gin"
)

type PayoutHandler struct {
	service *payout.Service
}

func NewPayoutHandler(s *payout.Service) PayoutHandler {
	return PayoutHandler{service: s}
}

func (h *PayoutHandler) GetPayouts(c *gin.Context) {
	query := payout.PayoutsQuery{}
	if raw := c.Query("status"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			s, err := payout.NewStatus(part)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			query.Statuses = append(query.Statuses, s)
		}
	}

	payouts, err := h.service.GetPayouts(c, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, payouts)
}
