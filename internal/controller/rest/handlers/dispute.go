package handlers

import (
	"net/http"
	"strings"

	"sessionpay/internal/domain/dispute"

	"github.com/gin-gonic/gin"
)

type DisputeHandler struct {
	service *dispute.Service
}

func NewDisputeHandler(s *dispute.Service) DisputeHandler {
	return DisputeHandler{service: s}
}

type disputeFilterParams struct {
	PaymentID string `form:"payment_id"`
	Statuses  string `form:"status"`
}

func (h *DisputeHandler) GetDisputes(c *gin.Context) {
	var params disputeFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	query := dispute.DisputesQuery{}
	if params.PaymentID != "" {
		query.PaymentIDs = []string{params.PaymentID}
	}
	if params.Statuses != "" {
		for _, raw := range strings.Split(params.Statuses, ",") {
			s, err := dispute.NewStatus(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			query.Statuses = append(query.Statuses, s)
		}
	}

	disputes, err := h.service.GetDisputes(c, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, disputes)
}

func (h *DisputeHandler) Get(c *gin.Context) {
	providerDisputeID := c.Param("provider_dispute_id")
	if providerDisputeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "provider_dispute_id is required"})
		return
	}

	res, err := h.service.GetDisputeByProviderID(c, providerDisputeID)
	if err != nil {
		c.JSON(httpStatusFor(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}
