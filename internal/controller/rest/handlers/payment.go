package handlers

import (
	"net/http"
	"strings"

	"sessionpay/internal/domain/payment"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	service *payment.Service
}

func NewPaymentHandler(s *payment.Service) PaymentHandler {
	return PaymentHandler{service: s}
}

func (h *PaymentHandler) Get(c *gin.Context) {
	paymentID := c.Param("payment_id")
	if paymentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing payment_id"})
		return
	}

	res, err := h.service.GetPaymentByID(c, paymentID)
	if err != nil {
		c.JSON(httpStatusFor(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

type paymentFilterParams struct {
	Statuses   string `form:"status"`
	BookingID  string `form:"booking_id"`
	IntentID   string `form:"intent_id"`
	PageSize   int    `form:"limit" binding:"omitempty,min=1"`
	PageNumber int    `form:"page" binding:"omitempty,min=1"`
	SortBy     string `form:"sort_by" binding:"omitempty,oneof=created_at updated_at"`
	SortOrder  string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

func (h *PaymentHandler) Filter(c *gin.Context) {
	query, err := h.createFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.service.GetPayments(c, *query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *PaymentHandler) createFilter(c *gin.Context) (*payment.PaymentsQuery, error) {
	var params paymentFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	builder := payment.NewPaymentsQueryBuilder()

	if params.Statuses != "" {
		var statuses []payment.Status
		for _, raw := range strings.Split(params.Statuses, ",") {
			s, err := payment.NewStatus(raw)
			if err != nil {
				return nil, err
			}
			statuses = append(statuses, s)
		}
		builder = builder.WithStatuses(statuses...)
	}

	if params.BookingID != "" {
		builder = builder.WithBookingIDs(params.BookingID)
	}

	if params.IntentID != "" {
		builder = builder.WithIntentIDs(params.IntentID)
	}

	if params.PageSize == 0 {
		params.PageSize = 20
	}
	if params.PageNumber == 0 {
		params.PageNumber = 1
	}
	builder = builder.WithPagination(payment.Pagination{
		PageSize:   params.PageSize,
		PageNumber: params.PageNumber,
	})

	if params.SortBy == "" {
		params.SortBy = "created_at"
	}
	if params.SortOrder == "" {
		params.SortOrder = "desc"
	}
	builder = builder.WithSort(params.SortBy, params.SortOrder)

	return builder.Build()
}
