package handlers

import (
	"net/http"
	"strings"

	"sessionpay/internal/domain/ledger"

	"github.com/gin-gonic/gin"
)

// EventHandler exposes the webhook event ledger for operators: what arrived,
// what is settled, and what failed permanently with which reason.
type EventHandler struct {
	service *ledger.Service
}

func NewEventHandler(s *ledger.Service) EventHandler {
	return EventHandler{service: s}
}

type eventFilterParams struct {
	Types      string `form:"type"`
	Processed  *bool  `form:"processed"`
	PageSize   int    `form:"limit" binding:"omitempty,min=1"`
	PageNumber int    `form:"page" binding:"omitempty,min=1"`
}

func (h *EventHandler) GetEvents(c *gin.Context) {
	var params eventFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	query := ledger.EventsQuery{Processed: params.Processed}
	if params.Types != "" {
		query.Types = strings.Split(params.Types, ",")
	}

	if params.PageSize == 0 {
		params.PageSize = 50
	}
	if params.PageNumber == 0 {
		params.PageNumber = 1
	}
	query.Pagination = &ledger.Pagination{
		PageSize:   params.PageSize,
		PageNumber: params.PageNumber,
	}

	events, err := h.service.GetEvents(c, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, events)
}
