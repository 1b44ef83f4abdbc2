package handlers

import (
	"net/http"

	"sessionpay/internal/domain/account"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	service *account.Service
}

func NewAccountHandler(s *account.Service) AccountHandler {
	return AccountHandler{service: s}
}

func (h *AccountHandler) Get(c *gin.Context) {
	providerAccountID := c.Param("provider_account_id")
	if providerAccountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "provider_account_id is required"})
		return
	}

	res, err := h.service.GetAccountByProviderID(c, providerAccountID)
	if err != nil {
		c.JSON(httpStatusFor(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}
