package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nexuspos/internal/domain"
)

type checkoutRequest struct {
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required"`
	CustomerName  string               `json:"customerName"`
}

func checkoutHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "paymentMethod required")
			return
		}
		if !req.PaymentMethod.Valid() {
			respondError(c, http.StatusBadRequest, "paymentMethod must be cash, card, or upi")
			return
		}

		sale, err := deps.Checkout.Commit(c.Request.Context(), c.Param("register"), req.PaymentMethod, req.CustomerName)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, sale)
	}
}
