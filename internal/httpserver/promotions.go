package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nexuspos/internal/domain"
	"nexuspos/internal/promotion"
)

func listCouponsHandler(svc *promotion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		coupons, err := svc.ListCoupons(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		if coupons == nil {
			coupons = []domain.Coupon{}
		}
		c.JSON(http.StatusOK, coupons)
	}
}

func createCouponHandler(svc *promotion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var coupon domain.Coupon
		if err := c.ShouldBindJSON(&coupon); err != nil {
			respondError(c, http.StatusBadRequest, "invalid coupon payload")
			return
		}
		created, err := svc.CreateCoupon(c.Request.Context(), coupon)
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func deleteCouponHandler(svc *promotion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteCoupon(c.Request.Context(), c.Param("id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func listSchemesHandler(svc *promotion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		schemes, err := svc.ListSchemes(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		if schemes == nil {
			schemes = []domain.GroupScheme{}
		}
		c.JSON(http.StatusOK, schemes)
	}
}

func createSchemeHandler(svc *promotion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var scheme domain.GroupScheme
		if err := c.ShouldBindJSON(&scheme); err != nil {
			respondError(c, http.StatusBadRequest, "invalid scheme payload")
			return
		}
		created, err := svc.CreateScheme(c.Request.Context(), scheme)
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func deleteSchemeHandler(svc *promotion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteScheme(c.Request.Context(), c.Param("id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
