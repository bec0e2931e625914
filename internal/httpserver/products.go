package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nexuspos/internal/catalog"
	"nexuspos/internal/domain"
)

func listProductsHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

func getProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func barcodeHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.GetByBarcode(c.Request.Context(), c.Param("code"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func createProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p domain.Product
		if err := c.ShouldBindJSON(&p); err != nil {
			respondError(c, http.StatusBadRequest, "invalid product payload")
			return
		}
		created, err := svc.Create(c.Request.Context(), p)
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p domain.Product
		if err := c.ShouldBindJSON(&p); err != nil {
			respondError(c, http.StatusBadRequest, "invalid product payload")
			return
		}
		p.ID = c.Param("id")
		updated, err := svc.Update(c.Request.Context(), p)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

type recalculateRequest struct {
	Changed catalog.PriceField  `json:"changed" binding:"required"`
	Values  catalog.PriceValues `json:"values"`
}

func recalculateHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req recalculateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid recalculate payload")
			return
		}
		switch req.Changed {
		case catalog.FieldMRP, catalog.FieldPrice, catalog.FieldDiscountRate:
		default:
			respondError(c, http.StatusBadRequest, "changed must be mrp, price, or discountRate")
			return
		}
		c.JSON(http.StatusOK, catalog.Recalculate(req.Changed, req.Values))
	}
}
