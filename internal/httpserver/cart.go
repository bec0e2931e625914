package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"nexuspos/internal/cart"
	"nexuspos/internal/domain"
	"nexuspos/internal/pricing"
	"nexuspos/internal/promotion"
)

// cartView is what every cart mutation returns: the cart, the current
// discount selections, and a freshly recomputed breakdown. The UI never
// patches totals incrementally.
type cartView struct {
	Cart       domain.Cart               `json:"cart"`
	Selections domain.DiscountSelections `json:"selections"`
	Breakdown  domain.Breakdown          `json:"breakdown"`
}

func viewOf(deps Deps, register string) cartView {
	c := deps.Carts.Get(register)
	sel := deps.Carts.Selections(register)
	return cartView{
		Cart:       c,
		Selections: sel,
		Breakdown:  pricing.Compute(c.Lines, sel).Rounded(),
	}
}

func getCartHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, viewOf(deps, c.Param("register")))
	}
}

func clearCartHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		deps.Carts.Clear(c.Param("register"))
		c.JSON(http.StatusOK, viewOf(deps, c.Param("register")))
	}
}

type addLineRequest struct {
	ProductID string `json:"productId"`
	Barcode   string `json:"barcode"`
	Quantity  int    `json:"quantity"`
}

func addLineHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addLineRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid line payload")
			return
		}
		if req.ProductID == "" && req.Barcode == "" {
			respondError(c, http.StatusBadRequest, "productId or barcode required")
			return
		}

		var (
			product *domain.Product
			err     error
		)
		if req.ProductID != "" {
			product, err = deps.Catalog.Get(c.Request.Context(), req.ProductID)
		} else {
			product, err = deps.Catalog.GetByBarcode(c.Request.Context(), req.Barcode)
		}
		if err != nil {
			respondServiceError(c, err)
			return
		}

		deps.Carts.Add(c.Param("register"), *product, req.Quantity)
		c.JSON(http.StatusOK, viewOf(deps, c.Param("register")))
	}
}

type changeQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

func changeQuantityHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req changeQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "delta required")
			return
		}
		if _, err := deps.Carts.ChangeQuantity(c.Param("register"), c.Param("productID"), req.Delta); err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, viewOf(deps, c.Param("register")))
	}
}

type lineDiscountRequest struct {
	Value decimal.Decimal `json:"value"`
}

func setLineDiscountHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req lineDiscountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid discount payload")
			return
		}
		if _, err := deps.Carts.SetUnitDiscount(c.Param("register"), c.Param("productID"), req.Value); err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, viewOf(deps, c.Param("register")))
	}
}

func removeLineHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := deps.Carts.Remove(c.Param("register"), c.Param("productID")); err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, viewOf(deps, c.Param("register")))
	}
}

type applyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

func applyCouponHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req applyCouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "code required")
			return
		}
		coupon, err := deps.Promotions.ResolveCoupon(c.Request.Context(), req.Code)
		if err != nil {
			if errors.Is(err, promotion.ErrCouponInactive) {
				respondError(c, http.StatusUnprocessableEntity, err.Error())
				return
			}
			respondServiceError(c, err)
			return
		}
		deps.Carts.SetCoupon(c.Param("register"), coupon)
		c.JSON(http.StatusOK, viewOf(deps, c.Param("register")))
	}
}

func clearCouponHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		deps.Carts.SetCoupon(c.Param("register"), nil)
		c.JSON(http.StatusOK, viewOf(deps, c.Param("register")))
	}
}

type setSchemeRequest struct {
	SchemeID string `json:"schemeId"`
	Active   bool   `json:"active"`
}

func setSchemeHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setSchemeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid scheme payload")
			return
		}
		if req.SchemeID == "" {
			deps.Carts.SetScheme(c.Param("register"), nil, false)
			c.JSON(http.StatusOK, viewOf(deps, c.Param("register")))
			return
		}
		scheme, err := deps.Promotions.ResolveScheme(c.Request.Context(), req.SchemeID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		deps.Carts.SetScheme(c.Param("register"), scheme, req.Active)
		c.JSON(http.StatusOK, viewOf(deps, c.Param("register")))
	}
}

type manualDiscountRequest struct {
	Kind  domain.ManualDiscountKind `json:"kind"`
	Value decimal.Decimal           `json:"value"`
}

func setManualDiscountHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req manualDiscountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid manual discount payload")
			return
		}
		if req.Kind == "" && req.Value.IsZero() {
			deps.Carts.SetManual(c.Param("register"), nil)
			c.JSON(http.StatusOK, viewOf(deps, c.Param("register")))
			return
		}
		if req.Kind != domain.ManualAmount && req.Kind != domain.ManualPercent {
			respondError(c, http.StatusBadRequest, "kind must be amount or percent")
			return
		}
		if req.Value.IsNegative() {
			respondError(c, http.StatusBadRequest, "value must not be negative")
			return
		}
		deps.Carts.SetManual(c.Param("register"), &domain.ManualDiscount{Kind: req.Kind, Value: req.Value})
		c.JSON(http.StatusOK, viewOf(deps, c.Param("register")))
	}
}

func breakdownHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.Checkout.Preview(c.Param("register")).Rounded())
	}
}

func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrLineNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, cart.ErrNegativeDiscount):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}
