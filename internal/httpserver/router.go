package httpserver

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"nexuspos/internal/cart"
	"nexuspos/internal/catalog"
	"nexuspos/internal/checkout"
	"nexuspos/internal/promotion"
	"nexuspos/internal/receipt"
	"nexuspos/internal/report"
	expenserepo "nexuspos/internal/repository/expense"
	salerepo "nexuspos/internal/repository/sale"
	settingsrepo "nexuspos/internal/repository/settings"
)

// Deps carries the wired services for route handlers.
type Deps struct {
	Catalog    *catalog.Service
	Carts      *cart.Store
	Checkout   *checkout.Service
	Promotions *promotion.Service
	Sales      salerepo.Repository
	Settings   settingsrepo.Repository
	Expenses   expenserepo.Repository
	Reports    *report.Service
	Receipts   *receipt.Renderer
}

// buildRouter wires routes for the API.
func buildRouter(logger zerolog.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(corsOrigins) == 1 && corsOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = corsOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")

	products := api.Group("/products")
	products.GET("", listProductsHandler(deps.Catalog))
	products.POST("", createProductHandler(deps.Catalog))
	products.POST("/recalculate", recalculateHandler())
	products.GET("/barcode/:code", barcodeHandler(deps.Catalog))
	products.GET("/:id", getProductHandler(deps.Catalog))
	products.PUT("/:id", updateProductHandler(deps.Catalog))
	products.DELETE("/:id", deleteProductHandler(deps.Catalog))

	registers := api.Group("/registers/:register")
	registers.GET("/cart", getCartHandler(deps))
	registers.DELETE("/cart", clearCartHandler(deps))
	registers.POST("/cart/lines", addLineHandler(deps))
	registers.POST("/cart/lines/:productID/quantity", changeQuantityHandler(deps))
	registers.PUT("/cart/lines/:productID/discount", setLineDiscountHandler(deps))
	registers.DELETE("/cart/lines/:productID", removeLineHandler(deps))
	registers.PUT("/coupon", applyCouponHandler(deps))
	registers.DELETE("/coupon", clearCouponHandler(deps))
	registers.PUT("/group-scheme", setSchemeHandler(deps))
	registers.PUT("/manual-discount", setManualDiscountHandler(deps))
	registers.GET("/breakdown", breakdownHandler(deps))
	registers.POST("/checkout", checkoutHandler(deps))

	api.GET("/sales", listSalesHandler(deps.Sales))
	api.GET("/sales/:id", getSaleHandler(deps.Sales))
	api.GET("/sales/:id/receipt.pdf", receiptHandler(deps))

	api.GET("/coupons", listCouponsHandler(deps.Promotions))
	api.POST("/coupons", createCouponHandler(deps.Promotions))
	api.DELETE("/coupons/:id", deleteCouponHandler(deps.Promotions))
	api.GET("/schemes", listSchemesHandler(deps.Promotions))
	api.POST("/schemes", createSchemeHandler(deps.Promotions))
	api.DELETE("/schemes/:id", deleteSchemeHandler(deps.Promotions))

	api.GET("/settings", getSettingsHandler(deps.Settings))
	api.PUT("/settings", saveSettingsHandler(deps.Settings))

	api.GET("/expenses", listExpensesHandler(deps.Expenses))
	api.POST("/expenses", createExpenseHandler(deps.Expenses))
	api.DELETE("/expenses/:id", deleteExpenseHandler(deps.Expenses))

	api.GET("/reports/summary", summaryHandler(deps.Reports))

	return router
}
