package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nexuspos/internal/domain"
	salerepo "nexuspos/internal/repository/sale"
)

// parseDateRange reads from/to query params (RFC 3339 or YYYY-MM-DD). The
// default window is the last 24 hours; a date-only "to" covers that whole
// day.
func parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now().UTC()
	from := now.Add(-24 * time.Hour)
	to := now

	if v := c.Query("from"); v != "" {
		t, _, err := parseDate(v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid from date")
			return from, to, false
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, dateOnly, err := parseDate(v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid to date")
			return from, to, false
		}
		if dateOnly {
			t = t.Add(24 * time.Hour)
		}
		to = t
	}
	return from, to, true
}

func parseDate(v string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, false, nil
	}
	t, err := time.Parse("2006-01-02", v)
	return t, true, err
}

func listSalesHandler(repo salerepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		from, to, ok := parseDateRange(c)
		if !ok {
			return
		}
		sales, err := repo.ListByDateRange(c.Request.Context(), from, to)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		if sales == nil {
			sales = []domain.Sale{}
		}
		c.JSON(http.StatusOK, sales)
	}
}

func getSaleHandler(repo salerepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		sale, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, sale)
	}
}

// receiptHandler re-renders the till slip from the stored sale. The stored
// totals are used verbatim; nothing is recomputed.
func receiptHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		sale, err := deps.Sales.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondServiceError(c, err)
			return
		}

		settings := domain.StoreSettings{StoreName: "Nexus POS", Currency: "INR"}
		if deps.Settings != nil {
			if stored, err := deps.Settings.Get(c.Request.Context()); err == nil {
				settings = *stored
			}
		}

		pdf, err := deps.Receipts.Render(*sale, settings)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", `inline; filename="receipt-`+sale.ID+`.pdf"`)
		c.Data(http.StatusOK, "application/pdf", pdf)
	}
}
