package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nexuspos/internal/report"
)

func summaryHandler(svc *report.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		from, to, ok := parseDateRange(c)
		if !ok {
			return
		}
		sum, err := svc.Summarize(c.Request.Context(), from, to)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, sum)
	}
}
