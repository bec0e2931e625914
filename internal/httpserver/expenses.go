package httpserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"nexuspos/internal/domain"
	expenserepo "nexuspos/internal/repository/expense"
)

func listExpensesHandler(repo expenserepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		from, to, ok := parseDateRange(c)
		if !ok {
			return
		}
		expenses, err := repo.ListByDateRange(c.Request.Context(), from, to)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		if expenses == nil {
			expenses = []domain.Expense{}
		}
		c.JSON(http.StatusOK, expenses)
	}
}

func createExpenseHandler(repo expenserepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var e domain.Expense
		if err := c.ShouldBindJSON(&e); err != nil {
			respondError(c, http.StatusBadRequest, "invalid expense payload")
			return
		}
		if strings.TrimSpace(e.Description) == "" {
			respondError(c, http.StatusBadRequest, "description required")
			return
		}
		if !e.Amount.IsPositive() {
			respondError(c, http.StatusBadRequest, "amount must be positive")
			return
		}
		if e.Date.IsZero() {
			e.Date = time.Now()
		}
		created, err := repo.Create(c.Request.Context(), e)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func deleteExpenseHandler(repo expenserepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondServiceError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
