package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nexuspos/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{Error: msg})
}

// respondServiceError maps domain errors to HTTP statuses. Insufficient
// stock is a conflict: the request was well-formed but the catalog state
// blocks it.
func respondServiceError(c *gin.Context, err error) {
	var stockErr *domain.InsufficientStockError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondError(c, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrEmptyCart):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &stockErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":     stockErr.Error(),
			"productId": stockErr.ProductID,
			"product":   stockErr.Name,
			"requested": stockErr.Requested,
			"available": stockErr.Available,
		})
	default:
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}
