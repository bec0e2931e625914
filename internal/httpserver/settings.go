package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"nexuspos/internal/domain"
	settingsrepo "nexuspos/internal/repository/settings"
)

func getSettingsHandler(repo settingsrepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := repo.Get(c.Request.Context())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

func saveSettingsHandler(repo settingsrepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var s domain.StoreSettings
		if err := c.ShouldBindJSON(&s); err != nil {
			respondError(c, http.StatusBadRequest, "invalid settings payload")
			return
		}
		if strings.TrimSpace(s.StoreName) == "" {
			respondError(c, http.StatusBadRequest, "storeName required")
			return
		}
		saved, err := repo.Save(c.Request.Context(), s)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, saved)
	}
}
