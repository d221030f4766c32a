package dashboard

import (
	"net/http"

	"quoteform-app/database"
	"quoteform-app/internal/domain/quotes"

	"github.com/gin-gonic/gin"
)

// Dashboard lists the most recent quote requests with their form titles.
func Dashboard(c *gin.Context) {
	var recent []quotes.CustomerQuote
	err := database.DB.
		Preload("Form").
		Order("created_at DESC").
		Limit(20).
		Find(&recent).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotes": recent})
}
