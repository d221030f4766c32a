package quotes

import (
	"net/http"

	"quoteform-app/database"
	"quoteform-app/internal/domain/quotes"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ------------------------------
// GET /admin/quotes
// ------------------------------
func ListQuotes(c *gin.Context) {
	var list []quotes.CustomerQuote
	if err := database.DB.
		Preload("Form").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load quotes"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// ------------------------------
// GET /admin/quotes/:id
// ------------------------------
func GetQuote(c *gin.Context) {
	id := c.Param("id")

	var quote quotes.CustomerQuote
	err := database.DB.
		Preload("Form").
		Preload("Responses", func(db *gorm.DB) *gorm.DB {
			return db.Order("field_id ASC")
		}).
		First(&quote, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load quote"})
		return
	}
	c.JSON(http.StatusOK, quote)
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ------------------------------
// PUT /admin/quotes/:id/status
// ------------------------------
// Only the status moves; the total is derived at submission time and is
// never edited here.
func UpdateQuoteStatus(c *gin.Context) {
	id := c.Param("id")

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !quotes.IsValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	result := database.DB.Model(&quotes.CustomerQuote{}).
		Where("id = ?", id).
		Update("status", req.Status)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quote"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// DELETE /admin/quotes/:id
// ------------------------------
func DeleteQuote(c *gin.Context) {
	id := c.Param("id")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quote_id = ?", id).Delete(&quotes.QuoteResponse{}).Error; err != nil {
			return err
		}
		return tx.Delete(&quotes.CustomerQuote{}, "id = ?", id).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete quote"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
