package admin

import (
	"net/http"

	"quoteform-app/database"
	"quoteform-app/internal/domain/forms"
	"quoteform-app/internal/domain/quotes"
	"quoteform-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type FormStats struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Slug       *string `json:"slug"`
	Published  bool    `json:"published"`
	QuoteCount int64   `json:"quote_count"`
}

type AdminStats struct {
	TotalForms     int         `json:"total_forms"`
	PublishedForms int         `json:"published_forms"`
	TotalQuotes    int64       `json:"total_quotes"`
	Forms          []FormStats `json:"forms"`
}

// AdminDashboard aggregates every form with its quote count plus the
// published/total tallies.
func AdminDashboard(c *gin.Context) {
	var allForms []forms.QuoteForm
	if err := database.DB.Order("created_at DESC").Find(&allForms).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard data"})
		return
	}

	stats := AdminStats{
		TotalForms: len(allForms),
		Forms:      make([]FormStats, 0, len(allForms)),
	}
	for _, form := range allForms {
		if form.Published {
			stats.PublishedForms++
		}

		var count int64
		if err := database.DB.Model(&quotes.CustomerQuote{}).
			Where("form_id = ?", form.ID).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard data"})
			return
		}

		stats.TotalQuotes += count
		stats.Forms = append(stats.Forms, FormStats{
			ID:         form.ID,
			Title:      form.Title,
			Slug:       form.Slug,
			Published:  form.Published,
			QuoteCount: count,
		})
	}

	c.JSON(http.StatusOK, stats)
}

func ListAllUsers(c *gin.Context) {
	var list []users.User
	if err := database.DB.Order("created_at ASC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	c.JSON(http.StatusOK, list)
}
