package publicforms

import (
	"net/http"
	"strings"

	"quoteform-app/database"
	"quoteform-app/internal/domain/forms"
	"quoteform-app/internal/domain/quotes"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// loadPublished resolves a slug to a published form with its ordered
// fields. Unpublished or unknown slugs both read as not-found.
func loadPublished(slug string) (*forms.QuoteForm, error) {
	var form forms.QuoteForm
	err := database.DB.
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("slug = ? AND published = ?", slug, true).
		First(&form).Error
	if err != nil {
		return nil, err
	}
	return &form, nil
}

// ------------------------------
// GET /forms/:slug
// ------------------------------
func GetPublishedForm(c *gin.Context) {
	form, err := loadPublished(c.Param("slug"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "The form you're looking for doesn't exist or hasn't been published yet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load form"})
		return
	}
	c.JSON(http.StatusOK, form)
}

type submitRequest struct {
	CustomerEmail string            `json:"customer_email" binding:"required,email"`
	CompanyName   string            `json:"company_name" binding:"required"`
	Responses     map[string]string `json:"responses"`
}

// ------------------------------
// POST /forms/:slug/submit
// ------------------------------
// The total is recomputed here from the stored field definitions, never
// taken from the request. Missing required fields reject the submission
// before anything is written.
func SubmitQuote(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Responses == nil {
		req.Responses = map[string]string{}
	}

	form, err := loadPublished(c.Param("slug"))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "The form you're looking for doesn't exist or hasn't been published yet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load form"})
		return
	}

	if missing := quotes.MissingRequired(form.Fields, req.Responses); len(missing) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Please fill in all required fields",
			"missing": missing,
		})
		return
	}

	total := quotes.CalculateTotal(form.Fields, req.Responses)

	// Only answers to fields that actually belong to the form are kept.
	known := make(map[string]bool, len(form.Fields))
	for _, field := range form.Fields {
		known[field.ID] = true
	}

	quote := quotes.CustomerQuote{
		FormID:        form.ID,
		CustomerEmail: req.CustomerEmail,
		CompanyName:   strings.TrimSpace(req.CompanyName),
		Status:        quotes.StatusDraft,
		TotalPrice:    total,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&quote).Error; err != nil {
			return err
		}
		for fieldID, value := range req.Responses {
			if !known[fieldID] || value == "" {
				continue
			}
			response := quotes.QuoteResponse{
				QuoteID: quote.ID,
				FieldID: fieldID,
				Value:   value,
			}
			if err := tx.Create(&response).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit quote", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Quote submitted successfully",
		"quote_id":    quote.ID,
		"total_price": total,
	})
}
