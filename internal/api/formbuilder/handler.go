package formbuilder

import (
	"errors"
	"net/http"
	"strconv"
	"sync"

	"quoteform-app/database"
	"quoteform-app/internal/builder"
	"quoteform-app/internal/domain/forms"
	"quoteform-app/internal/domain/products"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	managerOnce sync.Once
	manager     *builder.Manager
)

func sessions() *builder.Manager {
	managerOnce.Do(func() {
		manager = builder.NewManager(builder.NewStore(database.DB), builder.Config{})
	})
	return manager
}

// openSession loads the form, its fields and the current product catalog,
// then hands back the live session (creating it if needed). The catalog is
// loaded once per session: product selections snapshot against it.
func openSession(formID string) (*builder.Session, error) {
	if s, ok := sessions().Get(formID); ok {
		return s, nil
	}

	var form forms.QuoteForm
	err := database.DB.
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&form, "id = ?", formID).Error
	if err != nil {
		return nil, err
	}

	var catalogProducts []products.Product
	if err := database.DB.Order("name").Find(&catalogProducts).Error; err != nil {
		return nil, err
	}
	catalog := make(forms.CatalogMap, len(catalogProducts))
	for _, p := range catalogProducts {
		catalog[p.ID] = p
	}

	return sessions().Open(&form, catalog), nil
}

func sessionOr404(c *gin.Context) (*builder.Session, bool) {
	s, err := openSession(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Form not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load form data"})
		}
		return nil, false
	}
	return s, true
}

// ------------------------------
// POST /admin/forms/:id/builder
// ------------------------------
func OpenBuilder(c *gin.Context) {
	s, ok := sessionOr404(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.Snapshot())
}

type addFieldRequest struct {
	Kind string `json:"type" binding:"required"`
}

// ------------------------------
// POST /admin/forms/:id/builder/fields
// ------------------------------
func AddField(c *gin.Context) {
	var req addFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, ok := sessionOr404(c)
	if !ok {
		return
	}

	if _, err := s.AddField(req.Kind); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.Snapshot())
}

// ------------------------------
// DELETE /admin/forms/:id/builder/fields/:pos
// ------------------------------
func RemoveField(c *gin.Context) {
	pos, err := strconv.Atoi(c.Param("pos"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid field position"})
		return
	}

	s, ok := sessionOr404(c)
	if !ok {
		return
	}

	if err := s.RemoveField(pos); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.Snapshot())
}

type updateFieldRequest struct {
	Label         *string             `json:"label"`
	Required      *bool               `json:"required"`
	Price         *decimal.Decimal    `json:"price"`
	Options       *forms.FieldOptions `json:"options"`
	Content       *string             `json:"content"`
	ImageURL      *string             `json:"image_url"`
	ProductID     *string             `json:"product_id"`
	QuantityField *bool               `json:"quantity_field"`
}

// ------------------------------
// PATCH /admin/forms/:id/builder/fields/:pos
// ------------------------------
func UpdateField(c *gin.Context) {
	pos, err := strconv.Atoi(c.Param("pos"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid field position"})
		return
	}

	var req updateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, ok := sessionOr404(c)
	if !ok {
		return
	}

	patch := forms.FieldPatch{
		Label:         req.Label,
		Required:      req.Required,
		Price:         req.Price,
		Options:       req.Options,
		Content:       req.Content,
		ImageURL:      req.ImageURL,
		ProductID:     req.ProductID,
		QuantityField: req.QuantityField,
	}
	if err := s.UpdateField(pos, patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.Snapshot())
}

type reorderRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// ------------------------------
// PUT /admin/forms/:id/builder/reorder
// ------------------------------
func Reorder(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, ok := sessionOr404(c)
	if !ok {
		return
	}

	if err := s.MoveField(req.From, req.To); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.Snapshot())
}

type settingsRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	ShowPrices  bool   `json:"show_prices"`
}

// ------------------------------
// PUT /admin/forms/:id/builder/settings
// ------------------------------
func UpdateSettings(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, ok := sessionOr404(c)
	if !ok {
		return
	}

	if err := s.SetMeta(req.Title, req.Description, req.Slug, req.ShowPrices); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.Snapshot())
}

// ------------------------------
// POST /admin/forms/:id/builder/save
// ------------------------------
// Explicit save: hard-validates, replaces the whole field collection, and
// ends the session. Validation failures keep the session alive so no edits
// are lost.
func SaveBuilder(c *gin.Context) {
	formID := c.Param("id")

	s, ok := sessionOr404(c)
	if !ok {
		return
	}

	if err := s.Save(); err != nil {
		switch {
		case errors.Is(err, builder.ErrTitleRequired), errors.Is(err, builder.ErrNoFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save form", "details": err.Error()})
		}
		return
	}

	sessions().Drop(formID)
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// ------------------------------
// DELETE /admin/forms/:id/builder
// ------------------------------
// Navigating away: a pending autosave is cancelled, one already in flight
// finishes in the background.
func CloseBuilder(c *gin.Context) {
	formID := c.Param("id")
	if s, ok := sessions().Get(formID); ok {
		s.Close()
		sessions().Drop(formID)
	}
	c.JSON(http.StatusOK, gin.H{"status": "closed"})
}
