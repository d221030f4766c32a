package forms

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"quoteform-app/database"
	"quoteform-app/internal/builder"
	"quoteform-app/internal/domain/forms"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ------------------------------
// GET /admin/forms
// ------------------------------
func ListForms(c *gin.Context) {
	var list []forms.QuoteForm
	err := database.DB.
		Preload("Client").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load forms"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// ------------------------------
// GET /admin/forms/:id
// ------------------------------
func GetForm(c *gin.Context) {
	id := c.Param("id")

	var form forms.QuoteForm
	err := database.DB.
		Preload("Client").
		Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&form, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Form not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load form"})
		return
	}
	c.JSON(http.StatusOK, form)
}

// ------------------------------
// POST /admin/forms
// ------------------------------
// New-form save path: the form record is created first, then the field
// collection is inserted in batches referencing the new id.
func CreateForm(c *gin.Context) {
	var req FormSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}
	if len(req.Fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field is required"})
		return
	}

	// Validate the full field collection up front so a bad request
	// leaves no half-created form behind.
	fields, err := req.fieldModels()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	form := forms.QuoteForm{
		Title:       req.Title,
		Description: req.Description,
		ShowPrices:  req.ShowPrices,
		ClientID:    req.ClientID,
	}
	if slug := forms.NormalizeSlug(req.Slug); slug != "" {
		form.Slug = &slug
	}

	if err := database.DB.Create(&form).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create form", "details": err.Error()})
		return
	}

	store := builder.NewStore(database.DB)
	if err := builder.InsertAll(store, form.ID, fields, builder.Config{}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save form fields", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": form.ID})
}

// ------------------------------
// PUT /admin/forms/:id
// ------------------------------
func UpdateForm(c *gin.Context) {
	id := c.Param("id")

	var req FormMetaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var slug *string
	if s := forms.NormalizeSlug(req.Slug); s != "" {
		slug = &s
	}

	result := database.DB.Model(&forms.QuoteForm{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":       req.Title,
			"description": req.Description,
			"slug":        slug,
			"show_prices": req.ShowPrices,
			"client_id":   req.ClientID,
		})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update form"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Form not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// DELETE /admin/forms/:id
// ------------------------------
func DeleteForm(c *gin.Context) {
	id := c.Param("id")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("form_id = ?", id).Delete(&forms.FormField{}).Error; err != nil {
			return err
		}
		return tx.Delete(&forms.QuoteForm{}, "id = ?", id).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete form"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// POST /admin/forms/:id/publish
// ------------------------------
// A form without a slug cannot be published; the caller must supply one,
// which is normalized before the published flag is set.
func Publish(c *gin.Context) {
	id := c.Param("id")

	var req PublishRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var form forms.QuoteForm
	if err := database.DB.First(&form, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Form not found"})
		return
	}

	updates := map[string]interface{}{"published": true}
	if form.Slug == nil || *form.Slug == "" {
		slug := forms.NormalizeSlug(req.Slug)
		if slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A URL-friendly slug is required to publish this form"})
			return
		}
		updates["slug"] = slug
	}

	if err := database.DB.Model(&form).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish form", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// POST /admin/forms/:id/unpublish
// ------------------------------
func Unpublish(c *gin.Context) {
	id := c.Param("id")

	result := database.DB.Model(&forms.QuoteForm{}).
		Where("id = ?", id).
		Update("published", false)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unpublish form"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Form not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// GET /admin/forms/:id/preview
// ------------------------------
// Preview never publishes as a side effect; it only resolves the public URL
// of an already-published form.
func Preview(c *gin.Context) {
	id := c.Param("id")

	var form forms.QuoteForm
	if err := database.DB.First(&form, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Form not found"})
		return
	}

	if !form.Published || form.Slug == nil || *form.Slug == "" {
		c.JSON(http.StatusConflict, gin.H{"error": "Please publish the form first to preview it"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": "/forms/" + *form.Slug})
}

// ------------------------------
// POST /admin/forms/:id/duplicate
// ------------------------------
// Copies the form and its whole field collection; the copy starts
// unpublished with no slug. Returns the new form's id.
func Duplicate(c *gin.Context) {
	id := c.Param("id")

	var newID string
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var form forms.QuoteForm
		if err := tx.Preload("Fields", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).First(&form, "id = ?", id).Error; err != nil {
			return err
		}

		copyForm := forms.QuoteForm{
			Title:       form.Title + " (Copy)",
			Description: form.Description,
			ShowPrices:  form.ShowPrices,
			ClientID:    form.ClientID,
		}
		if err := tx.Create(&copyForm).Error; err != nil {
			return err
		}

		for i, field := range form.Fields {
			field.ID = uuid.NewString()
			field.FormID = copyForm.ID
			field.Position = i
			if err := tx.Create(&field).Error; err != nil {
				return err
			}
		}

		newID = copyForm.ID
		return nil
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Form not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to duplicate form", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": newID})
}

// bindOptionalJSON decodes the request body into obj. An absent body is
// fine and leaves obj zero valued; a body that is present but malformed
// is an error.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
