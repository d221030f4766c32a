package builder

import (
	"quoteform-app/internal/domain/forms"

	"gorm.io/gorm"
)

// Meta is the form metadata slice of a builder snapshot.
type Meta struct {
	Title       string
	Description string
	Slug        *string
	ShowPrices  bool
}

// Store persists builder snapshots. The session drives it with the batched
// sequential protocol; implementations only handle single round-trips.
type Store interface {
	UpdateMeta(formID string, meta Meta) error
	UpdateFields(batch []forms.FormField) error
	InsertFields(batch []forms.FormField) error
	DeleteFields(formID string) error
}

type gormStore struct {
	db *gorm.DB
}

// NewStore returns a Store backed by the quote_forms / form_fields tables.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) UpdateMeta(formID string, meta Meta) error {
	return s.db.Model(&forms.QuoteForm{}).
		Where("id = ?", formID).
		Updates(map[string]interface{}{
			"title":       meta.Title,
			"description": meta.Description,
			"slug":        meta.Slug,
			"show_prices": meta.ShowPrices,
		}).Error
}

func (s *gormStore) UpdateFields(batch []forms.FormField) error {
	for _, field := range batch {
		err := s.db.Model(&forms.FormField{}).
			Where("id = ? AND form_id = ?", field.ID, field.FormID).
			Updates(map[string]interface{}{
				"type":           field.Kind,
				"label":          field.Label,
				"required":       field.Required,
				"price":          field.Price,
				"position":       field.Position,
				"options":        field.Options,
				"content":        field.Content,
				"image_url":      field.ImageURL,
				"product_id":     field.ProductID,
				"quantity_field": field.QuantityField,
			}).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *gormStore) InsertFields(batch []forms.FormField) error {
	if len(batch) == 0 {
		return nil
	}
	return s.db.Create(&batch).Error
}

func (s *gormStore) DeleteFields(formID string) error {
	return s.db.Where("form_id = ?", formID).Delete(&forms.FormField{}).Error
}
