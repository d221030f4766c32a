package forms

import (
	"fmt"

	"quoteform-app/internal/domain/forms"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FieldRequest struct {
	ID            string             `json:"id"`
	Kind          string             `json:"type" binding:"required"`
	Label         string             `json:"label"`
	Required      bool               `json:"required"`
	Price         decimal.Decimal    `json:"price"`
	Options       forms.FieldOptions `json:"options"`
	Content       string             `json:"content"`
	ImageURL      string             `json:"image_url"`
	ProductID     *string            `json:"product_id"`
	QuantityField bool               `json:"quantity_field"`
}

type FormSnapshotRequest struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	Slug        string         `json:"slug"`
	ShowPrices  bool           `json:"show_prices"`
	ClientID    *string        `json:"client_id"`
	Fields      []FieldRequest `json:"fields"`
}

type FormMetaRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Slug        string  `json:"slug"`
	ShowPrices  bool    `json:"show_prices"`
	ClientID    *string `json:"client_id"`
}

type PublishRequest struct {
	Slug string `json:"slug"`
}

// fieldModels validates and converts every submitted field. Any unknown
// field type fails the whole request before a single row is written.
func (r FormSnapshotRequest) fieldModels() ([]forms.FormField, error) {
	fields := make([]forms.FormField, 0, len(r.Fields))
	for _, f := range r.Fields {
		if !forms.IsValidKind(f.Kind) {
			return nil, fmt.Errorf("unknown field type %q", f.Kind)
		}
		fields = append(fields, f.toModel())
	}
	return fields, nil
}

func (r FieldRequest) toModel() forms.FormField {
	id := r.ID
	if id == "" {
		id = uuid.NewString()
	}
	return forms.FormField{
		ID:            id,
		Kind:          r.Kind,
		Label:         r.Label,
		Required:      r.Required,
		Price:         r.Price,
		Options:       r.Options,
		Content:       r.Content,
		ImageURL:      r.ImageURL,
		ProductID:     r.ProductID,
		QuantityField: r.QuantityField,
	}
}
