package forms

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"quoteform-app/internal/domain/clients"

	"github.com/shopspring/decimal"
)

// Field kinds. The first five collect input; the rest are presentational
// (header, content, image) or catalog-backed (product).
const (
	KindText     = "text"
	KindNumber   = "number"
	KindCheckbox = "checkbox"
	KindSelect   = "select"
	KindTextarea = "textarea"
	KindHeader   = "header"
	KindContent  = "content"
	KindImage    = "image"
	KindProduct  = "product"
)

var fieldKinds = map[string]bool{
	KindText: true, KindNumber: true, KindCheckbox: true, KindSelect: true,
	KindTextarea: true, KindHeader: true, KindContent: true, KindImage: true,
	KindProduct: true,
}

func IsValidKind(kind string) bool {
	return fieldKinds[kind]
}

type FieldOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FieldOptions is stored as a jsonb column.
type FieldOptions []FieldOption

func (o FieldOptions) Value() (driver.Value, error) {
	if o == nil {
		return "[]", nil
	}
	b, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (o *FieldOptions) Scan(value interface{}) error {
	if value == nil {
		*o = nil
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported type for field options: %T", value)
	}
	return json.Unmarshal(b, o)
}

type QuoteForm struct {
	ID          string  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string  `gorm:"not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Slug        *string `gorm:"uniqueIndex:idx_quote_forms_slug" json:"slug"`
	ShowPrices  bool    `gorm:"not null;default:false" json:"show_prices"`
	Published   bool    `gorm:"not null;default:false;index" json:"published"`

	ClientID *string         `gorm:"type:uuid;index" json:"client_id"`
	Client   *clients.Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	Fields []FormField `gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE;" json:"fields,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (QuoteForm) TableName() string {
	return "quote_forms"
}

type FormField struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	FormID string `gorm:"type:uuid;not null;index:idx_form_fields_form_pos,priority:1" json:"form_id"`

	Kind     string          `gorm:"column:type;not null" json:"type"`
	Label    string          `json:"label"`
	Required bool            `gorm:"not null;default:false" json:"required"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	Position int             `gorm:"column:position;not null;default:0;index:idx_form_fields_form_pos,priority:2" json:"position"`

	Options       FieldOptions `gorm:"type:jsonb" json:"options,omitempty"`
	Content       string       `gorm:"type:text" json:"content,omitempty"`
	ImageURL      string       `gorm:"column:image_url" json:"image_url,omitempty"`
	ProductID     *string      `gorm:"type:uuid" json:"product_id,omitempty"`
	QuantityField bool         `gorm:"not null;default:false" json:"quantity_field"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (FormField) TableName() string {
	return "form_fields"
}

// IsInput reports whether the field collects a response from the customer.
func (f *FormField) IsInput() bool {
	switch f.Kind {
	case KindText, KindNumber, KindCheckbox, KindSelect, KindTextarea:
		return true
	}
	return false
}
