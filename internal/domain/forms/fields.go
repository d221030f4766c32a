package forms

import (
	"fmt"

	"quoteform-app/internal/domain/products"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductCatalog is the loaded product snapshot a builder session resolves
// product selections against.
type ProductCatalog interface {
	Lookup(id string) (products.Product, bool)
}

// CatalogMap is a ProductCatalog over an in-memory map.
type CatalogMap map[string]products.Product

func (m CatalogMap) Lookup(id string) (products.Product, bool) {
	p, ok := m[id]
	return p, ok
}

// FieldPatch carries a partial update; nil members are left untouched.
type FieldPatch struct {
	Label         *string          `json:"label"`
	Required      *bool            `json:"required"`
	Price         *decimal.Decimal `json:"price"`
	Options       *FieldOptions    `json:"options"`
	Content       *string          `json:"content"`
	ImageURL      *string          `json:"image_url"`
	ProductID     *string          `json:"product_id"`
	QuantityField *bool            `json:"quantity_field"`
}

// FieldList is the ordered working set of a builder session. Positions are
// kept dense (0..N-1, matching slice order) on exit from every operation.
type FieldList []FormField

// Add appends a new field of the given kind with kind-appropriate defaults
// and a freshly generated identifier.
func (l *FieldList) Add(kind string) (FormField, error) {
	if !IsValidKind(kind) {
		return FormField{}, fmt.Errorf("unknown field type %q", kind)
	}

	field := FormField{
		ID:       uuid.NewString(),
		Kind:     kind,
		Price:    decimal.Zero,
		Position: len(*l),
	}

	switch kind {
	case KindHeader:
		field.Label = "Section Header"
	case KindContent:
		field.Label = "Text Block"
	case KindImage:
		field.Label = "Image"
	case KindProduct:
		field.Label = "Product Selection"
		field.QuantityField = true
	}

	*l = append(*l, field)
	return field, nil
}

// Remove deletes the field at the given position and shifts everything after
// it down to keep the sequence dense.
func (l *FieldList) Remove(position int) error {
	if position < 0 || position >= len(*l) {
		return fmt.Errorf("field position %d out of range [0,%d)", position, len(*l))
	}
	*l = append((*l)[:position], (*l)[position+1:]...)
	l.renumber()
	return nil
}

// Update merges the patch into the field at the given position. Selecting a
// product copies that product's price and name onto the field once; a product
// id missing from the catalog leaves price and label untouched (stale catalog
// cache is recoverable, not an error).
func (l *FieldList) Update(position int, patch FieldPatch, catalog ProductCatalog) error {
	if position < 0 || position >= len(*l) {
		return fmt.Errorf("field position %d out of range [0,%d)", position, len(*l))
	}

	field := &(*l)[position]
	if patch.Label != nil {
		field.Label = *patch.Label
	}
	if patch.Required != nil {
		field.Required = *patch.Required
	}
	if patch.Price != nil {
		field.Price = *patch.Price
	}
	if patch.Options != nil {
		field.Options = *patch.Options
	}
	if patch.Content != nil {
		field.Content = *patch.Content
	}
	if patch.ImageURL != nil {
		field.ImageURL = *patch.ImageURL
	}
	if patch.QuantityField != nil {
		field.QuantityField = *patch.QuantityField
	}
	if patch.ProductID != nil && *patch.ProductID != "" {
		field.ProductID = patch.ProductID
		if catalog != nil {
			if product, ok := catalog.Lookup(*patch.ProductID); ok {
				field.Price = product.Price
				field.Label = product.Name
			}
		}
	}
	return nil
}

// Move removes the field at from and reinserts it at to (removal happens
// before the insertion index applies), then renumbers. Move(i, i) is a no-op.
func (l *FieldList) Move(from, to int) error {
	n := len(*l)
	if from < 0 || from >= n {
		return fmt.Errorf("field position %d out of range [0,%d)", from, n)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("field position %d out of range [0,%d)", to, n)
	}
	if from == to {
		return nil
	}

	moved := (*l)[from]
	*l = append((*l)[:from], (*l)[from+1:]...)

	*l = append(*l, FormField{})
	copy((*l)[to+1:], (*l)[to:])
	(*l)[to] = moved

	l.renumber()
	return nil
}

// Snapshot returns an independent copy of the list for handing to a
// background save.
func (l FieldList) Snapshot() FieldList {
	out := make(FieldList, len(l))
	copy(out, l)
	return out
}

func (l FieldList) renumber() {
	for i := range l {
		l[i].Position = i
	}
}
