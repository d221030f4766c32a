package quotes

import (
	"strconv"

	"quoteform-app/internal/domain/forms"

	"github.com/shopspring/decimal"
)

// CalculateTotal derives a quote total from a form's fields and the raw
// response map. A checked checkbox contributes its price; a number field
// marked as quantity field contributes price times the integer value.
// Unparsable or missing quantities count as zero; all other fields
// contribute nothing.
func CalculateTotal(fields []forms.FormField, responses map[string]string) decimal.Decimal {
	total := decimal.Zero
	for _, field := range fields {
		switch {
		case field.Kind == forms.KindCheckbox && responses[field.ID] == "true":
			total = total.Add(field.Price)
		case field.Kind == forms.KindNumber && field.QuantityField:
			quantity, err := strconv.Atoi(responses[field.ID])
			if err != nil {
				continue
			}
			total = total.Add(field.Price.Mul(decimal.NewFromInt(int64(quantity))))
		}
	}
	return total
}

// MissingRequired returns the labels of required input fields that have no
// entry in the response map.
func MissingRequired(fields []forms.FormField, responses map[string]string) []string {
	var missing []string
	for _, field := range fields {
		if !field.Required || !field.IsInput() {
			continue
		}
		if responses[field.ID] == "" {
			missing = append(missing, field.Label)
		}
	}
	return missing
}
