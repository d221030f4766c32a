package products

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrNoImportData    = errors.New("no data found, please check the format")
	ErrNoImportRows    = errors.New("no valid data found, please check the format")
	ErrImportRejected  = errors.New("bulk import rejected")
	importColumnCount  = 5
	importColumnLayout = "name, description, price, currency, category"
)

// ParseBulkImport parses comma-delimited product rows. A leading header row
// is skipped when its first line mentions "name" or "description"
// (case-insensitive). Every row is validated independently and all row
// errors are collected; products are returned only when zero rows failed.
func ParseBulkImport(data string) ([]Product, []string, error) {
	var lines []string
	for _, raw := range strings.Split(data, "\n") {
		line := strings.TrimSpace(raw)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, nil, ErrNoImportData
	}

	startIndex := 0
	first := strings.ToLower(lines[0])
	if strings.Contains(first, "name") || strings.Contains(first, "description") {
		startIndex = 1
	}

	rows := lines[startIndex:]
	if len(rows) == 0 {
		return nil, nil, ErrNoImportRows
	}

	var validationErrors []string
	var valid []Product

	for i, row := range rows {
		lineNumber := startIndex + i + 1

		cells := strings.Split(row, ",")
		for j := range cells {
			cells[j] = strings.TrimSpace(cells[j])
		}

		if len(cells) < importColumnCount {
			validationErrors = append(validationErrors,
				fmt.Sprintf("Line %d: Missing fields. Expected: %s", lineNumber, importColumnLayout))
			continue
		}

		name, description, priceStr, currency, category := cells[0], cells[1], cells[2], cells[3], cells[4]

		if name == "" {
			validationErrors = append(validationErrors,
				fmt.Sprintf("Line %d: Product name is required", lineNumber))
			continue
		}

		price, err := decimal.NewFromString(priceStr)
		if err != nil || price.IsNegative() {
			validationErrors = append(validationErrors,
				fmt.Sprintf("Line %d: Invalid price %q. Must be a positive number", lineNumber, priceStr))
			continue
		}

		if !IsValidCurrency(currency) {
			validationErrors = append(validationErrors,
				fmt.Sprintf("Line %d: Invalid currency %q. Must be one of: %s", lineNumber, currency, strings.Join(CurrencyCodes(), ", ")))
			continue
		}

		if !IsValidCategory(category) {
			validationErrors = append(validationErrors,
				fmt.Sprintf("Line %d: Invalid category %q. Must be one of: %s", lineNumber, category, strings.Join(Categories, ", ")))
			continue
		}

		valid = append(valid, Product{
			Name:        name,
			Description: description,
			Price:       price,
			Currency:    currency,
			Category:    category,
		})
	}

	if len(validationErrors) > 0 {
		return nil, validationErrors, ErrImportRejected
	}
	return valid, nil, nil
}
