package products

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Categories is the fixed set a product must belong to.
var Categories = []string{
	"Brand Awareness",
	"Business Development",
	"Marketing Services",
	"Web Services",
}

type Product struct {
	ID          string          `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Currency    string          `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	Category    string          `gorm:"not null" json:"category"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Product) TableName() string {
	return "products"
}

var (
	ErrNameRequired    = errors.New("product name is required")
	ErrInvalidPrice    = errors.New("price must be a positive number")
	ErrInvalidCurrency = errors.New("invalid currency")
	ErrInvalidCategory = errors.New("invalid category")
)

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Validate checks a product before insert or update.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}
	if p.Price.IsNegative() {
		return ErrInvalidPrice
	}
	if !IsValidCurrency(p.Currency) {
		return ErrInvalidCurrency
	}
	if !IsValidCategory(p.Category) {
		return ErrInvalidCategory
	}
	return nil
}
