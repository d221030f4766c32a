package quotes

import (
	"time"

	"quoteform-app/internal/domain/forms"

	"github.com/shopspring/decimal"
)

const (
	StatusDraft    = "draft"
	StatusSent     = "sent"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

var statuses = map[string]bool{
	StatusDraft: true, StatusSent: true, StatusAccepted: true, StatusRejected: true,
}

func IsValidStatus(status string) bool {
	return statuses[status]
}

type CustomerQuote struct {
	ID     string           `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FormID string           `gorm:"type:uuid;not null;index" json:"form_id"`
	Form   *forms.QuoteForm `gorm:"foreignKey:FormID" json:"form,omitempty"`

	CustomerEmail string `gorm:"not null" json:"customer_email"`
	CompanyName   string `gorm:"not null" json:"company_name"`
	Status        string `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`

	// Derived at submission time, never edited directly.
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total_price"`

	Responses []QuoteResponse `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE;" json:"responses,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CustomerQuote) TableName() string {
	return "customer_quotes"
}

type QuoteResponse struct {
	ID      string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	QuoteID string `gorm:"type:uuid;not null;index" json:"quote_id"`
	FieldID string `gorm:"type:uuid;not null;index" json:"field_id"`
	Value   string `gorm:"type:text" json:"value"`

	CreatedAt time.Time `json:"created_at"`
}

func (QuoteResponse) TableName() string {
	return "quote_responses"
}
