package clients

import (
	"strings"
	"time"
)

type Client struct {
	ID          string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Email       string `gorm:"not null" json:"email"`
	CompanyName string `gorm:"not null" json:"company_name"`

	Phone          string `json:"phone,omitempty"`
	StreetAddress1 string `gorm:"column:street_address_1" json:"street_address_1,omitempty"`
	StreetAddress2 string `gorm:"column:street_address_2" json:"street_address_2,omitempty"`
	Country        string `json:"country,omitempty"`
	Zipcode        string `json:"zipcode,omitempty"`
	Place          string `json:"place,omitempty"`
	Website        string `json:"website,omitempty"`
	InternalNotes  string `gorm:"type:text" json:"internal_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the required contact trio before any insert or update.
func (c *Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(c.Email) == "" {
		return ErrEmailRequired
	}
	if strings.TrimSpace(c.CompanyName) == "" {
		return ErrCompanyRequired
	}
	return nil
}
