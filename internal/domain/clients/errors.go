package clients

import "errors"

var (
	ErrNameRequired    = errors.New("name is required")
	ErrEmailRequired   = errors.New("email is required")
	ErrCompanyRequired = errors.New("company name is required")
)
