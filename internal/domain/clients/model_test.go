package clients

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientValidate(t *testing.T) {
	valid := Client{Name: "Jo Smith", Email: "jo@example.com", CompanyName: "Acme"}
	assert.NoError(t, valid.Validate())

	testCases := []struct {
		name    string
		client  Client
		wantErr error
	}{
		{"missing name", Client{Email: "jo@example.com", CompanyName: "Acme"}, ErrNameRequired},
		{"blank email", Client{Name: "Jo", Email: "  ", CompanyName: "Acme"}, ErrEmailRequired},
		{"missing company", Client{Name: "Jo", Email: "jo@example.com"}, ErrCompanyRequired},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.client.Validate(), tc.wantErr)
		})
	}
}
