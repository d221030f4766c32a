package quotes

import (
	"testing"

	"quoteform-app/internal/domain/forms"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateTotal(t *testing.T) {
	fields := []forms.FormField{
		{ID: "f1", Kind: forms.KindCheckbox, Price: decimal.NewFromInt(10)},
		{ID: "f2", Kind: forms.KindNumber, Price: decimal.NewFromInt(5), QuantityField: true},
		{ID: "f3", Kind: forms.KindText, Price: decimal.Zero},
	}
	responses := map[string]string{
		"f1": "true",
		"f2": "3",
		"f3": "some answer",
	}

	total := CalculateTotal(fields, responses)
	assert.True(t, decimal.NewFromInt(25).Equal(total), "got %s", total)
}

func TestCalculateTotalEdgeCases(t *testing.T) {
	testCases := []struct {
		name      string
		fields    []forms.FormField
		responses map[string]string
		want      int64
	}{
		{
			name:      "unchecked checkbox contributes nothing",
			fields:    []forms.FormField{{ID: "f1", Kind: forms.KindCheckbox, Price: decimal.NewFromInt(10)}},
			responses: map[string]string{"f1": "false"},
			want:      0,
		},
		{
			name:      "number without quantity flag contributes nothing",
			fields:    []forms.FormField{{ID: "f1", Kind: forms.KindNumber, Price: decimal.NewFromInt(10)}},
			responses: map[string]string{"f1": "4"},
			want:      0,
		},
		{
			name:      "unparsable quantity counts as zero",
			fields:    []forms.FormField{{ID: "f1", Kind: forms.KindNumber, Price: decimal.NewFromInt(10), QuantityField: true}},
			responses: map[string]string{"f1": "lots"},
			want:      0,
		},
		{
			name:      "missing quantity counts as zero",
			fields:    []forms.FormField{{ID: "f1", Kind: forms.KindNumber, Price: decimal.NewFromInt(10), QuantityField: true}},
			responses: map[string]string{},
			want:      0,
		},
		{
			name: "presentational kinds never contribute",
			fields: []forms.FormField{
				{ID: "f1", Kind: forms.KindHeader, Price: decimal.NewFromInt(99)},
				{ID: "f2", Kind: forms.KindContent, Price: decimal.NewFromInt(99)},
				{ID: "f3", Kind: forms.KindImage, Price: decimal.NewFromInt(99)},
			},
			responses: map[string]string{"f1": "true", "f2": "true", "f3": "true"},
			want:      0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			total := CalculateTotal(tc.fields, tc.responses)
			assert.True(t, decimal.NewFromInt(tc.want).Equal(total), "got %s", total)
		})
	}
}

func TestMissingRequired(t *testing.T) {
	fields := []forms.FormField{
		{ID: "f1", Kind: forms.KindText, Label: "Name", Required: true},
		{ID: "f2", Kind: forms.KindSelect, Label: "Budget", Required: true},
		{ID: "f3", Kind: forms.KindText, Label: "Notes"},
		// Required is meaningless on presentational kinds.
		{ID: "f4", Kind: forms.KindHeader, Label: "About you", Required: true},
	}

	missing := MissingRequired(fields, map[string]string{"f1": "Acme"})
	assert.Equal(t, []string{"Budget"}, missing)

	missing = MissingRequired(fields, map[string]string{"f1": "Acme", "f2": "small"})
	assert.Empty(t, missing)
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range []string{StatusDraft, StatusSent, StatusAccepted, StatusRejected} {
		assert.True(t, IsValidStatus(status))
	}
	assert.False(t, IsValidStatus("archived"))
	assert.False(t, IsValidStatus(""))
}
