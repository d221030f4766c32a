package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSlug(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"My Great Form!!", "my-great-form"},
		{"  Spring   Campaign 2024  ", "spring-campaign-2024"},
		{"already-a-slug", "already-a-slug"},
		{"---", ""},
		{"", ""},
		{"Ünïcode & Co.", "n-code-co"},
		{"UPPER_case.mixed", "upper-case-mixed"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, NormalizeSlug(tc.input), "input %q", tc.input)
	}
}
