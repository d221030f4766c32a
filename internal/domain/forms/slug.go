package forms

import (
	"regexp"
	"strings"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeSlug turns free text into a URL-safe slug.
// Example: "My Great Form!!" -> "my-great-form"
func NormalizeSlug(input string) string {
	slug := strings.ToLower(strings.TrimSpace(input))
	slug = nonSlug.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	return slug
}
