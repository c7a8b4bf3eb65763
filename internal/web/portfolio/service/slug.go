package service

import (
	"regexp"
	"strings"
)

var slugInvalidRunes = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derive a URL-safe slug from a title: lower-case, runs of
// non-alphanumeric characters collapse to a single hyphen, leading and
// trailing hyphens are trimmed.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugInvalidRunes.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
