package textutil

import (
	"regexp"
	"strings"
)

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify joins the given parts and derives a URL-safe identifier: lowercase,
// diacritics stripped, runs of non-alphanumeric characters collapsed to a
// single hyphen, leading and trailing hyphens trimmed.
//
// The result is a pure function of its inputs; the same (name, city, date)
// triple always yields the same slug.
func Slugify(parts ...string) string {
	joined := strings.ToLower(StripDiacritics(strings.Join(parts, " ")))
	slug := slugSeparators.ReplaceAllString(joined, "-")
	return strings.Trim(slug, "-")
}
