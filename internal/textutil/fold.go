package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deaccent decomposes characters and drops combining marks, so "é" folds to
// "e" and "ç" to "c".
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripDiacritics removes accent marks from the input, leaving base letters
// intact. Input that fails to transform is returned unchanged.
func StripDiacritics(s string) string {
	out, _, err := transform.String(deaccent, s)
	if err != nil {
		return s
	}
	return out
}

// FoldLabel reduces a header label to its canonical lookup form: diacritics
// stripped, lowercased, and every non-alphanumeric character removed.
// "Prénom " and "prenom" fold to the same key; "Cl/Cat" folds to "clcat".
func FoldLabel(s string) string {
	stripped := strings.ToLower(StripDiacritics(s))
	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FoldName reduces a person-name component for matching: diacritics stripped,
// lowercased, interior whitespace and hyphens collapsed to single spaces.
func FoldName(s string) string {
	stripped := strings.ToLower(StripDiacritics(s))
	fields := strings.FieldsFunc(stripped, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '\''
	})
	return strings.Join(fields, " ")
}
