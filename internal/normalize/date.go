package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	frenchDatePattern = regexp.MustCompile(`^(\d{1,2})[/.\-](\d{1,2})[/.\-](\d{4})$`)
	isoDatePattern    = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	yearPattern       = regexp.MustCompile(`^\d{4}$`)
)

// ParseFrenchDate converts DD/MM/YYYY (also DD-MM-YYYY and DD.MM.YYYY, with
// or without zero padding) into ISO YYYY-MM-DD. Already-ISO input passes
// through unchanged, so the function is idempotent on its own output.
func ParseFrenchDate(raw string) Value[string] {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return None[string](raw)
	}
	if isoDatePattern.MatchString(trimmed) {
		return Some(raw, trimmed)
	}
	groups := frenchDatePattern.FindStringSubmatch(trimmed)
	if groups == nil {
		return None[string](raw)
	}
	day, _ := strconv.Atoi(groups[1])
	month, _ := strconv.Atoi(groups[2])
	year, _ := strconv.Atoi(groups[3])
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return None[string](raw)
	}
	return Some(raw, fmt.Sprintf("%04d-%02d-%02d", year, month, day))
}

// ParseBirthYear extracts a four-digit year from a bare year string or from
// any date form ParseFrenchDate accepts.
func ParseBirthYear(raw string) Value[int] {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return None[int](raw)
	}
	if yearPattern.MatchString(trimmed) {
		year, _ := strconv.Atoi(trimmed)
		return Some(raw, year)
	}
	date := ParseFrenchDate(trimmed)
	if !date.OK {
		return None[int](raw)
	}
	year, err := strconv.Atoi(date.Val[:4])
	if err != nil {
		return None[int](raw)
	}
	return Some(raw, year)
}
