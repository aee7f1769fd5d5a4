package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Punctuated duration patterns, tried strictly in this order. The two-group
// colon form is minutes:seconds, not hours:minutes.
var (
	hmsColonPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2}):(\d{2})$`)
	msColonPattern  = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	hmsWordPattern  = regexp.MustCompile(`^(?i)(\d{1,2})h(\d{1,2})m(\d{1,2})s?$`)
	hmWordPattern   = regexp.MustCompile(`^(?i)(\d{1,2})h(\d{1,2})$`)
	compactPattern  = regexp.MustCompile(`^\d{3,6}$`)
)

// ParseTime converts a raw finish-time cell into a canonical HH:MM:SS
// duration string.
//
// Punctuated forms win over the compact heuristic: H:MM:SS, then MM:SS
// (minutes and seconds), then HhMMmSSs, then HhMM. Only a bare run of 3-6
// digits falls through to the compact heuristic: the trailing two digits are
// seconds; for runs of up to 4 digits the remainder is minutes (re-expressed
// as hours+minutes when it exceeds 59); for runs of 5-6 digits the two
// digits before the seconds are minutes and anything further left is hours.
func ParseTime(raw string) Value[string] {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return None[string](raw)
	}

	if groups := hmsColonPattern.FindStringSubmatch(trimmed); groups != nil {
		return Some(raw, formatDuration(atoi(groups[1]), atoi(groups[2]), atoi(groups[3])))
	}
	if groups := msColonPattern.FindStringSubmatch(trimmed); groups != nil {
		return Some(raw, formatDuration(0, atoi(groups[1]), atoi(groups[2])))
	}
	if groups := hmsWordPattern.FindStringSubmatch(trimmed); groups != nil {
		return Some(raw, formatDuration(atoi(groups[1]), atoi(groups[2]), atoi(groups[3])))
	}
	if groups := hmWordPattern.FindStringSubmatch(trimmed); groups != nil {
		return Some(raw, formatDuration(atoi(groups[1]), atoi(groups[2]), 0))
	}
	if compactPattern.MatchString(trimmed) {
		return Some(raw, expandCompact(trimmed))
	}

	return None[string](raw)
}

func expandCompact(digits string) string {
	seconds := atoi(digits[len(digits)-2:])
	rest := digits[:len(digits)-2]

	var hours, minutes int
	if len(digits) <= 4 {
		minutes = atoi(rest)
		if minutes > 59 {
			hours = minutes / 60
			minutes = minutes % 60
		}
	} else {
		minutes = atoi(rest[len(rest)-2:])
		hours = atoi(rest[:len(rest)-2])
	}
	return formatDuration(hours, minutes, seconds)
}

func formatDuration(hours, minutes, seconds int) string {
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
