package dialect

import (
	"errors"
	"strings"
)

// ErrFileEmpty marks a file with no usable lines.
var ErrFileEmpty = errors.New("file contains no usable lines")

// vendorSentinel is the first machine-code cell of an Elogica export
// preamble line.
const vendorSentinel = "ENG"

// delimiterPreference is the tie-break order when scanning a generic header
// line for candidate separators.
var delimiterPreference = []rune{',', ';', '\t'}

// Dialect describes the detected shape of one results file.
type Dialect struct {
	Delimiter rune
	HeaderRow int
	DataStart int
	Vendor    bool
}

// SplitLines normalizes line endings and returns the non-empty lines of the
// raw file text, in order.
func SplitLines(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	raw := strings.Split(normalized, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Detect inspects the raw file text and decides delimiter and header layout.
// An empty file yields ErrFileEmpty before any further processing.
func Detect(text string) (Dialect, []string, error) {
	lines := SplitLines(text)
	if len(lines) == 0 {
		return Dialect{}, nil, ErrFileEmpty
	}

	if isVendorPreamble(lines[0]) {
		// Lines 1-2 are machine codes and English labels; the French header
		// is on line 3 and data starts on line 4.
		if len(lines) < 3 {
			return Dialect{}, nil, ErrFileEmpty
		}
		return Dialect{
			Delimiter: vendorDelimiter(lines[0]),
			HeaderRow: 2,
			DataStart: 3,
			Vendor:    true,
		}, lines, nil
	}

	return Dialect{
		Delimiter: scanDelimiter(lines[0]),
		HeaderRow: 0,
		DataStart: 1,
		Vendor:    false,
	}, lines, nil
}

func isVendorPreamble(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, vendorSentinel+"\t") ||
		strings.HasPrefix(trimmed, vendorSentinel+";")
}

// vendorDelimiter picks between the two separators Elogica is known to emit.
func vendorDelimiter(preamble string) rune {
	if strings.ContainsRune(preamble, '\t') {
		return '\t'
	}
	return ';'
}

func scanDelimiter(header string) rune {
	for _, candidate := range delimiterPreference {
		if strings.ContainsRune(header, candidate) {
			return candidate
		}
	}
	// Single-column file; the choice is moot.
	return ','
}
