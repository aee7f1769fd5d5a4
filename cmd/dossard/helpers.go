package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"dossard/internal/importer"
	"dossard/internal/mapping"
)

// readFileText loads a results file as UTF-8 text, stripping a leading BOM
// that some Windows exports carry.
func readFileText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return strings.TrimPrefix(string(data), "\ufeff"), nil
}

// parseMapOverrides parses repeated --map field=Header flags.
func parseMapOverrides(pairs []string) (map[mapping.Field]string, error) {
	overrides := make(map[mapping.Field]string, len(pairs))
	for _, pair := range pairs {
		name, header, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --map value %q, expected field=Header", pair)
		}
		field, known := mapping.KnownField(strings.TrimSpace(name))
		if !known {
			return nil, fmt.Errorf("unknown canonical field %q (known: %s)", name, knownFieldList())
		}
		overrides[field] = strings.TrimSpace(header)
	}
	return overrides, nil
}

func knownFieldList() string {
	names := make([]string, 0, len(mapping.Fields))
	for _, f := range mapping.Fields {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

func delimiterName(delim rune) string {
	switch delim {
	case '\t':
		return "tab"
	case ';':
		return "semicolon"
	case ',':
		return "comma"
	default:
		return string(delim)
	}
}

func formatUnparsed(unparsed map[mapping.Field]int) string {
	if len(unparsed) == 0 {
		return "none"
	}
	fields := make([]string, 0, len(unparsed))
	for field := range unparsed {
		fields = append(fields, string(field))
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s=%d", field, unparsed[mapping.Field(field)]))
	}
	return strings.Join(parts, " ")
}

func formatMatch(report *importer.Report) string {
	if report.Match == nil {
		return "skipped"
	}
	return fmt.Sprintf("%d/%d matched (%.0f%%)",
		report.Match.Matched, report.Match.Total, report.Match.MatchRate*100)
}
