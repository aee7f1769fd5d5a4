package importer

import (
	"dossard/internal/mapping"
	"dossard/internal/match"
)

// Report summarizes one committed import for the operator.
type Report struct {
	EventID  int64
	Slug     string
	BatchID  string
	Rows     int
	Skipped  int
	Unparsed map[mapping.Field]int
	Match    *match.Summary
}

// UnparsedTotal sums unparsed cell counts across fields.
func (r *Report) UnparsedTotal() int {
	total := 0
	for _, n := range r.Unparsed {
		total += n
	}
	return total
}
