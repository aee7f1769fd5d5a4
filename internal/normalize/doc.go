// Package normalize converts raw cell text from results files into
// canonical typed values.
//
// Every normalizer is total: unparseable input yields a not-ok Value, never
// an error, so one bad cell degrades a single optional field instead of
// aborting the row. Callers aggregate the not-ok outcomes into per-field
// counts for the import report.
//
// The compact time heuristic (bare digit runs like "3156") is deliberately
// guessable-wrong for very short races; its precedence is pinned by
// characterization tests and must not be changed without reconciling
// historical imports.
package normalize
