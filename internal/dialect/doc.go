// Package dialect detects the layout of delimited results files and splits
// them into raw tables.
//
// Two layouts exist in the wild: a generic single-header file (header on the
// first line, data from the second) and the Elogica vendor export, which
// carries a three-line preamble — machine codes, English labels, then the
// real French header — before data begins on the fourth line. Detection is
// purely textual; no file extension or MIME sniffing is involved.
package dialect
