// Package record assembles normalized result records from a raw table and a
// column mapping.
//
// A record is immutable once built; corrections require re-import. Rows
// missing both required name fields are skipped and counted, never fatal.
package record
