// Package importer drives one import from raw file text to a committed
// event with results.
//
// A Session is an explicit finite-state object: AwaitingFile → Mapping →
// AwaitingDecision → Committing → Done or Failed. Steps 1-4 of the pipeline
// (dialect detection, tokenizing, mapping, normalization) are pure and run
// inside LoadFile and Preview; only Commit touches the store, guarded by a
// file lock so a single import mutates the store at a time.
package importer
