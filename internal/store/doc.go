// Package store persists events, result records, and registered athletes in
// SQLite.
//
// The batch-commit contract is the load-bearing part: an event's results are
// inserted in one transaction, so no reader ever observes an event with a
// partial result set, and any failure rolls the whole import back. Slug
// collisions are surfaced as explicit conflicts, never resolved by silent
// overwrite.
package store
