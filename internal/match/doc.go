// Package match links committed results to registered athletes.
//
// Matching runs only after a successful batch commit and its outcome is a
// reporting value: a result that fails to match stays valid. Keys are exact
// folded names, with the birth year as a tie-breaker when both sides carry
// one; there is no fuzzy matching here.
package match
