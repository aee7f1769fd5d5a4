// Package textutil provides text processing utilities for header
// normalization and slug generation.
//
// Timing-system exports use French column labels ("Prénom", "Catégorie")
// whose diacritics and punctuation vary between files from the same vendor.
// Matching and identity derivation therefore work on a folded form:
// lowercase, diacritics stripped, punctuation squashed.
package textutil
