// Package mapping binds detected header labels to the canonical result
// fields every input dialect is normalized toward.
//
// The alias dictionary covers the French labels the Elogica vendor export
// uses, keyed by their folded form so case, accents, and punctuation never
// matter. Automatic mapping is a proposal: the operator can rebind or clear
// any field before commit, and the commit path refuses to run until the two
// required name fields are bound.
package mapping
