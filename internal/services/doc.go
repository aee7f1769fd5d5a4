// Package services defines the shared error taxonomy for the import
// pipeline.
//
// Components tag failures with one of the exported sentinel errors so
// callers can classify a failed import (operator-recoverable validation
// problem, identity conflict, store failure) with errors.Is instead of
// string matching. The Wrap helper builds consistently shaped messages
// that carry component and operation context.
package services
