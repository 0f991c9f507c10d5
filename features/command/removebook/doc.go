// Package removebook implements the catalog use case of deleting a book.
// A book with an open loan must never be deleted - that would break the
// availability invariant - so the delete is guarded on the availability flag
// and a violation is reported as ledger.ErrInvalidState.
package removebook
