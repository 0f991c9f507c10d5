package updatebook

import (
	"github.com/circulib/lending-ledger-go/ledger"
	"github.com/circulib/lending-ledger-go/shared/core"
)

// State is the snapshot of stored state the decision depends on.
type State struct {
	BookExists   bool
	ExistingBook ledger.Book
}

// Decide determines whether a catalog record should be edited.
//
//	ERROR: ledger.ErrBookNotFound if the book does not exist.
//
// The returned record keeps the stored availability flag untouched; only the
// metadata fields change.
func Decide(state State, command Command) core.DecisionResult[ledger.Book] {
	if !state.BookExists {
		return core.ErrorDecision[ledger.Book](ledger.ErrBookNotFound)
	}

	book := state.ExistingBook
	book.Title = command.Title
	book.Author = command.Author
	book.Genre = command.Genre

	return core.SuccessDecision(book)
}
