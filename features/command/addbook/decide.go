package addbook

import (
	"github.com/circulib/lending-ledger-go/ledger"
	"github.com/circulib/lending-ledger-go/shared/core"
)

// State is the snapshot of stored state the decision depends on.
type State struct {
	BookExists   bool
	ExistingBook ledger.Book
}

// Decide determines whether a catalog record should be created.
//
//	IDEMPOTENCY: if a book with this id already exists, no change is made.
func Decide(state State, command Command) core.DecisionResult[ledger.Book] {
	if state.BookExists {
		return core.IdempotentDecision(state.ExistingBook)
	}

	book := ledger.Book{
		BookID:    command.BookID,
		Title:     command.Title,
		Author:    command.Author,
		Genre:     command.Genre,
		Available: true,
	}

	return core.SuccessDecision(book)
}
