package borrowbook

import (
	"time"

	"github.com/circulib/lending-ledger-go/ledger"
	"github.com/circulib/lending-ledger-go/shared/core"
)

// State is the snapshot of stored state the decision depends on: the catalog
// record (if any) and the user's own open loan on this book (if any).
type State struct {
	BookExists     bool
	BookAvailable  bool
	HasOwnOpenLoan bool
	OwnOpenLoan    ledger.Loan
}

// Decide implements the business logic to determine whether a book should be
// borrowed. This is a pure function with no side effects - it takes the
// loaded state and a command and returns the loan that should be opened.
//
// Business Rules:
//
//	GIVEN: A book with BookID and a user with UserID
//	WHEN: BorrowBook command is received
//	THEN: an open Loan with borrow date = borrowDate is produced and the book is claimed
//	ERROR: ledger.ErrBookNotFound if the book does not exist
//	ERROR: ledger.ErrBookUnavailable if the book is currently lent out
//	IDEMPOTENCY: if this user already holds the open loan on this book, no change is made
//
// The produced loan has no LoanID yet; the handler assigns a fresh one before
// the conditional write.
func Decide(state State, command Command, borrowDate time.Time) core.DecisionResult[ledger.Loan] {
	if state.HasOwnOpenLoan {
		return core.IdempotentDecision(state.OwnOpenLoan)
	}

	if !state.BookExists {
		return core.ErrorDecision[ledger.Loan](ledger.ErrBookNotFound)
	}

	if !state.BookAvailable {
		return core.ErrorDecision[ledger.Loan](ledger.ErrBookUnavailable)
	}

	loan := ledger.Loan{
		UserID:     command.UserID,
		BookID:     command.BookID,
		BorrowDate: ledger.ToCalendarDate(borrowDate),
	}

	return core.SuccessDecision(loan)
}
