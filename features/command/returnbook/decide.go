package returnbook

import (
	"time"

	"github.com/circulib/lending-ledger-go/ledger"
	"github.com/circulib/lending-ledger-go/shared/core"
)

// State is the snapshot of stored state the decision depends on: the open
// loan held by this user on this book, if one exists.
type State struct {
	HasOwnOpenLoan bool
	OwnOpenLoan    ledger.Loan
}

// Decide implements the business logic to determine whether a loan should be
// closed. This is a pure function with no side effects - it takes the loaded
// state, the command, the return date, and the fine schedule, and returns
// the closed loan with its fixed fine.
//
// Business Rules:
//
//	GIVEN: A book with BookID and a user with UserID
//	WHEN: ReturnBook command is received
//	THEN: the open loan is closed with return date = returnDate and
//	      fine = max(0, wholeDays(borrow..return) - gracePeriod) * dailyRate
//	ERROR: ledger.ErrNoOpenLoan if no open loan exists for exactly this user
//	       and book - a loan held by a different user never matches
//
// A same-day return clamps to a zero fine; so does a return exactly at the
// grace boundary.
func Decide(
	state State,
	command Command,
	returnDate time.Time,
	schedule ledger.FineSchedule,
) core.DecisionResult[ledger.Loan] {

	if !state.HasOwnOpenLoan {
		return core.ErrorDecision[ledger.Loan](ledger.ErrNoOpenLoan)
	}

	loan := state.OwnOpenLoan
	fine := schedule.Fine(loan.BorrowDate, returnDate)

	return core.SuccessDecision(loan.Close(returnDate, fine))
}
