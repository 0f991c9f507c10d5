package ledger

import (
	"time"

	"github.com/google/uuid"
)

// LoanIDString represents a loan identifier.
type LoanIDString = string

// Loan represents one borrow record in the lending ledger.
//
// A loan with a zero ReturnDate is open; at most one open loan may exist per
// book at any time (mirrored by Book.Available). Once ReturnDate is set the
// loan is closed, its fine is fixed, and the record never changes again.
type Loan struct {
	LoanID     LoanIDString
	UserID     UserIDString
	BookID     BookIDString
	BorrowDate time.Time
	ReturnDate time.Time // zero value while the loan is open
	Fine       int64     // meaningful only once the loan is closed
}

// BuildOpenLoan creates a new open loan borrowed on the given calendar date.
func BuildOpenLoan(loanID uuid.UUID, userID uuid.UUID, bookID uuid.UUID, borrowDate time.Time) Loan {
	return Loan{
		LoanID:     loanID.String(),
		UserID:     userID.String(),
		BookID:     bookID.String(),
		BorrowDate: ToCalendarDate(borrowDate),
	}
}

// IsOpen reports whether the loan has no recorded return date.
func (l Loan) IsOpen() bool {
	return l.ReturnDate.IsZero()
}

// Close returns a closed copy of the loan with the return date and the fine fixed.
func (l Loan) Close(returnDate time.Time, fine int64) Loan {
	closed := l
	closed.ReturnDate = ToCalendarDate(returnDate)
	closed.Fine = fine

	return closed
}
