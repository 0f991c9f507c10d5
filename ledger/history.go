package ledger

import (
	"time"
)

// LoanView is a loan record joined with the book title, as produced for
// borrowing-history reads. ReturnDate is zero while the loan is open, and
// Fine is zero until the loan is closed.
type LoanView struct {
	LoanID     LoanIDString
	Title      string
	BorrowDate time.Time
	ReturnDate time.Time
	Fine       int64
}

// IsOpen reports whether the viewed loan has no recorded return date.
func (v LoanView) IsOpen() bool {
	return v.ReturnDate.IsZero()
}
