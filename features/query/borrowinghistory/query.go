package borrowinghistory

import (
	"iter"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/circulib/lending-ledger-go/ledger"
)

// Query represents the intent to read a user's borrowing history.
type Query struct {
	UserID ledger.UserIDString
}

// BuildQuery creates a new Query with the provided user id.
func BuildQuery(userID uuid.UUID) Query {
	return Query{
		UserID: userID.String(),
	}
}

// Entry is one element of the borrowing history: a loan joined with the book
// title. ReturnDate is zero while the loan is open, and Fine is zero until
// the loan is closed.
type Entry struct {
	LoanID     ledger.LoanIDString
	Title      string
	BorrowDate time.Time
	ReturnDate time.Time
	Fine       int64
}

// IsOpen reports whether the entry's loan has no recorded return date.
func (e Entry) IsOpen() bool {
	return e.ReturnDate.IsZero()
}

// History is the query result: the user's loans ordered by borrow date
// ascending, ties broken by loan id ascending.
type History struct {
	UserID  ledger.UserIDString
	entries []Entry
}

// Entries returns the history as a finite, restartable sequence; every call
// ranges over the same ordered entries from the start.
func (h History) Entries() iter.Seq[Entry] {
	return slices.Values(h.entries)
}

// Len returns the number of history entries.
func (h History) Len() int {
	return len(h.entries)
}
