package borrowinghistory

import (
	"slices"
	"strings"

	"github.com/circulib/lending-ledger-go/ledger"
)

// ProjectHistory implements the query logic to build a user's borrowing
// history from the stored loan views. This is a pure function with no side
// effects.
//
// Query Logic:
//
//	GIVEN: A user with UserID
//	WHEN: BorrowingHistory query is executed
//	THEN: History is returned with one entry per loan, open and closed,
//	      each joined with the book title
//	ORDER: borrow date ascending, ties broken by loan id ascending
//
// The store already pins this ordering in SQL; it is re-asserted here so the
// result does not depend on any storage default order.
func ProjectHistory(views []ledger.LoanView, query Query) History {
	entries := make([]Entry, 0, len(views))

	for _, view := range views {
		entries = append(entries, Entry{
			LoanID:     view.LoanID,
			Title:      view.Title,
			BorrowDate: view.BorrowDate,
			ReturnDate: view.ReturnDate,
			Fine:       view.Fine,
		})
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		if c := a.BorrowDate.Compare(b.BorrowDate); c != 0 {
			return c
		}

		return strings.Compare(a.LoanID, b.LoanID)
	})

	return History{
		UserID:  query.UserID,
		entries: entries,
	}
}
