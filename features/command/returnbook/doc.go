// Package returnbook implements the use case of returning a borrowed book:
// locating the user's open loan, deriving the fine from the borrow and
// return dates, closing the loan, and releasing the book.
package returnbook
