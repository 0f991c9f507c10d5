// Package borrowbook implements the use case of borrowing a book:
// validating that the book exists and is available, claiming it, and opening
// the loan with the current calendar date as the borrow date.
package borrowbook
