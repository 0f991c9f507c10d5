// Package borrowinghistory implements the read-side use case of listing a
// user's loans - open and closed - joined with the book titles, ordered by
// borrow date ascending with ties broken by loan id.
package borrowinghistory
