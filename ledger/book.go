package ledger

import (
	"github.com/google/uuid"
)

// BookIDString represents a book identifier.
type BookIDString = string

// Book represents a catalog record with its derived availability flag.
//
// The metadata fields are opaque to the lending core; only Available is
// owned by the ledger. Available is false exactly when one open loan
// references the book - the catalog holds a single copy of each title.
type Book struct {
	BookID    BookIDString
	Title     string
	Author    string
	Genre     string
	Available bool
}

// BuildBook creates an available catalog record from its metadata.
func BuildBook(bookID uuid.UUID, title string, author string, genre string) Book {
	return Book{
		BookID:    bookID.String(),
		Title:     title,
		Author:    author,
		Genre:     genre,
		Available: true,
	}
}
