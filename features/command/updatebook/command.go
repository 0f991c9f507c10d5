package updatebook

import (
	"github.com/google/uuid"

	"github.com/circulib/lending-ledger-go/ledger"
)

const commandType = "UpdateBook"

// Command represents the intent to edit a book's catalog metadata.
type Command struct {
	BookID ledger.BookIDString
	Title  string
	Author string
	Genre  string
}

// CommandType returns the type identifier for this command, used for logging and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID uuid.UUID, title string, author string, genre string) Command {
	return Command{
		BookID: bookID.String(),
		Title:  title,
		Author: author,
		Genre:  genre,
	}
}
