package removebook

import (
	"github.com/google/uuid"

	"github.com/circulib/lending-ledger-go/ledger"
)

const commandType = "RemoveBook"

// Command represents the intent to delete a book from the catalog.
type Command struct {
	BookID ledger.BookIDString
}

// CommandType returns the type identifier for this command, used for logging and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID uuid.UUID) Command {
	return Command{
		BookID: bookID.String(),
	}
}
