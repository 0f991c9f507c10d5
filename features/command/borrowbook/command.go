package borrowbook

import (
	"github.com/google/uuid"

	"github.com/circulib/lending-ledger-go/ledger"
)

const commandType = "BorrowBook"

// Command represents the intent of a user to borrow a book.
type Command struct {
	UserID ledger.UserIDString
	BookID ledger.BookIDString
}

// CommandType returns the type identifier for this command, used for logging and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(userID uuid.UUID, bookID uuid.UUID) Command {
	return Command{
		UserID: userID.String(),
		BookID: bookID.String(),
	}
}
