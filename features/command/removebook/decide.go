package removebook

import (
	"github.com/circulib/lending-ledger-go/ledger"
	"github.com/circulib/lending-ledger-go/shared/core"
)

// State is the snapshot of stored state the decision depends on.
type State struct {
	BookExists    bool
	BookAvailable bool
}

// Decide determines whether a catalog record may be deleted.
//
//	ERROR: ledger.ErrBookNotFound if the book does not exist
//	ERROR: ledger.ErrInvalidState if the book still has an open loan -
//	       deleting it is a caller error, not a lending transition
func Decide(state State, command Command) core.DecisionResult[ledger.BookIDString] {
	if !state.BookExists {
		return core.ErrorDecision[ledger.BookIDString](ledger.ErrBookNotFound)
	}

	if !state.BookAvailable {
		return core.ErrorDecision[ledger.BookIDString](ledger.ErrInvalidState)
	}

	return core.SuccessDecision(command.BookID)
}
