package borrowinghistory

import (
	"context"

	"github.com/circulib/lending-ledger-go/ledger"
)

// Store defines the interface needed by the QueryHandler for ledger store operations.
type Store interface {
	LoansByUser(ctx context.Context, userID ledger.UserIDString) ([]ledger.LoanView, error)
}

// QueryHandler orchestrates the borrowing-history workflow: Load -> Project.
// It handles the store interaction and delegates the projection to the pure
// core function.
type QueryHandler struct {
	store Store
}

// NewQueryHandler creates a new QueryHandler with the provided Store dependency.
func NewQueryHandler(store Store) QueryHandler {
	return QueryHandler{
		store: store,
	}
}

// Handle executes the complete query processing workflow.
func (h QueryHandler) Handle(ctx context.Context, query Query) (History, error) {
	views, err := h.store.LoansByUser(ctx, query.UserID)
	if err != nil {
		return History{}, err
	}

	return ProjectHistory(views, query), nil
}
