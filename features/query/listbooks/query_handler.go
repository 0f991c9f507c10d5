package listbooks

import (
	"context"

	"github.com/circulib/lending-ledger-go/ledger"
)

// Query represents the intent to list the catalog. It carries no parameters;
// the store pins the ordering (title, then book id).
type Query struct{}

// BuildQuery creates a new Query.
func BuildQuery() Query {
	return Query{}
}

// Store defines the interface needed by the QueryHandler for ledger store operations.
type Store interface {
	ListBooks(ctx context.Context) ([]ledger.Book, error)
}

// QueryHandler serves the catalog listing.
type QueryHandler struct {
	store Store
}

// NewQueryHandler creates a new QueryHandler with the provided Store dependency.
func NewQueryHandler(store Store) QueryHandler {
	return QueryHandler{
		store: store,
	}
}

// Handle executes the query.
func (h QueryHandler) Handle(ctx context.Context, _ Query) ([]ledger.Book, error) {
	return h.store.ListBooks(ctx)
}
