package authenticateuser

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/circulib/lending-ledger-go/ledger"
)

// Query represents the intent to verify a username/password pair.
type Query struct {
	Username string
	Password string
}

// BuildQuery creates a new Query with the provided credentials.
func BuildQuery(username string, password string) Query {
	return Query{
		Username: username,
		Password: password,
	}
}

// Result identifies the authenticated user to the caller.
type Result struct {
	UserID ledger.UserIDString
	Role   ledger.Role
}

// Store defines the interface needed by the QueryHandler for ledger store operations.
type Store interface {
	GetUserByUsername(ctx context.Context, username string) (ledger.User, error)
}

// QueryHandler verifies credentials against the stored bcrypt hash.
type QueryHandler struct {
	store Store
}

// NewQueryHandler creates a new QueryHandler with the provided Store dependency.
func NewQueryHandler(store Store) QueryHandler {
	return QueryHandler{
		store: store,
	}
}

// Handle executes the credential check.
//
// Both an unknown username and a failed hash comparison map to
// ledger.ErrInvalidCredentials so the caller cannot probe which usernames
// exist. Storage failures pass through untouched.
func (h QueryHandler) Handle(ctx context.Context, query Query) (Result, error) {
	user, err := h.store.GetUserByUsername(ctx, query.Username)
	if err != nil {
		if errors.Is(err, ledger.ErrUserNotFound) {
			return Result{}, ledger.ErrInvalidCredentials
		}

		return Result{}, err
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(query.Password))
	if compareErr != nil {
		return Result{}, ledger.ErrInvalidCredentials
	}

	return Result{
		UserID: user.UserID,
		Role:   user.Role,
	}, nil
}
