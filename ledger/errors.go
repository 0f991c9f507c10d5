package ledger

import (
	"errors"
)

// Business rule violations surfaced to callers as typed results.
var (
	// ErrBookNotFound is returned when the referenced book does not exist in the catalog.
	ErrBookNotFound = errors.New("book not found")

	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrBookUnavailable is returned when a borrow is attempted on a book that is currently lent out.
	ErrBookUnavailable = errors.New("book is not available")

	// ErrNoOpenLoan is returned when a return is attempted without a matching open loan
	// for exactly this user and book. Another user's open loan never matches.
	ErrNoOpenLoan = errors.New("no open loan for this user and book")

	// ErrInvalidCredentials is returned when username/password verification fails.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidState is returned when a catalog mutation would violate the loan invariant,
	// e.g. deleting a book that still has an open loan.
	ErrInvalidState = errors.New("operation would violate the open loan invariant")

	// ErrConcurrencyConflict is returned when a conditional write affected no rows because
	// a concurrent operation changed the checked state, and retries were exhausted.
	ErrConcurrencyConflict = errors.New("concurrency conflict, no rows were affected")
)

// Engine wiring and storage failures.
var (
	// ErrNilDatabaseConnection is returned when a store is constructed from a nil connection.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrEmptyTableName is returned when an empty table name is supplied via options.
	ErrEmptyTableName = errors.New("empty table name supplied")

	// ErrBuildingQueryFailed is returned when SQL query construction fails.
	ErrBuildingQueryFailed = errors.New("failed to build sql query")

	// ErrQueryingStoreFailed is returned when a read against the store fails.
	ErrQueryingStoreFailed = errors.New("failed to query the ledger store")

	// ErrExecutingStoreFailed is returned when a write against the store fails.
	ErrExecutingStoreFailed = errors.New("failed to execute statement on the ledger store")

	// ErrScanningRowFailed is returned when scanning a database row fails.
	ErrScanningRowFailed = errors.New("failed to scan database row")
)
