package postgresengine

import (
	"context"
	"fmt"
)

// DDL templates; goqu builds DML only, so the schema is plain SQL.
// The partial unique index is defense in depth for the single-open-loan
// invariant that the conditional claim statement already enforces.
const (
	createUsersTableSQL = `CREATE TABLE IF NOT EXISTS %s (
	user_id UUID PRIMARY KEY,
	username TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL,
	role TEXT NOT NULL CHECK (role IN ('admin', 'member'))
)`

	createBooksTableSQL = `CREATE TABLE IF NOT EXISTS %s (
	book_id UUID PRIMARY KEY,
	title TEXT NOT NULL,
	author TEXT NOT NULL,
	genre TEXT NOT NULL,
	available BOOLEAN NOT NULL DEFAULT TRUE
)`

	createLoansTableSQL = `CREATE TABLE IF NOT EXISTS %s (
	loan_id UUID PRIMARY KEY,
	user_id UUID NOT NULL,
	book_id UUID NOT NULL,
	borrow_date DATE NOT NULL,
	return_date DATE,
	fine BIGINT NOT NULL DEFAULT 0,
	CHECK (return_date IS NULL OR return_date >= borrow_date)
)`

	createOpenLoanIndexSQL = `CREATE UNIQUE INDEX IF NOT EXISTS idx_%s_open_book
	ON %s (book_id) WHERE return_date IS NULL`
)

// EnsureSchema creates the users, books, and loans tables and the open-loan
// index if they do not exist yet. Idempotent, safe to run on every startup.
func (s LedgerStore) EnsureSchema(ctx context.Context) error {
	statements := []sqlQueryString{
		fmt.Sprintf(createUsersTableSQL, s.usersTableName),
		fmt.Sprintf(createBooksTableSQL, s.booksTableName),
		fmt.Sprintf(createLoansTableSQL, s.loansTableName),
		fmt.Sprintf(createOpenLoanIndexSQL, s.loansTableName, s.loansTableName),
	}

	for _, statement := range statements {
		if _, execErr := s.executeStatement(ctx, statement, logActionEnsureSchema); execErr != nil {
			return execErr
		}
	}

	s.logOperation(logActionEnsureSchema)

	return nil
}
