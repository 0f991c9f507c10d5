// Package postgresengine implements the PostgreSQL-backed ledger store: the
// catalog of books, the user accounts, and the loan records of the lending
// ledger.
//
// The store supports pgxpool.Pool, database/sql, and sqlx.DB connections
// through an internal adapter layer, builds all SQL with goqu, and exposes
// configuration through functional options.
//
// Concurrency discipline: every state transition that depends on previously
// read state (claiming a book for a loan, closing a loan, deleting a book)
// executes as ONE conditional SQL statement whose WHERE clause re-checks the
// precondition. The store validates the affected row count and returns
// ledger.ErrConcurrencyConflict on a shortfall, so two racing writers can
// never both succeed and no mutation pair is ever half-applied.
package postgresengine
