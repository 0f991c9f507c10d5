// Package adapters provides database adapter implementations for the
// PostgreSQL ledger store.
//
// The adapter pattern lets the store work with multiple PostgreSQL client
// libraries: pgxpool.Pool, database/sql, and sqlx.DB. Each adapter wraps its
// library behind the common DBAdapter interface so the store can execute
// queries and conditional writes without caring which connection type the
// caller wired in.
package adapters
