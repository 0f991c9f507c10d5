// Package ledger provides the storage-agnostic core of the lending ledger:
// the record types for books, users, and loans, the sentinel errors shared
// by all storage engines and use cases, the overdue fine schedule, and the
// injectable calendar clock.
//
// The package is deliberately free of any database or transport dependency.
// Storage engines (see ledger/postgresengine) persist these records; the
// feature packages (see features/command and features/query) implement the
// lending state machine on top of them.
package ledger
