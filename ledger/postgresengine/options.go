package postgresengine

import (
	"github.com/circulib/lending-ledger-go/ledger"
)

// Option defines a functional option for configuring a LedgerStore.
type Option func(*LedgerStore) error

// WithBooksTableName sets the table name for catalog records.
func WithBooksTableName(tableName string) Option {
	return func(s *LedgerStore) error {
		if tableName == "" {
			return ledger.ErrEmptyTableName
		}

		s.booksTableName = tableName

		return nil
	}
}

// WithLoansTableName sets the table name for loan records.
func WithLoansTableName(tableName string) Option {
	return func(s *LedgerStore) error {
		if tableName == "" {
			return ledger.ErrEmptyTableName
		}

		s.loansTableName = tableName

		return nil
	}
}

// WithUsersTableName sets the table name for user accounts.
func WithUsersTableName(tableName string) Option {
	return func(s *LedgerStore) error {
		if tableName == "" {
			return ledger.ErrEmptyTableName
		}

		s.usersTableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the LedgerStore.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL statements with execution timing (development use)
// Info level: row counts, claimed books, closed loans, conflicts (production-safe)
// Warn level: non-critical issues like cleanup failures
// Error level: critical failures that cause operation failures.
func WithLogger(logger Logger) Option {
	return func(s *LedgerStore) error {
		s.logger = logger
		return nil
	}
}
