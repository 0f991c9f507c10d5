package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // driver import
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/circulib/lending-ledger-go/ledger"
	"github.com/circulib/lending-ledger-go/ledger/postgresengine/internal/adapters"
)

const (
	defaultBooksTableName = "books"
	defaultLoansTableName = "loans"
	defaultUsersTableName = "users"

	logMsgBuildQueryFailed    = "failed to build sql query"
	logMsgDBQueryFailed       = "database query execution failed"
	logMsgDBExecFailed        = "database execution failed"
	logMsgCloseRowsFailed     = "failed to close database rows"
	logMsgScanRowFailed       = "failed to scan database row"
	logMsgRowsAffectedFailed  = "failed to get rows affected count"
	logMsgConcurrencyConflict = "concurrency conflict detected"
	logMsgSQLExecuted         = "executed sql for: "
	logMsgOperation           = "ledger store operation: "

	logAttrError        = "error"
	logAttrQuery        = "query"
	logAttrDurationMS   = "duration_ms"
	logAttrBookID       = "book_id"
	logAttrUserID       = "user_id"
	logAttrLoanID       = "loan_id"
	logAttrRowCount     = "row_count"
	logAttrRowsAffected = "rows_affected"

	logActionGetBook      = "get book"
	logActionListBooks    = "list books"
	logActionInsertBook   = "insert book"
	logActionUpdateBook   = "update book"
	logActionDeleteBook   = "delete book"
	logActionOpenLoan     = "open loan"
	logActionCloseLoan    = "close loan"
	logActionFindOpenLoan = "find open loan"
	logActionLoansByUser  = "loans by user"
	logActionGetUser      = "get user"
	logActionSeedUser     = "seed user"
	logActionEnsureSchema = "ensure schema"
	logActionBookClaimed  = "book claimed for loan"
	logActionLoanClosed   = "loan closed and book released"

	colBookID     = "book_id"
	colTitle      = "title"
	colAuthor     = "author"
	colGenre      = "genre"
	colAvailable  = "available"
	colLoanID     = "loan_id"
	colUserID     = "user_id"
	colBorrowDate = "borrow_date"
	colReturnDate = "return_date"
	colFine       = "fine"
	colUsername   = "username"
	colPassword   = "password_hash"
	colRole       = "role"

	cteClaimed = "claimed"
	cteClosed  = "closed"

	dialectPostgres = "postgres"
)

type (
	sqlQueryString    = string
	rowsAffectedInt64 = int64
)

// Logger interface for SQL query logging, operational messages, warnings, and
// error reporting. A *slog.Logger satisfies it directly.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// LedgerStore persists the catalog, the user accounts, and the lending ledger
// in PostgreSQL. It leverages a database adapter and supports customizable
// logging and table name configuration.
type LedgerStore struct {
	db             adapters.DBAdapter
	booksTableName string
	loansTableName string
	usersTableName string
	logger         Logger
}

// NewLedgerStoreFromPGXPool creates a new LedgerStore using a pgx pool with optional configuration.
func NewLedgerStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (LedgerStore, error) {
	if db == nil {
		return LedgerStore{}, ledger.ErrNilDatabaseConnection
	}

	return newLedgerStore(adapters.NewPGXAdapter(db), options...)
}

// NewLedgerStoreFromSQLDB creates a new LedgerStore using a sql.DB with optional configuration.
func NewLedgerStoreFromSQLDB(db *sql.DB, options ...Option) (LedgerStore, error) {
	if db == nil {
		return LedgerStore{}, ledger.ErrNilDatabaseConnection
	}

	return newLedgerStore(adapters.NewSQLAdapter(db), options...)
}

// NewLedgerStoreFromSQLX creates a new LedgerStore using a sqlx.DB with optional configuration.
func NewLedgerStoreFromSQLX(db *sqlx.DB, options ...Option) (LedgerStore, error) {
	if db == nil {
		return LedgerStore{}, ledger.ErrNilDatabaseConnection
	}

	return newLedgerStore(adapters.NewSQLXAdapter(db), options...)
}

func newLedgerStore(db adapters.DBAdapter, options ...Option) (LedgerStore, error) {
	store := LedgerStore{
		db:             db,
		booksTableName: defaultBooksTableName,
		loansTableName: defaultLoansTableName,
		usersTableName: defaultUsersTableName,
	}

	for _, option := range options {
		if err := option(&store); err != nil {
			return LedgerStore{}, err
		}
	}

	return store, nil
}

// executeQuery executes the SQL query and returns rows with timing logged.
func (s LedgerStore) executeQuery(ctx context.Context, sqlQuery sqlQueryString, action string) (adapters.DBRows, error) {
	start := time.Now()
	rows, queryErr := s.db.Query(ctx, sqlQuery)
	s.logQueryWithDuration(sqlQuery, action, time.Since(start))

	if queryErr != nil {
		if s.logger != nil {
			s.logger.Error(logMsgDBQueryFailed, logAttrError, queryErr.Error(), logAttrQuery, sqlQuery)
		}

		return nil, errors.Join(ledger.ErrQueryingStoreFailed, queryErr)
	}

	return rows, nil
}

// executeStatement executes a write statement and returns the affected row count.
func (s LedgerStore) executeStatement(ctx context.Context, sqlQuery sqlQueryString, action string) (rowsAffectedInt64, error) {
	start := time.Now()
	result, execErr := s.db.Exec(ctx, sqlQuery)
	s.logQueryWithDuration(sqlQuery, action, time.Since(start))

	if execErr != nil {
		if s.logger != nil {
			s.logger.Error(logMsgDBExecFailed, logAttrError, execErr.Error(), logAttrQuery, sqlQuery)
		}

		return 0, errors.Join(ledger.ErrExecutingStoreFailed, execErr)
	}

	rowsAffected, rowsAffectedErr := result.RowsAffected()
	if rowsAffectedErr != nil {
		if s.logger != nil {
			s.logger.Error(logMsgRowsAffectedFailed, logAttrError, rowsAffectedErr.Error())
		}

		return 0, errors.Join(ledger.ErrExecutingStoreFailed, rowsAffectedErr)
	}

	return rowsAffected, nil
}

// closeRows safely closes database rows and logs any errors.
func (s LedgerStore) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		if s.logger != nil {
			s.logger.Warn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
		}
	}
}

// logQueryWithDuration logs SQL queries with execution time at debug level if the logger is configured.
func (s LedgerStore) logQueryWithDuration(sqlQuery sqlQueryString, action string, duration time.Duration) {
	if s.logger != nil {
		s.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, durationToMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level if the logger is configured.
func (s LedgerStore) logOperation(action string, args ...any) {
	if s.logger != nil {
		s.logger.Info(logMsgOperation+action, args...)
	}
}

// logBuildQueryError logs query construction failures at error level if the logger is configured.
func (s LedgerStore) logBuildQueryError(err error) {
	if s.logger != nil {
		s.logger.Error(logMsgBuildQueryFailed, logAttrError, err.Error())
	}
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
