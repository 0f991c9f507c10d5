package postgresengine

import (
	"context"
	"errors"

	"github.com/doug-martin/goqu/v9"

	"github.com/circulib/lending-ledger-go/ledger"
)

// GetBook retrieves a single catalog record, or ledger.ErrBookNotFound.
func (s LedgerStore) GetBook(ctx context.Context, bookID ledger.BookIDString) (ledger.Book, error) {
	var empty ledger.Book

	selectStmt := goqu.Dialect(dialectPostgres).
		From(s.booksTableName).
		Select(colBookID, colTitle, colAuthor, colGenre, colAvailable).
		Where(goqu.Ex{colBookID: bookID})

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		s.logBuildQueryError(toSQLErr)
		return empty, errors.Join(ledger.ErrBuildingQueryFailed, toSQLErr)
	}

	rows, queryErr := s.executeQuery(ctx, sqlQuery, logActionGetBook)
	if queryErr != nil {
		return empty, queryErr
	}
	defer s.closeRows(rows)

	if !rows.Next() {
		return empty, ledger.ErrBookNotFound
	}

	book := ledger.Book{}
	if scanErr := rows.Scan(&book.BookID, &book.Title, &book.Author, &book.Genre, &book.Available); scanErr != nil {
		if s.logger != nil {
			s.logger.Error(logMsgScanRowFailed, logAttrError, scanErr.Error())
		}

		return empty, errors.Join(ledger.ErrScanningRowFailed, scanErr)
	}

	return book, nil
}

// ListBooks retrieves all catalog records with their availability flags,
// ordered by title and book id for reproducible output.
func (s LedgerStore) ListBooks(ctx context.Context) ([]ledger.Book, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(s.booksTableName).
		Select(colBookID, colTitle, colAuthor, colGenre, colAvailable).
		Order(goqu.I(colTitle).Asc(), goqu.I(colBookID).Asc())

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		s.logBuildQueryError(toSQLErr)
		return nil, errors.Join(ledger.ErrBuildingQueryFailed, toSQLErr)
	}

	rows, queryErr := s.executeQuery(ctx, sqlQuery, logActionListBooks)
	if queryErr != nil {
		return nil, queryErr
	}
	defer s.closeRows(rows)

	books := make([]ledger.Book, 0)

	for rows.Next() {
		book := ledger.Book{}
		if scanErr := rows.Scan(&book.BookID, &book.Title, &book.Author, &book.Genre, &book.Available); scanErr != nil {
			if s.logger != nil {
				s.logger.Error(logMsgScanRowFailed, logAttrError, scanErr.Error())
			}

			return nil, errors.Join(ledger.ErrScanningRowFailed, scanErr)
		}

		books = append(books, book)
	}

	s.logOperation(logActionListBooks, logAttrRowCount, len(books))

	return books, nil
}

// InsertBook adds a new catalog record.
func (s LedgerStore) InsertBook(ctx context.Context, book ledger.Book) error {
	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(s.booksTableName).
		Cols(colBookID, colTitle, colAuthor, colGenre, colAvailable).
		Vals(goqu.Vals{book.BookID, book.Title, book.Author, book.Genre, book.Available})

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		s.logBuildQueryError(toSQLErr)
		return errors.Join(ledger.ErrBuildingQueryFailed, toSQLErr)
	}

	if _, execErr := s.executeStatement(ctx, sqlQuery, logActionInsertBook); execErr != nil {
		return execErr
	}

	s.logOperation(logActionInsertBook, logAttrBookID, book.BookID)

	return nil
}

// UpdateBookMetadata edits title, author, and genre of an existing record.
// The availability flag is owned by the lending operations and never touched here.
func (s LedgerStore) UpdateBookMetadata(ctx context.Context, book ledger.Book) error {
	updateStmt := goqu.Dialect(dialectPostgres).
		Update(s.booksTableName).
		Set(goqu.Record{
			colTitle:  book.Title,
			colAuthor: book.Author,
			colGenre:  book.Genre,
		}).
		Where(goqu.Ex{colBookID: book.BookID})

	sqlQuery, _, toSQLErr := updateStmt.ToSQL()
	if toSQLErr != nil {
		s.logBuildQueryError(toSQLErr)
		return errors.Join(ledger.ErrBuildingQueryFailed, toSQLErr)
	}

	rowsAffected, execErr := s.executeStatement(ctx, sqlQuery, logActionUpdateBook)
	if execErr != nil {
		return execErr
	}

	if rowsAffected == 0 {
		return ledger.ErrBookNotFound
	}

	s.logOperation(logActionUpdateBook, logAttrBookID, book.BookID)

	return nil
}

// DeleteAvailableBook removes a catalog record, but only while it is
// available. A book with an open loan never matches the guarded WHERE, so
// the affected row count stays zero and the conflict surfaces to the caller,
// which re-loads state and maps it to ledger.ErrInvalidState or
// ledger.ErrBookNotFound.
func (s LedgerStore) DeleteAvailableBook(ctx context.Context, bookID ledger.BookIDString) error {
	deleteStmt := goqu.Dialect(dialectPostgres).
		Delete(s.booksTableName).
		Where(goqu.Ex{colBookID: bookID, colAvailable: true})

	sqlQuery, _, toSQLErr := deleteStmt.ToSQL()
	if toSQLErr != nil {
		s.logBuildQueryError(toSQLErr)
		return errors.Join(ledger.ErrBuildingQueryFailed, toSQLErr)
	}

	rowsAffected, execErr := s.executeStatement(ctx, sqlQuery, logActionDeleteBook)
	if execErr != nil {
		return execErr
	}

	if rowsAffected == 0 {
		s.logOperation(logMsgConcurrencyConflict, logAttrBookID, bookID, logAttrRowsAffected, rowsAffected)
		return ledger.ErrConcurrencyConflict
	}

	s.logOperation(logActionDeleteBook, logAttrBookID, bookID)

	return nil
}
