package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/circulib/lending-ledger-go/ledger"
)

// ClaimBookAndOpenLoan atomically flips the book to unavailable and inserts
// the open loan, as one conditional SQL statement: the claim CTE only matches
// while the book is still available, and the loan row is inserted from the
// claimed row. If a concurrent borrow won the race, zero rows are affected
// and ledger.ErrConcurrencyConflict is returned; the caller re-loads state
// and decides again.
func (s LedgerStore) ClaimBookAndOpenLoan(ctx context.Context, loan ledger.Loan) error {
	builder := goqu.Dialect(dialectPostgres)

	claimStmt := builder.
		Update(s.booksTableName).
		Set(goqu.Record{colAvailable: false}).
		Where(goqu.Ex{colBookID: loan.BookID, colAvailable: true}).
		Returning(colBookID)

	insertStmt := builder.
		Insert(s.loansTableName).
		Cols(colLoanID, colUserID, colBookID, colBorrowDate).
		FromQuery(
			builder.From(cteClaimed).
				Select(
					goqu.V(loan.LoanID),
					goqu.V(loan.UserID),
					goqu.C(colBookID),
					goqu.V(loan.BorrowDate.Format(time.DateOnly)),
				),
		).
		With(cteClaimed, claimStmt)

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		s.logBuildQueryError(toSQLErr)
		return errors.Join(ledger.ErrBuildingQueryFailed, toSQLErr)
	}

	rowsAffected, execErr := s.executeStatement(ctx, sqlQuery, logActionOpenLoan)
	if execErr != nil {
		return execErr
	}

	if rowsAffected == 0 {
		s.logOperation(logMsgConcurrencyConflict, logAttrBookID, loan.BookID, logAttrRowsAffected, rowsAffected)
		return ledger.ErrConcurrencyConflict
	}

	s.logOperation(logActionBookClaimed, logAttrBookID, loan.BookID, logAttrLoanID, loan.LoanID)

	return nil
}

// CloseLoanAndReleaseBook atomically sets the return date and fine on the
// open loan and flips the book back to available, as one conditional SQL
// statement. The close CTE only matches while the loan is still open, so a
// loan can never be closed twice and the fine is fixed exactly once. Zero
// affected rows signal a lost race and map to ledger.ErrConcurrencyConflict.
func (s LedgerStore) CloseLoanAndReleaseBook(ctx context.Context, closedLoan ledger.Loan) error {
	builder := goqu.Dialect(dialectPostgres)

	closeStmt := builder.
		Update(s.loansTableName).
		Set(goqu.Record{
			colReturnDate: closedLoan.ReturnDate.Format(time.DateOnly),
			colFine:       closedLoan.Fine,
		}).
		Where(goqu.Ex{colLoanID: closedLoan.LoanID}, goqu.C(colReturnDate).IsNull()).
		Returning(colBookID)

	releaseStmt := builder.
		Update(s.booksTableName).
		Set(goqu.Record{colAvailable: true}).
		Where(goqu.C(colBookID).In(builder.From(cteClosed).Select(colBookID))).
		With(cteClosed, closeStmt)

	sqlQuery, _, toSQLErr := releaseStmt.ToSQL()
	if toSQLErr != nil {
		s.logBuildQueryError(toSQLErr)
		return errors.Join(ledger.ErrBuildingQueryFailed, toSQLErr)
	}

	rowsAffected, execErr := s.executeStatement(ctx, sqlQuery, logActionCloseLoan)
	if execErr != nil {
		return execErr
	}

	if rowsAffected == 0 {
		s.logOperation(logMsgConcurrencyConflict, logAttrLoanID, closedLoan.LoanID, logAttrRowsAffected, rowsAffected)
		return ledger.ErrConcurrencyConflict
	}

	s.logOperation(logActionLoanClosed, logAttrLoanID, closedLoan.LoanID, logAttrBookID, closedLoan.BookID)

	return nil
}

// FindOpenLoan retrieves the open loan for exactly this user and book, or
// ledger.ErrNoOpenLoan. An open loan held by a different user never matches.
func (s LedgerStore) FindOpenLoan(
	ctx context.Context,
	userID ledger.UserIDString,
	bookID ledger.BookIDString,
) (ledger.Loan, error) {

	var empty ledger.Loan

	selectStmt := goqu.Dialect(dialectPostgres).
		From(s.loansTableName).
		Select(colLoanID, colUserID, colBookID, colBorrowDate).
		Where(
			goqu.Ex{colUserID: userID, colBookID: bookID},
			goqu.C(colReturnDate).IsNull(),
		)

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		s.logBuildQueryError(toSQLErr)
		return empty, errors.Join(ledger.ErrBuildingQueryFailed, toSQLErr)
	}

	rows, queryErr := s.executeQuery(ctx, sqlQuery, logActionFindOpenLoan)
	if queryErr != nil {
		return empty, queryErr
	}
	defer s.closeRows(rows)

	if !rows.Next() {
		return empty, ledger.ErrNoOpenLoan
	}

	loan := ledger.Loan{}
	var borrowDate time.Time

	if scanErr := rows.Scan(&loan.LoanID, &loan.UserID, &loan.BookID, &borrowDate); scanErr != nil {
		if s.logger != nil {
			s.logger.Error(logMsgScanRowFailed, logAttrError, scanErr.Error())
		}

		return empty, errors.Join(ledger.ErrScanningRowFailed, scanErr)
	}

	loan.BorrowDate = ledger.ToCalendarDate(borrowDate)

	return loan, nil
}

// LoansByUser retrieves all loans of a user joined with the book title,
// ordered by borrow date ascending with ties broken by loan id ascending.
// The ordering is pinned here so history reads are reproducible regardless
// of physical row order.
func (s LedgerStore) LoansByUser(ctx context.Context, userID ledger.UserIDString) ([]ledger.LoanView, error) {
	loansLoanID := fmt.Sprintf("%s.%s", s.loansTableName, colLoanID)
	loansUserID := fmt.Sprintf("%s.%s", s.loansTableName, colUserID)
	loansBookID := fmt.Sprintf("%s.%s", s.loansTableName, colBookID)
	loansBorrowDate := fmt.Sprintf("%s.%s", s.loansTableName, colBorrowDate)
	loansReturnDate := fmt.Sprintf("%s.%s", s.loansTableName, colReturnDate)
	loansFine := fmt.Sprintf("%s.%s", s.loansTableName, colFine)
	booksTitle := fmt.Sprintf("%s.%s", s.booksTableName, colTitle)
	booksBookID := fmt.Sprintf("%s.%s", s.booksTableName, colBookID)

	selectStmt := goqu.Dialect(dialectPostgres).
		From(s.loansTableName).
		Join(
			goqu.T(s.booksTableName),
			goqu.On(goqu.I(loansBookID).Eq(goqu.I(booksBookID))),
		).
		Select(loansLoanID, booksTitle, loansBorrowDate, loansReturnDate, loansFine).
		Where(goqu.I(loansUserID).Eq(userID)).
		Order(goqu.I(loansBorrowDate).Asc(), goqu.I(loansLoanID).Asc())

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		s.logBuildQueryError(toSQLErr)
		return nil, errors.Join(ledger.ErrBuildingQueryFailed, toSQLErr)
	}

	rows, queryErr := s.executeQuery(ctx, sqlQuery, logActionLoansByUser)
	if queryErr != nil {
		return nil, queryErr
	}
	defer s.closeRows(rows)

	views := make([]ledger.LoanView, 0)

	for rows.Next() {
		view := ledger.LoanView{}
		var borrowDate time.Time
		var returnDate sql.NullTime

		if scanErr := rows.Scan(&view.LoanID, &view.Title, &borrowDate, &returnDate, &view.Fine); scanErr != nil {
			if s.logger != nil {
				s.logger.Error(logMsgScanRowFailed, logAttrError, scanErr.Error())
			}

			return nil, errors.Join(ledger.ErrScanningRowFailed, scanErr)
		}

		view.BorrowDate = ledger.ToCalendarDate(borrowDate)
		if returnDate.Valid {
			view.ReturnDate = ledger.ToCalendarDate(returnDate.Time)
		}

		views = append(views, view)
	}

	s.logOperation(logActionLoansByUser, logAttrUserID, userID, logAttrRowCount, len(views))

	return views, nil
}
