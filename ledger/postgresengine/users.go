package postgresengine

import (
	"context"
	"errors"

	"github.com/doug-martin/goqu/v9"

	"github.com/circulib/lending-ledger-go/ledger"
)

// GetUserByUsername retrieves an account by its unique username, or
// ledger.ErrUserNotFound. Credential verification happens in the
// authenticate use case, never in the store.
func (s LedgerStore) GetUserByUsername(ctx context.Context, username string) (ledger.User, error) {
	var empty ledger.User

	selectStmt := goqu.Dialect(dialectPostgres).
		From(s.usersTableName).
		Select(colUserID, colUsername, colPassword, colRole).
		Where(goqu.Ex{colUsername: username})

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		s.logBuildQueryError(toSQLErr)
		return empty, errors.Join(ledger.ErrBuildingQueryFailed, toSQLErr)
	}

	rows, queryErr := s.executeQuery(ctx, sqlQuery, logActionGetUser)
	if queryErr != nil {
		return empty, queryErr
	}
	defer s.closeRows(rows)

	if !rows.Next() {
		return empty, ledger.ErrUserNotFound
	}

	user := ledger.User{}
	var role string

	if scanErr := rows.Scan(&user.UserID, &user.Username, &user.PasswordHash, &role); scanErr != nil {
		if s.logger != nil {
			s.logger.Error(logMsgScanRowFailed, logAttrError, scanErr.Error())
		}

		return empty, errors.Join(ledger.ErrScanningRowFailed, scanErr)
	}

	user.Role = ledger.Role(role)

	return user, nil
}

// SeedUser inserts an account unless the username is already taken, using
// ON CONFLICT DO NOTHING on the unique username. Running it on every startup
// is safe; it reports whether a row was actually inserted.
func (s LedgerStore) SeedUser(ctx context.Context, user ledger.User) (bool, error) {
	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(s.usersTableName).
		Cols(colUserID, colUsername, colPassword, colRole).
		Vals(goqu.Vals{user.UserID, user.Username, user.PasswordHash, string(user.Role)}).
		OnConflict(goqu.DoNothing())

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		s.logBuildQueryError(toSQLErr)
		return false, errors.Join(ledger.ErrBuildingQueryFailed, toSQLErr)
	}

	rowsAffected, execErr := s.executeStatement(ctx, sqlQuery, logActionSeedUser)
	if execErr != nil {
		return false, execErr
	}

	inserted := rowsAffected > 0
	if inserted {
		s.logOperation(logActionSeedUser, logAttrUserID, user.UserID)
	}

	return inserted, nil
}
