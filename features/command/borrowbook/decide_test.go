package borrowbook_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/circulib/lending-ledger-go/features/command/borrowbook"
	"github.com/circulib/lending-ledger-go/ledger"
)

func Test_Decide_Success_WhenBookIsAvailable(t *testing.T) {
	// arrange
	userID := uuid.New()
	bookID := uuid.New()
	borrowDate := day(2026, time.March, 1)

	state := borrowbook.State{
		BookExists:    true,
		BookAvailable: true,
	}

	command := borrowbook.BuildCommand(userID, bookID)

	// act
	result := borrowbook.Decide(state, command, borrowDate)

	// assert
	assert.Equal(t, "success", result.Outcome, "Expected success decision")
	assert.NoError(t, result.HasError(), "Expected no error for success decision")
	assert.Equal(t, userID.String(), result.Value.UserID, "Loan should reference the borrowing user")
	assert.Equal(t, bookID.String(), result.Value.BookID, "Loan should reference the borrowed book")
	assert.Equal(t, borrowDate, result.Value.BorrowDate, "Loan should open on the borrow date")
	assert.True(t, result.Value.IsOpen(), "Loan should be open")
	assert.Empty(t, result.Value.LoanID, "Loan id is assigned by the handler, not the decision")
}

func Test_Decide_Success_TruncatesBorrowDateToCalendarDay(t *testing.T) {
	// arrange
	state := borrowbook.State{
		BookExists:    true,
		BookAvailable: true,
	}

	command := borrowbook.BuildCommand(uuid.New(), uuid.New())
	borrowInstant := time.Date(2026, time.March, 1, 17, 45, 12, 0, time.UTC)

	// act
	result := borrowbook.Decide(state, command, borrowInstant)

	// assert
	assert.NoError(t, result.HasError())
	assert.Equal(t, day(2026, time.March, 1), result.Value.BorrowDate, "Borrow date should be a calendar date")
}

func Test_Decide_Error_WhenBookDoesNotExist(t *testing.T) {
	// arrange
	state := borrowbook.State{}

	command := borrowbook.BuildCommand(uuid.New(), uuid.New())

	// act
	result := borrowbook.Decide(state, command, day(2026, time.March, 1))

	// assert
	assert.Equal(t, "error", result.Outcome, "Expected error decision")
	assert.ErrorIs(t, result.HasError(), ledger.ErrBookNotFound)
}

func Test_Decide_Error_WhenBookIsLentOut(t *testing.T) {
	// arrange - the book exists but another user holds the open loan
	state := borrowbook.State{
		BookExists:    true,
		BookAvailable: false,
	}

	command := borrowbook.BuildCommand(uuid.New(), uuid.New())

	// act
	result := borrowbook.Decide(state, command, day(2026, time.March, 1))

	// assert
	assert.Equal(t, "error", result.Outcome, "Expected error decision")
	assert.ErrorIs(t, result.HasError(), ledger.ErrBookUnavailable)
}

func Test_Decide_Idempotent_WhenUserAlreadyHoldsTheLoan(t *testing.T) {
	// arrange
	userID := uuid.New()
	bookID := uuid.New()
	existingLoan := ledger.BuildOpenLoan(uuid.New(), userID, bookID, day(2026, time.February, 20))

	state := borrowbook.State{
		BookExists:     true,
		BookAvailable:  false,
		HasOwnOpenLoan: true,
		OwnOpenLoan:    existingLoan,
	}

	command := borrowbook.BuildCommand(userID, bookID)

	// act
	result := borrowbook.Decide(state, command, day(2026, time.March, 1))

	// assert - repeating the borrow reports the loan already held
	assert.Equal(t, "idempotent", result.Outcome, "Expected idempotent decision")
	assert.NoError(t, result.HasError(), "Expected no error for idempotent decision")
	assert.Equal(t, existingLoan.LoanID, result.Value.LoanID, "Idempotent decision should carry the existing loan")
	assert.Equal(t, existingLoan.BorrowDate, result.Value.BorrowDate, "Original borrow date should be kept")
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
