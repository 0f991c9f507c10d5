package returnbook_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/circulib/lending-ledger-go/features/command/returnbook"
	"github.com/circulib/lending-ledger-go/ledger"
	"github.com/circulib/lending-ledger-go/shared/shell"
	"github.com/circulib/lending-ledger-go/testutil"
)

// fakeStore implements returnbook.Store with configurable behavior per call.
type fakeStore struct {
	findOpenLoan func(ctx context.Context, userID ledger.UserIDString, bookID ledger.BookIDString) (ledger.Loan, error)
	closeLoan    func(ctx context.Context, closedLoan ledger.Loan) error

	closedLoans []ledger.Loan
}

func (s *fakeStore) FindOpenLoan(
	ctx context.Context,
	userID ledger.UserIDString,
	bookID ledger.BookIDString,
) (ledger.Loan, error) {

	return s.findOpenLoan(ctx, userID, bookID)
}

func (s *fakeStore) CloseLoanAndReleaseBook(ctx context.Context, closedLoan ledger.Loan) error {
	s.closedLoans = append(s.closedLoans, closedLoan)
	return s.closeLoan(ctx, closedLoan)
}

func Test_Handle_Success_ClosesLoanAndFixesFine(t *testing.T) {
	// arrange - borrowed March 1st, returned March 21st: 6 days over the
	// 14 day grace period at 5 cents each
	userID := uuid.New()
	bookID := uuid.New()
	openLoan := ledger.BuildOpenLoan(uuid.New(), userID, bookID, testutil.Day(2026, time.March, 1))
	clock := testutil.NewFixedClock(testutil.Day(2026, time.March, 21))

	store := &fakeStore{
		findOpenLoan: func(_ context.Context, _ ledger.UserIDString, _ ledger.BookIDString) (ledger.Loan, error) {
			return openLoan, nil
		},
		closeLoan: func(_ context.Context, _ ledger.Loan) error {
			return nil
		},
	}

	handler := returnbook.NewCommandHandler(store, clock, ledger.DefaultFineSchedule())
	command := returnbook.BuildCommand(userID, bookID)

	// act
	result, err := handler.Handle(context.Background(), command)

	// assert
	require.NoError(t, err)
	assert.Equal(t, openLoan.LoanID, result.LoanID)
	assert.Equal(t, int64(30), result.Fine)
	assert.Equal(t, 1, result.RetryAttempts)

	require.Len(t, store.closedLoans, 1)
	closed := store.closedLoans[0]
	assert.False(t, closed.IsOpen())
	assert.Equal(t, testutil.Day(2026, time.March, 21), closed.ReturnDate)
	assert.Equal(t, int64(30), closed.Fine)
}

func Test_Handle_Error_WhenNoOpenLoanExists(t *testing.T) {
	// arrange
	clock := testutil.NewFixedClock(testutil.Day(2026, time.March, 21))

	store := &fakeStore{
		findOpenLoan: func(_ context.Context, _ ledger.UserIDString, _ ledger.BookIDString) (ledger.Loan, error) {
			return ledger.Loan{}, ledger.ErrNoOpenLoan
		},
	}

	handler := returnbook.NewCommandHandler(store, clock, ledger.DefaultFineSchedule())
	command := returnbook.BuildCommand(uuid.New(), uuid.New())

	// act
	result, err := handler.Handle(context.Background(), command)

	// assert - business errors are permanent, no retries
	assert.ErrorIs(t, err, ledger.ErrNoOpenLoan)
	assert.Equal(t, 1, result.RetryAttempts)
	assert.Empty(t, store.closedLoans)
}

func Test_Handle_DoubleReturnRace_SecondReturnReportsNoOpenLoan(t *testing.T) {
	// arrange - the close is lost to a concurrent return of the same loan;
	// the reloaded state then shows no open loan anymore
	userID := uuid.New()
	bookID := uuid.New()
	openLoan := ledger.BuildOpenLoan(uuid.New(), userID, bookID, testutil.Day(2026, time.March, 1))
	clock := testutil.NewFixedClock(testutil.Day(2026, time.March, 10))
	loanStillOpen := true

	store := &fakeStore{}
	store.findOpenLoan = func(_ context.Context, _ ledger.UserIDString, _ ledger.BookIDString) (ledger.Loan, error) {
		if loanStillOpen {
			return openLoan, nil
		}
		return ledger.Loan{}, ledger.ErrNoOpenLoan
	}
	store.closeLoan = func(_ context.Context, _ ledger.Loan) error {
		loanStillOpen = false // the concurrent winner closed the loan
		return ledger.ErrConcurrencyConflict
	}

	handler := returnbook.NewCommandHandler(
		store,
		clock,
		ledger.DefaultFineSchedule(),
		returnbook.WithRetryOptions(shell.WithBaseDelay(0), shell.WithJitterFactor(0)),
	)
	command := returnbook.BuildCommand(userID, bookID)

	// act
	result, err := handler.Handle(context.Background(), command)

	// assert - the loan is closed exactly once, the loser gets the business error
	assert.ErrorIs(t, err, ledger.ErrNoOpenLoan)
	assert.Equal(t, 2, result.RetryAttempts)
	assert.Len(t, store.closedLoans, 1, "Only the first attempt should reach the close")
}
