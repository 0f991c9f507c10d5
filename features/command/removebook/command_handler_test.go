package removebook_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/circulib/lending-ledger-go/features/command/removebook"
	"github.com/circulib/lending-ledger-go/ledger"
	"github.com/circulib/lending-ledger-go/shared/shell"
)

// fakeStore implements removebook.Store with configurable behavior per call.
type fakeStore struct {
	getBook    func(ctx context.Context, bookID ledger.BookIDString) (ledger.Book, error)
	deleteBook func(ctx context.Context, bookID ledger.BookIDString) error

	deleteCalls int
}

func (s *fakeStore) GetBook(ctx context.Context, bookID ledger.BookIDString) (ledger.Book, error) {
	return s.getBook(ctx, bookID)
}

func (s *fakeStore) DeleteAvailableBook(ctx context.Context, bookID ledger.BookIDString) error {
	s.deleteCalls++
	return s.deleteBook(ctx, bookID)
}

func Test_Handle_Success_RemovesAvailableBook(t *testing.T) {
	// arrange
	bookID := uuid.New()

	store := &fakeStore{
		getBook: func(_ context.Context, id ledger.BookIDString) (ledger.Book, error) {
			return ledger.Book{BookID: id, Available: true}, nil
		},
		deleteBook: func(_ context.Context, _ ledger.BookIDString) error {
			return nil
		},
	}

	handler := removebook.NewCommandHandler(store)
	command := removebook.BuildCommand(bookID)

	// act
	result, err := handler.Handle(context.Background(), command)

	// assert
	require.NoError(t, err)
	assert.Equal(t, 1, result.RetryAttempts)
	assert.Equal(t, 1, store.deleteCalls)
}

func Test_Handle_Error_WhenBookDoesNotExist(t *testing.T) {
	// arrange
	store := &fakeStore{
		getBook: func(_ context.Context, _ ledger.BookIDString) (ledger.Book, error) {
			return ledger.Book{}, ledger.ErrBookNotFound
		},
	}

	handler := removebook.NewCommandHandler(store)
	command := removebook.BuildCommand(uuid.New())

	// act
	_, err := handler.Handle(context.Background(), command)

	// assert
	assert.ErrorIs(t, err, ledger.ErrBookNotFound)
	assert.Zero(t, store.deleteCalls)
}

func Test_Handle_Error_WhenBookHasAnOpenLoan(t *testing.T) {
	// arrange
	store := &fakeStore{
		getBook: func(_ context.Context, id ledger.BookIDString) (ledger.Book, error) {
			return ledger.Book{BookID: id, Available: false}, nil
		},
	}

	handler := removebook.NewCommandHandler(store)
	command := removebook.BuildCommand(uuid.New())

	// act
	_, err := handler.Handle(context.Background(), command)

	// assert
	assert.ErrorIs(t, err, ledger.ErrInvalidState)
	assert.Zero(t, store.deleteCalls)
}

func Test_Handle_RemoveRacingBorrow_ReportsInvalidState(t *testing.T) {
	// arrange - the delete is lost to a concurrent borrow; the reloaded
	// state then shows the book as lent out
	available := true

	store := &fakeStore{}
	store.getBook = func(_ context.Context, id ledger.BookIDString) (ledger.Book, error) {
		return ledger.Book{BookID: id, Available: available}, nil
	}
	store.deleteBook = func(_ context.Context, _ ledger.BookIDString) error {
		available = false // the concurrent borrower claimed the book
		return ledger.ErrConcurrencyConflict
	}

	handler := removebook.NewCommandHandler(
		store,
		removebook.WithRetryOptions(shell.WithBaseDelay(0), shell.WithJitterFactor(0)),
	)
	command := removebook.BuildCommand(uuid.New())

	// act
	result, err := handler.Handle(context.Background(), command)

	// assert - the book stays in the catalog with its open loan intact
	assert.ErrorIs(t, err, ledger.ErrInvalidState)
	assert.Equal(t, 2, result.RetryAttempts)
	assert.Equal(t, 1, store.deleteCalls, "Only the first attempt should reach the delete")
}
