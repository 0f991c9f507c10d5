package addbook_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/circulib/lending-ledger-go/features/command/addbook"
	"github.com/circulib/lending-ledger-go/ledger"
)

// fakeStore implements addbook.Store with configurable behavior per call.
type fakeStore struct {
	getBook func(ctx context.Context, bookID ledger.BookIDString) (ledger.Book, error)
	insert  func(ctx context.Context, book ledger.Book) error

	insertedBooks []ledger.Book
}

func (s *fakeStore) GetBook(ctx context.Context, bookID ledger.BookIDString) (ledger.Book, error) {
	return s.getBook(ctx, bookID)
}

func (s *fakeStore) InsertBook(ctx context.Context, book ledger.Book) error {
	s.insertedBooks = append(s.insertedBooks, book)
	return s.insert(ctx, book)
}

func Test_Handle_Success_InsertsNewBook(t *testing.T) {
	// arrange
	bookID := uuid.New()

	store := &fakeStore{
		getBook: func(_ context.Context, _ ledger.BookIDString) (ledger.Book, error) {
			return ledger.Book{}, ledger.ErrBookNotFound
		},
		insert: func(_ context.Context, _ ledger.Book) error {
			return nil
		},
	}

	handler := addbook.NewCommandHandler(store)
	command := addbook.BuildCommand(bookID, "Some Title", "Some Author", "Some Genre")

	// act
	result, err := handler.Handle(context.Background(), command)

	// assert
	require.NoError(t, err)
	assert.False(t, result.Idempotent)

	require.Len(t, store.insertedBooks, 1)
	inserted := store.insertedBooks[0]
	assert.Equal(t, bookID.String(), inserted.BookID)
	assert.True(t, inserted.Available)
}

func Test_Handle_Idempotent_WhenBookAlreadyExists(t *testing.T) {
	// arrange
	bookID := uuid.New()
	existing := ledger.BuildBook(bookID, "Some Title", "Some Author", "Some Genre")

	store := &fakeStore{
		getBook: func(_ context.Context, _ ledger.BookIDString) (ledger.Book, error) {
			return existing, nil
		},
		insert: func(_ context.Context, _ ledger.Book) error {
			t.Fatal("insert must not be called for an idempotent add")
			return nil
		},
	}

	handler := addbook.NewCommandHandler(store)
	command := addbook.BuildCommand(bookID, "Some Title", "Some Author", "Some Genre")

	// act
	result, err := handler.Handle(context.Background(), command)

	// assert
	require.NoError(t, err)
	assert.True(t, result.Idempotent)
	assert.Empty(t, store.insertedBooks)
}
