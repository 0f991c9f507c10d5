package addbook_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/circulib/lending-ledger-go/features/command/addbook"
	"github.com/circulib/lending-ledger-go/ledger"
)

func Test_Decide_Success_WhenBookDoesNotExist(t *testing.T) {
	// arrange
	bookID := uuid.New()
	state := addbook.State{}
	command := addbook.BuildCommand(bookID, "The Go Programming Language", "Donovan & Kernighan", "Programming")

	// act
	result := addbook.Decide(state, command)

	// assert
	assert.Equal(t, "success", result.Outcome, "Expected success decision")
	assert.NoError(t, result.HasError())
	assert.Equal(t, bookID.String(), result.Value.BookID)
	assert.Equal(t, "The Go Programming Language", result.Value.Title)
	assert.Equal(t, "Donovan & Kernighan", result.Value.Author)
	assert.Equal(t, "Programming", result.Value.Genre)
	assert.True(t, result.Value.Available, "A new book starts out available")
}

func Test_Decide_Idempotent_WhenBookAlreadyExists(t *testing.T) {
	// arrange
	bookID := uuid.New()
	existing := ledger.BuildBook(bookID, "The Go Programming Language", "Donovan & Kernighan", "Programming")

	state := addbook.State{BookExists: true, ExistingBook: existing}
	command := addbook.BuildCommand(bookID, "A Different Title", "A Different Author", "Fiction")

	// act
	result := addbook.Decide(state, command)

	// assert - repeating the add keeps the stored record untouched
	assert.Equal(t, "idempotent", result.Outcome, "Expected idempotent decision")
	assert.NoError(t, result.HasError())
	assert.Equal(t, existing, result.Value, "Idempotent decision should carry the existing record")
}
