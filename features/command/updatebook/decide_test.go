package updatebook_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/circulib/lending-ledger-go/features/command/updatebook"
	"github.com/circulib/lending-ledger-go/ledger"
)

func Test_Decide_Success_UpdatesMetadataOnly(t *testing.T) {
	// arrange
	bookID := uuid.New()
	existing := ledger.BuildBook(bookID, "Old Title", "Old Author", "Old Genre")
	existing.Available = false // lent out right now

	state := updatebook.State{BookExists: true, ExistingBook: existing}
	command := updatebook.BuildCommand(bookID, "New Title", "New Author", "New Genre")

	// act
	result := updatebook.Decide(state, command)

	// assert - metadata changes, availability stays owned by the ledger
	assert.Equal(t, "success", result.Outcome, "Expected success decision")
	assert.NoError(t, result.HasError())
	assert.Equal(t, "New Title", result.Value.Title)
	assert.Equal(t, "New Author", result.Value.Author)
	assert.Equal(t, "New Genre", result.Value.Genre)
	assert.False(t, result.Value.Available, "Editing metadata must not touch availability")
}

func Test_Decide_Error_WhenBookDoesNotExist(t *testing.T) {
	// arrange
	state := updatebook.State{}
	command := updatebook.BuildCommand(uuid.New(), "New Title", "New Author", "New Genre")

	// act
	result := updatebook.Decide(state, command)

	// assert
	assert.Equal(t, "error", result.Outcome, "Expected error decision")
	assert.ErrorIs(t, result.HasError(), ledger.ErrBookNotFound)
}
