package removebook_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/circulib/lending-ledger-go/features/command/removebook"
	"github.com/circulib/lending-ledger-go/ledger"
)

func Test_Decide_Success_WhenBookIsAvailable(t *testing.T) {
	// arrange
	bookID := uuid.New()
	state := removebook.State{BookExists: true, BookAvailable: true}
	command := removebook.BuildCommand(bookID)

	// act
	result := removebook.Decide(state, command)

	// assert
	assert.Equal(t, "success", result.Outcome, "Expected success decision")
	assert.NoError(t, result.HasError())
	assert.Equal(t, bookID.String(), result.Value)
}

func Test_Decide_Error_WhenBookDoesNotExist(t *testing.T) {
	// arrange
	state := removebook.State{}
	command := removebook.BuildCommand(uuid.New())

	// act
	result := removebook.Decide(state, command)

	// assert
	assert.Equal(t, "error", result.Outcome, "Expected error decision")
	assert.ErrorIs(t, result.HasError(), ledger.ErrBookNotFound)
}

func Test_Decide_Error_WhenBookHasAnOpenLoan(t *testing.T) {
	// arrange
	state := removebook.State{BookExists: true, BookAvailable: false}
	command := removebook.BuildCommand(uuid.New())

	// act
	result := removebook.Decide(state, command)

	// assert - a lent out book must be returned before it can be removed
	assert.Equal(t, "error", result.Outcome, "Expected error decision")
	assert.ErrorIs(t, result.HasError(), ledger.ErrInvalidState)
}
