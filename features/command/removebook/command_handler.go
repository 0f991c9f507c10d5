package removebook

import (
	"context"
	"errors"

	"github.com/circulib/lending-ledger-go/ledger"
	"github.com/circulib/lending-ledger-go/shared/shell"
)

// Store defines the interface needed by the CommandHandler for ledger store operations.
type Store interface {
	GetBook(ctx context.Context, bookID ledger.BookIDString) (ledger.Book, error)
	DeleteAvailableBook(ctx context.Context, bookID ledger.BookIDString) error
}

// CommandHandler orchestrates the remove-book workflow: Load -> Decide -> Delete.
// The delete is guarded on the availability flag, so a borrow racing the
// delete can never leave an open loan on a vanished book; the loser observes
// a concurrency conflict and the unit is retried against fresh state, which
// then reports ledger.ErrInvalidState.
type CommandHandler struct {
	store        Store
	retryOptions []shell.RetryOption
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithRetryOptions sets a custom retry configuration for the handler.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(store Store, opts ...Option) CommandHandler {
	handler := CommandHandler{store: store}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle executes the complete remove-book workflow with retry logic.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		return h.executeCommand(retryCtx, command)
	}, h.retryOptions...)

	if err != nil {
		return shell.NewErrorResult(retryMetrics), err
	}

	return shell.NewSuccessResult(retryMetrics), nil
}

// executeCommand contains the core remove-book logic that can be retried.
func (h CommandHandler) executeCommand(ctx context.Context, command Command) error {
	state := State{}

	book, getErr := h.store.GetBook(ctx, command.BookID)
	switch {
	case getErr == nil:
		state.BookExists = true
		state.BookAvailable = book.Available
	case errors.Is(getErr, ledger.ErrBookNotFound):
		// decided below, not a storage failure
	default:
		return getErr
	}

	result := Decide(state, command)

	if decideErr := result.HasError(); decideErr != nil {
		return decideErr
	}

	return h.store.DeleteAvailableBook(ctx, result.Value)
}
