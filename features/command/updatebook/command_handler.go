package updatebook

import (
	"context"
	"errors"

	"github.com/circulib/lending-ledger-go/ledger"
	"github.com/circulib/lending-ledger-go/shared/shell"
)

// Store defines the interface needed by the CommandHandler for ledger store operations.
type Store interface {
	GetBook(ctx context.Context, bookID ledger.BookIDString) (ledger.Book, error)
	UpdateBookMetadata(ctx context.Context, book ledger.Book) error
}

// CommandHandler orchestrates the update-book workflow: Load -> Decide -> Update.
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

// Handle executes the complete update-book workflow.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.HandlerResult, error) {
	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		return h.executeCommand(retryCtx, command)
	}, h.retryOptions...)

	if err != nil {
		return shell.NewErrorResult(retryMetrics), err
	}

	return shell.NewSuccessResult(retryMetrics), nil
}

// executeCommand contains the core update-book logic.
func (h CommandHandler) executeCommand(ctx context.Context, command Command) error {
	state := State{}

	existing, getErr := h.store.GetBook(ctx, command.BookID)
	switch {
	case getErr == nil:
		state.BookExists = true
		state.ExistingBook = existing
	case errors.Is(getErr, ledger.ErrBookNotFound):
		// decided below, not a storage failure
	default:
		return getErr
	}

	result := Decide(state, command)

	if decideErr := result.HasError(); decideErr != nil {
		return decideErr
	}

	return h.store.UpdateBookMetadata(ctx, result.Value)
}
