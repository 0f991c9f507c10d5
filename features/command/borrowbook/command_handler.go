package borrowbook

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/circulib/lending-ledger-go/ledger"
	"github.com/circulib/lending-ledger-go/shared/shell"
)

// Store defines the interface needed by the CommandHandler for ledger store operations.
type Store interface {
	GetBook(ctx context.Context, bookID ledger.BookIDString) (ledger.Book, error)
	FindOpenLoan(ctx context.Context, userID ledger.UserIDString, bookID ledger.BookIDString) (ledger.Loan, error)
	ClaimBookAndOpenLoan(ctx context.Context, loan ledger.Loan) error
}

// Result carries the business outcome of a borrow: the id of the opened (or
// already held) loan, plus retry execution metadata.
type Result struct {
	LoanID ledger.LoanIDString
	shell.HandlerResult
}

// CommandHandler orchestrates the borrow workflow: Load -> Decide -> Claim.
// The claim is one conditional SQL statement, so two concurrent borrows of
// the same book can never both succeed; the loser observes a concurrency
// conflict and the whole unit is retried against fresh state.
type CommandHandler struct {
	store        Store
	clock        ledger.Clock
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
func NewCommandHandler(store Store, clock ledger.Clock, opts ...Option) CommandHandler {
	handler := CommandHandler{
		store: store,
		clock: clock,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle executes the complete borrow workflow with retry logic.
// It delegates the business decision to Decide and retries the
// load/decide/claim unit with exponential backoff on concurrency conflicts.
func (h CommandHandler) Handle(ctx context.Context, command Command) (Result, error) {
	var loanID ledger.LoanIDString
	var isIdempotent bool

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		id, idempotent, execErr := h.executeCommand(retryCtx, command)
		loanID = id
		isIdempotent = idempotent

		return execErr
	}, h.retryOptions...)

	if isIdempotent {
		return Result{LoanID: loanID, HandlerResult: shell.NewIdempotentResult(retryMetrics)}, err
	}

	if err != nil {
		return Result{HandlerResult: shell.NewErrorResult(retryMetrics)}, err
	}

	return Result{LoanID: loanID, HandlerResult: shell.NewSuccessResult(retryMetrics)}, nil
}

// executeCommand contains the core borrow logic that can be retried.
func (h CommandHandler) executeCommand(ctx context.Context, command Command) (
	ledger.LoanIDString,
	bool,
	error,
) {

	// Load phase
	state, loadErr := h.loadState(ctx, command)
	if loadErr != nil {
		return "", false, loadErr
	}

	// Business logic phase - delegate to the pure core function
	result := Decide(state, command, h.clock.Today())

	if result.IsIdempotent() {
		return result.Value.LoanID, true, nil
	}

	if decideErr := result.HasError(); decideErr != nil {
		return "", false, decideErr
	}

	// Claim phase - one conditional statement, validated by rows affected
	loan := result.Value
	loan.LoanID = uuid.New().String()

	if claimErr := h.store.ClaimBookAndOpenLoan(ctx, loan); claimErr != nil {
		return "", false, claimErr
	}

	return loan.LoanID, false, nil
}

// loadState reads the snapshot the decision depends on.
func (h CommandHandler) loadState(ctx context.Context, command Command) (State, error) {
	state := State{}

	book, bookErr := h.store.GetBook(ctx, command.BookID)
	switch {
	case bookErr == nil:
		state.BookExists = true
		state.BookAvailable = book.Available
	case errors.Is(bookErr, ledger.ErrBookNotFound):
		// decided below, not a storage failure
	default:
		return State{}, bookErr
	}

	ownLoan, loanErr := h.store.FindOpenLoan(ctx, command.UserID, command.BookID)
	switch {
	case loanErr == nil:
		state.HasOwnOpenLoan = true
		state.OwnOpenLoan = ownLoan
	case errors.Is(loanErr, ledger.ErrNoOpenLoan):
		// no open loan held by this user
	default:
		return State{}, loanErr
	}

	return state, nil
}
