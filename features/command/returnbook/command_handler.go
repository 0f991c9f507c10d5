package returnbook

import (
	"context"
	"errors"

	"github.com/circulib/lending-ledger-go/ledger"
	"github.com/circulib/lending-ledger-go/shared/shell"
)

// Store defines the interface needed by the CommandHandler for ledger store operations.
type Store interface {
	FindOpenLoan(ctx context.Context, userID ledger.UserIDString, bookID ledger.BookIDString) (ledger.Loan, error)
	CloseLoanAndReleaseBook(ctx context.Context, closedLoan ledger.Loan) error
}

// Result carries the business outcome of a return: the id of the closed loan
// and the fine fixed at close time, plus retry execution metadata.
type Result struct {
	LoanID ledger.LoanIDString
	Fine   int64
	shell.HandlerResult
}

// CommandHandler orchestrates the return workflow: Load -> Decide -> Close.
// Closing is one conditional SQL statement matching only while the loan is
// still open, so a loan can never be closed twice and its fine is fixed
// exactly once; a lost race is retried against fresh state.
type CommandHandler struct {
	store        Store
	clock        ledger.Clock
	schedule     ledger.FineSchedule
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
// The fine schedule is configuration, not a hardwired constant; pass
// ledger.DefaultFineSchedule() for the stock grace period and daily rate.
func NewCommandHandler(store Store, clock ledger.Clock, schedule ledger.FineSchedule, opts ...Option) CommandHandler {
	handler := CommandHandler{
		store:    store,
		clock:    clock,
		schedule: schedule,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle executes the complete return workflow with retry logic.
func (h CommandHandler) Handle(ctx context.Context, command Command) (Result, error) {
	var loanID ledger.LoanIDString
	var fine int64

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		id, closedFine, execErr := h.executeCommand(retryCtx, command)
		loanID = id
		fine = closedFine

		return execErr
	}, h.retryOptions...)

	if err != nil {
		return Result{HandlerResult: shell.NewErrorResult(retryMetrics)}, err
	}

	return Result{LoanID: loanID, Fine: fine, HandlerResult: shell.NewSuccessResult(retryMetrics)}, nil
}

// executeCommand contains the core return logic that can be retried.
func (h CommandHandler) executeCommand(ctx context.Context, command Command) (
	ledger.LoanIDString,
	int64,
	error,
) {

	// Load phase
	state, loadErr := h.loadState(ctx, command)
	if loadErr != nil {
		return "", 0, loadErr
	}

	// Business logic phase - delegate to the pure core function
	result := Decide(state, command, h.clock.Today(), h.schedule)

	if decideErr := result.HasError(); decideErr != nil {
		return "", 0, decideErr
	}

	// Close phase - one conditional statement, validated by rows affected
	closedLoan := result.Value

	if closeErr := h.store.CloseLoanAndReleaseBook(ctx, closedLoan); closeErr != nil {
		return "", 0, closeErr
	}

	return closedLoan.LoanID, closedLoan.Fine, nil
}

// loadState reads the snapshot the decision depends on.
func (h CommandHandler) loadState(ctx context.Context, command Command) (State, error) {
	ownLoan, loanErr := h.store.FindOpenLoan(ctx, command.UserID, command.BookID)
	switch {
	case loanErr == nil:
		return State{HasOwnOpenLoan: true, OwnOpenLoan: ownLoan}, nil
	case errors.Is(loanErr, ledger.ErrNoOpenLoan):
		return State{}, nil
	default:
		return State{}, loanErr
	}
}
