package core

// DecisionResult represents the outcome of a business decision in a Decide
// function: a state change to apply, an idempotent no-op, or a business rule
// violation. T carries the feature's payload, e.g. the loan to open or the
// closed loan with its fine.
//
// Construct DecisionResults only through the provided factory functions.
type DecisionResult[T any] struct {
	Outcome string // "idempotent", "success", or "error"
	Value   T      // zero for error decisions
	Err     error  // nil unless the outcome is "error"
}

const (
	idempotentOutcome = "idempotent"
	successOutcome    = "success"
	errorOutcome      = "error"
)

// IdempotentDecision creates a DecisionResult indicating no state change is
// needed; the value describes the already-existing state.
func IdempotentDecision[T any](value T) DecisionResult[T] {
	return DecisionResult[T]{
		Outcome: idempotentOutcome,
		Value:   value,
	}
}

// SuccessDecision creates a DecisionResult carrying the state change to apply.
func SuccessDecision[T any](value T) DecisionResult[T] {
	return DecisionResult[T]{
		Outcome: successOutcome,
		Value:   value,
	}
}

// ErrorDecision creates a DecisionResult indicating a business rule violation.
func ErrorDecision[T any](err error) DecisionResult[T] {
	return DecisionResult[T]{
		Outcome: errorOutcome,
		Err:     err,
	}
}

// HasChangeToApply returns true if the decision carries a state change for the store.
func (r DecisionResult[T]) HasChangeToApply() bool {
	return r.Outcome == successOutcome
}

// IsIdempotent returns true if the decision is an idempotent no-op.
func (r DecisionResult[T]) IsIdempotent() bool {
	return r.Outcome == idempotentOutcome
}

// HasError returns the error if there is one, otherwise nil.
func (r DecisionResult[T]) HasError() error {
	if r.Outcome == errorOutcome {
		return r.Err
	}

	return nil
}
