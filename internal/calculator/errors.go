package calculator

import "errors"

// Validation failures surfaced to the caller. Both map to HTTP 400; storage
// failures never surface from Calculate (history is best-effort).
var (
	// ErrInvalidOperation marks an operation name outside the supported set.
	ErrInvalidOperation = errors.New("unsupported operation")

	// ErrInvalidOperand marks a missing or non-finite operand, or a violated
	// operation precondition such as division by zero.
	ErrInvalidOperand = errors.New("invalid operand")
)
