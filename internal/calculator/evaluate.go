package calculator

import (
	"fmt"
	"math"
)

// Supported operation names. sqrt and cubic are unary; the rest are binary.
const (
	OpAdd      = "add"
	OpSubtract = "subtract"
	OpMultiply = "multiply"
	OpDivide   = "divide"
	OpPower    = "power"
	OpSqrt     = "sqrt"
	OpAbsDiff  = "abs_diff"
	OpCubic    = "cubic"
)

// Evaluate computes a single arithmetic operation. The second operand is
// required for binary operations and must be absent for unary ones. Operands
// and the result must be finite; the result is rounded to 8 decimal places so
// stored and compared values are free of floating-point noise.
func Evaluate(operation string, a float64, b *float64) (float64, error) {
	if !isFinite(a) {
		return 0, fmt.Errorf("%w: first operand must be a finite number", ErrInvalidOperand)
	}
	if b != nil && !isFinite(*b) {
		return 0, fmt.Errorf("%w: second operand must be a finite number", ErrInvalidOperand)
	}

	var result float64
	switch operation {
	case OpAdd:
		if b == nil {
			return 0, errMissingOperand(operation)
		}
		result = a + *b
	case OpSubtract:
		if b == nil {
			return 0, errMissingOperand(operation)
		}
		result = a - *b
	case OpMultiply:
		if b == nil {
			return 0, errMissingOperand(operation)
		}
		result = a * *b
	case OpDivide:
		if b == nil {
			return 0, errMissingOperand(operation)
		}
		if *b == 0 {
			return 0, fmt.Errorf("%w: division by zero is not allowed", ErrInvalidOperand)
		}
		result = a / *b
	case OpPower:
		if b == nil {
			return 0, errMissingOperand(operation)
		}
		result = math.Pow(a, *b)
	case OpSqrt:
		if b != nil {
			return 0, errUnexpectedOperand(operation)
		}
		if a < 0 {
			return 0, fmt.Errorf("%w: cannot calculate square root of negative number", ErrInvalidOperand)
		}
		result = math.Sqrt(a)
	case OpAbsDiff:
		if b == nil {
			return 0, errMissingOperand(operation)
		}
		result = math.Abs(a - *b)
	case OpCubic:
		if b != nil {
			return 0, errUnexpectedOperand(operation)
		}
		result = math.Pow(a, 3)
	default:
		return 0, fmt.Errorf("%w: %s", ErrInvalidOperation, operation)
	}

	// Overflow (power) or domain errors produce NaN/Inf, which the history
	// table must never hold.
	if !isFinite(result) {
		return 0, fmt.Errorf("%w: result is not a finite number", ErrInvalidOperand)
	}
	return round8(result), nil
}

func errMissingOperand(operation string) error {
	return fmt.Errorf("%w: second operand is required for %s", ErrInvalidOperand, operation)
}

func errUnexpectedOperand(operation string) error {
	return fmt.Errorf("%w: second operand is not allowed for %s", ErrInvalidOperand, operation)
}

// round8 rounds to 8 decimal places, e.g. 1/3 -> 0.33333333.
func round8(v float64) float64 {
	return math.Round(v*1e8) / 1e8
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
