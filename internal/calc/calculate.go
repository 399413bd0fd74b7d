package calc

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shinji-kodama/beginner-cli/internal/model"
)

// ErrDivisionByZero is returned when dividing by exactly zero.
var ErrDivisionByZero = errors.New("division by zero is not allowed")

// InvalidOperationError reports an operator outside "+", "-", "*", "/".
type InvalidOperationError struct {
	Op string
}

func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("invalid operation: '%s'", e.Op)
}

// Calculate applies op to a and b. The divide-by-zero check runs before
// any arithmetic, so a zero divisor never produces Inf or NaN.
func Calculate(a, b float64, op string) (float64, error) {
	if model.Operation(op) == model.OpDivide && b == 0 {
		return 0, ErrDivisionByZero
	}

	switch model.Operation(op) {
	case model.OpAdd:
		return a + b, nil
	case model.OpSubtract:
		return a - b, nil
	case model.OpMultiply:
		return a * b, nil
	case model.OpDivide:
		return a / b, nil
	default:
		return 0, &InvalidOperationError{Op: op}
	}
}

// FormatResult renders v with the fewest digits that round-trip, so whole
// numbers print without a fractional part.
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
