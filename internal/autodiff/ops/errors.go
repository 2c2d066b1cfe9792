package ops

import (
	"errors"
	"fmt"
)

// ErrDomain is matched by every *DomainError.
var ErrDomain = errors.New("operand outside function domain")

// DomainError reports an operand rejected by an operation.
type DomainError struct {
	Op      string  // Operation name (e.g. "ln")
	Operand float64 // Offending operand value
	Reason  string  // Human-readable constraint (e.g. "requires x > 0")
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s(%g): %s", e.Op, e.Operand, e.Reason)
}

// Is reports whether target is ErrDomain.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

func domainError(op string, operand float64, reason string) error {
	return &DomainError{Op: op, Operand: operand, Reason: reason}
}
