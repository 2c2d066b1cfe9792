package autodiff

import (
	"errors"
	"fmt"

	"github.com/born-ml/quantad/internal/autodiff/ops"
)

// Common errors.
var (
	ErrMismatchedGraph = errors.New("operands belong to different graphs")
	ErrDomain          = ops.ErrDomain
	ErrIndexOutOfRange = errors.New("variable index out of range")
	ErrInvalidHandle   = errors.New("invalid or stale variable handle")
)

// OpError records the tape operation that failed and why.
type OpError struct {
	Op    string // Operation name (e.g. "div", "accumulate", "wrt")
	Index int    // Offending node index, -1 if not applicable
	Err   error  // Underlying error, matches one of the sentinels above
}

// Error implements the error interface.
func (e *OpError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("autodiff: %s: node %d: %v", e.Op, e.Index, e.Err)
	}
	return fmt.Sprintf("autodiff: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *OpError) Unwrap() error {
	return e.Err
}

func opError(op string, index int, err error) error {
	return &OpError{Op: op, Index: index, Err: err}
}
