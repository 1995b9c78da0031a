package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error taxonomy shared by descriptors, expression nodes and bulk transforms.
var (
	// ErrInvalidSize reports operand or destination sizes that disagree after
	// rank-lifting is applied.
	ErrInvalidSize = errors.New("invalid size")
	// ErrInvalidDim reports a dimension index or rank the operation cannot act on.
	ErrInvalidDim = errors.New("invalid dimension")
	// ErrUnsupportedLayout reports a memory layout an entry point cannot consume,
	// such as a non-linear transpose source.
	ErrUnsupportedLayout = errors.New("unsupported layout")
	// ErrReleased reports a view whose owning storage has already been released.
	ErrReleased = errors.New("storage released")
)

// ShapeError provides detailed information about a per-dimension validation failure.
type ShapeError struct {
	Op   string // Operation that rejected the shape (e.g. "binary", "copy")
	Dim  int    // Offending dimension
	Want int    // Expected size (0 when not applicable)
	Got  int    // Observed size
	Err  error  // Sentinel from the error taxonomy
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Want != 0 {
		return fmt.Sprintf("%s: dimension %d: size %d, want %d: %v", e.Op, e.Dim, e.Got, e.Want, e.Err)
	}
	return fmt.Sprintf("%s: dimension %d: size %d: %v", e.Op, e.Dim, e.Got, e.Err)
}

// Unwrap returns the sentinel so callers can use errors.Is.
func (e *ShapeError) Unwrap() error {
	return e.Err
}
