package tensor

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// MaxRank is the highest rank a descriptor or expression node can address.
const MaxRank = 4

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape is addressable: at most MaxRank dimensions,
// none of them negative, and an element count that fits in an int.
// Zero-sized dimensions are allowed.
func (s Shape) Validate() error {
	if len(s) > MaxRank {
		return errors.Wrapf(ErrInvalidDim, "rank %d exceeds maximum rank %d", len(s), MaxRank)
	}
	empty := false
	for i, dim := range s {
		if dim < 0 {
			return &ShapeError{Op: "shape", Dim: i, Got: dim, Err: ErrInvalidSize}
		}
		empty = empty || dim == 0
	}
	if empty {
		return nil
	}
	n := 1
	for i, dim := range s {
		if n > math.MaxInt/dim {
			return errors.Wrapf(&ShapeError{Op: "shape", Dim: i, Got: dim, Err: ErrInvalidSize},
				"element count of %v overflows int", s)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// String formats the shape as [d0 d1 ...].
func (s Shape) String() string {
	return fmt.Sprint([]int(s))
}
