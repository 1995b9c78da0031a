package expr

import (
	"github.com/binbinmeng/MatX/internal/tensor"
	"github.com/pkg/errors"
)

// ReverseOp reads its operand back to front along one dimension.
type ReverseOp[T any] struct {
	shape
	in  Operator[T]
	dim int
}

// Reverse maps coordinate c along dim to Size(dim)-c-1.
func Reverse[T any](in Operator[T], dim int) (*ReverseOp[T], error) {
	if dim < 0 || dim >= Rank(in) {
		return nil, errors.Wrapf(tensor.ErrInvalidDim, "reverse: dimension %d of rank-%d operand", dim, Rank(in))
	}
	return &ReverseOp[T]{shape: shapeOf(in), in: in, dim: dim}, nil
}

// At returns the mirrored element.
func (o *ReverseOp[T]) At(idx Index) T {
	idx[o.dim] = o.size[o.dim] - idx[o.dim] - 1
	return o.in.At(idx)
}

// ReverseX reverses the last dimension.
func ReverseX[T any](in Operator[T]) (*ReverseOp[T], error) { return Reverse(in, Rank(in)-1) }

// ReverseY reverses the second-to-last dimension.
func ReverseY[T any](in Operator[T]) (*ReverseOp[T], error) { return Reverse(in, Rank(in)-2) }

// ReverseZ reverses the third-to-last dimension.
func ReverseZ[T any](in Operator[T]) (*ReverseOp[T], error) { return Reverse(in, Rank(in)-3) }

// ReverseW reverses the fourth-to-last dimension.
func ReverseW[T any](in Operator[T]) (*ReverseOp[T], error) { return Reverse(in, Rank(in)-4) }

// FlipUD flips rows: the second-to-last dimension, or the only one of a vector.
func FlipUD[T any](in Operator[T]) (*ReverseOp[T], error) {
	if Rank(in) == 1 {
		return Reverse(in, 0)
	}
	return Reverse(in, Rank(in)-2)
}

// FlipLR flips columns: the last dimension.
func FlipLR[T any](in Operator[T]) (*ReverseOp[T], error) { return Reverse(in, Rank(in)-1) }
