package expr

import (
	"github.com/binbinmeng/MatX/internal/tensor"
	"github.com/pkg/errors"
)

// RepMatOp tiles its operand: every coordinate wraps modulo the operand size.
type RepMatOp[T any] struct {
	shape
	in Operator[T]
}

// RepMat repeats in reps times along every dimension.
func RepMat[T any](in Operator[T], reps int) (*RepMatOp[T], error) {
	all := make([]int, max(Rank(in), 0))
	for i := range all {
		all[i] = reps
	}
	return RepMatDims(in, all)
}

// RepMatDims repeats in reps[d] times along dimension d. One count is needed
// per dimension and every count must be at least 1.
func RepMatDims[T any](in Operator[T], reps []int) (*RepMatOp[T], error) {
	r := max(Rank(in), 0)
	if len(reps) != r {
		return nil, errors.Wrapf(tensor.ErrInvalidDim, "repmat: %d repeat counts for rank-%d operand", len(reps), Rank(in))
	}

	o := &RepMatOp[T]{in: in, shape: shapeOf(in)}
	for d, n := range reps {
		if n < 1 {
			return nil, &tensor.ShapeError{Op: "repmat", Dim: d, Got: n, Err: tensor.ErrInvalidSize}
		}
		o.size[d] *= n
	}
	return o, nil
}

// At returns in[idx mod Size_in].
func (o *RepMatOp[T]) At(idx Index) T {
	for d := 0; d < o.rank; d++ {
		idx[d] %= o.in.Size(d)
	}
	return o.in.At(idx)
}
