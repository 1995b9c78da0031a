package expr

import (
	"github.com/binbinmeng/MatX/internal/tensor"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// SetOp assigns an expression into a destination view, one coordinate at a time.
type SetOp[T any] struct {
	shape
	dst *tensor.View[T]
	src Operator[T]
}

// Set builds the assignment dst = src. The destination fixes the shape: src
// may be of lower rank, but every size it defines must match dst.
func Set[T any](dst *tensor.View[T], src Operator[T]) (*SetOp[T], error) {
	if Rank(src) > dst.Rank() {
		return nil, errors.Wrapf(tensor.ErrInvalidSize, "set: rank-%d source into rank-%d destination", Rank(src), dst.Rank())
	}
	var err error
	for d := 0; d < Rank(src); d++ {
		if src.Size(d) != dst.Size(d) {
			err = multierr.Append(err, &tensor.ShapeError{
				Op: "set", Dim: d, Want: dst.Size(d), Got: src.Size(d), Err: tensor.ErrInvalidSize,
			})
		}
	}
	if err != nil {
		return nil, err
	}
	return &SetOp[T]{shape: shapeOf(dst), dst: dst, src: src}, nil
}

// Dst returns the destination view.
func (o *SetOp[T]) Dst() *tensor.View[T] { return o.dst }

// Emit writes src[idx] into dst[idx].
func (o *SetOp[T]) Emit(idx Index) {
	o.dst.Set(idx, o.src.At(idx))
}

// At writes src[idx] into dst[idx] and returns the written value.
func (o *SetOp[T]) At(idx Index) T {
	v := o.src.At(idx)
	o.dst.Set(idx, v)
	return v
}
