// Package transform implements the bulk entry points that evaluate a whole
// tree into a destination: deep copy, transpose and permute.
//
// Every entry point validates eagerly. A validation failure is returned before
// anything is submitted, so a failed call never writes to the destination.
package transform

import (
	"github.com/binbinmeng/MatX/internal/expr"
	"github.com/binbinmeng/MatX/internal/stream"
	"github.com/binbinmeng/MatX/internal/tensor"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// checkAlive rejects views whose storage has been released.
func checkAlive(op string, views ...interface{ Alive() bool }) error {
	for _, v := range views {
		if !v.Alive() {
			return errors.Wrapf(tensor.ErrReleased, "%s", op)
		}
	}
	return nil
}

// sameData reports whether two views address exactly the same elements.
func sameData[T any](a, b *tensor.View[T]) bool {
	return a.Storage() == b.Storage() && a.Offset() == b.Offset() && a.Desc() == b.Desc()
}

// Copy evaluates in into out on s. Both must have the same rank and the same
// size in every dimension. Overlapping source and destination memory is not
// detected, except that copying a view onto itself does nothing.
func Copy[T any](out *tensor.View[T], in expr.Operator[T], s *stream.Stream) error {
	if err := checkAlive("copy", out); err != nil {
		return err
	}
	src, isView := in.(*tensor.View[T])
	if isView {
		if err := checkAlive("copy", src); err != nil {
			return err
		}
	}
	if expr.Rank(in) != out.Rank() {
		return errors.Wrapf(tensor.ErrInvalidSize, "copy: rank-%d source into rank-%d destination", expr.Rank(in), out.Rank())
	}

	var err error
	for d := 0; d < out.Rank(); d++ {
		if in.Size(d) != out.Size(d) {
			err = multierr.Append(err, &tensor.ShapeError{
				Op: "copy", Dim: d, Want: out.Size(d), Got: in.Size(d), Err: tensor.ErrInvalidSize,
			})
		}
	}
	if err != nil {
		return err
	}
	if isView && sameData(out, src) {
		return nil
	}

	assign, err := expr.Set(out, in)
	if err != nil {
		return err
	}
	return s.Evaluate(assign)
}

// Permute copies in into out with dimensions reordered: dimension i of out
// is dimension dims[i] of in. The reordering is a stride remap of in followed
// by an element-wise Copy, so it is slower than Transpose.
func Permute[T any](out, in *tensor.View[T], dims []int, s *stream.Stream) error {
	if err := checkAlive("permute", out, in); err != nil {
		return err
	}
	p, err := in.Permute(dims)
	if err != nil {
		return err
	}
	return Copy(out, expr.Operator[T](p), s)
}
