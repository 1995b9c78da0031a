package expr

import (
	"github.com/binbinmeng/MatX/internal/tensor"
	"github.com/pkg/errors"
)

// ShiftOp rotates coordinates with wraparound: along every shifted dimension d,
// coordinate c reads the operand at (base[d] + c) mod Size(d).
// Shift and the frequency-domain shifts are all built on it.
type ShiftOp[T any] struct {
	shape
	in   Operator[T]
	base [MaxRank]int
}

func newShiftOp[T any](in Operator[T]) *ShiftOp[T] {
	return &ShiftOp[T]{shape: shapeOf(in), in: in}
}

// At returns the rotated element.
func (o *ShiftOp[T]) At(idx Index) T {
	for d := 0; d < o.rank; d++ {
		if o.base[d] != 0 {
			idx[d] = (o.base[d] + idx[d]) % o.size[d]
		}
	}
	return o.in.At(idx)
}

// normalizeShift folds a signed shift into [0, n). An empty dimension has base 0.
func normalizeShift(s, n int) int {
	if n == 0 {
		return 0
	}
	return ((s % n) + n) % n
}

// Shift rotates in by s elements along dim. Element c of the result is element
// (c + s) mod Size(dim) of in, for any s including |s| > Size(dim).
func Shift[T any](in Operator[T], dim, s int) (*ShiftOp[T], error) {
	if dim < 0 || dim >= Rank(in) {
		return nil, errors.Wrapf(tensor.ErrInvalidDim, "shift: dimension %d of rank-%d operand", dim, Rank(in))
	}
	o := newShiftOp(in)
	o.base[dim] = normalizeShift(s, o.size[dim])
	return o, nil
}

// Shift0 shifts dimension 0.
func Shift0[T any](in Operator[T], s int) (*ShiftOp[T], error) { return Shift(in, 0, s) }

// Shift1 shifts dimension 1.
func Shift1[T any](in Operator[T], s int) (*ShiftOp[T], error) { return Shift(in, 1, s) }

// Shift2 shifts dimension 2.
func Shift2[T any](in Operator[T], s int) (*ShiftOp[T], error) { return Shift(in, 2, s) }

// Shift3 shifts dimension 3.
func Shift3[T any](in Operator[T], s int) (*ShiftOp[T], error) { return Shift(in, 3, s) }

func fftShift[T any](op string, in Operator[T], dims int, inverse bool) (*ShiftOp[T], error) {
	r := Rank(in)
	if r < 1 {
		return nil, errors.Wrapf(tensor.ErrInvalidDim, "%s: rank-%d operand", op, r)
	}
	o := newShiftOp(in)
	for d := max(r-dims, 0); d < r; d++ {
		n := o.size[d]
		if inverse {
			o.base[d] = normalizeShift(n/2, n)
		} else {
			o.base[d] = normalizeShift((n+1)/2, n)
		}
	}
	return o, nil
}

// FFTShift1D moves the zero-frequency bin of the last dimension to its centre.
func FFTShift1D[T any](in Operator[T]) (*ShiftOp[T], error) {
	return fftShift("fftshift1D", in, 1, false)
}

// FFTShift2D applies FFTShift1D to the last two dimensions. Leading dimensions
// are treated as a batch. A vector is shifted along its only dimension.
func FFTShift2D[T any](in Operator[T]) (*ShiftOp[T], error) {
	return fftShift("fftshift2D", in, 2, false)
}

// IFFTShift1D undoes FFTShift1D.
func IFFTShift1D[T any](in Operator[T]) (*ShiftOp[T], error) {
	return fftShift("ifftshift1D", in, 1, true)
}

// IFFTShift2D undoes FFTShift2D.
func IFFTShift2D[T any](in Operator[T]) (*ShiftOp[T], error) {
	return fftShift("ifftshift2D", in, 2, true)
}
