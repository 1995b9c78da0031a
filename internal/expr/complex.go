package expr

import (
	"github.com/binbinmeng/MatX/internal/tensor"
	"github.com/pkg/errors"
)

// Cplx lists the complex element types a planar layout can be taken from.
type Cplx interface {
	complex64 | complex128
}

// Flt lists the real element types an interleaved layout can be built from.
type Flt interface {
	float32 | float64
}

// splitDim is the dimension a layout conversion doubles or halves: the last
// one for vectors and matrices, the second-to-last for batched ranks 3 and 4.
func splitDim(rank int) int {
	if rank <= 2 {
		return rank - 1
	}
	return rank - 2
}

// PlanarOp views a complex operand as real planes: the first half of the split
// dimension holds real parts, the second half imaginary parts.
type PlanarOp[C Cplx, R Flt] struct {
	shape
	in  Operator[C]
	dim int
	n   int
}

// Planar converts a complex operand to planar real layout. R selects the real
// element type, so callers write expr.Planar[float32](z).
func Planar[R Flt, C Cplx](in Operator[C]) (*PlanarOp[C, R], error) {
	if err := requireRank("planar", in, 1, MaxRank); err != nil {
		return nil, err
	}
	o := &PlanarOp[C, R]{in: in, shape: shapeOf(in), dim: splitDim(Rank(in))}
	o.n = o.size[o.dim]
	o.size[o.dim] *= 2
	return o, nil
}

// At returns the real or imaginary part selected by the split coordinate.
func (o *PlanarOp[C, R]) At(idx Index) R {
	if idx[o.dim] >= o.n {
		idx[o.dim] -= o.n
		return R(imag(complex128(o.in.At(idx))))
	}
	return R(real(complex128(o.in.At(idx))))
}

// InterleavedOp rebuilds complex values from a planar real operand.
type InterleavedOp[R Flt, C Cplx] struct {
	shape
	in   Operator[R]
	dim  int
	half int
}

// Interleaved converts a planar real operand back to complex values. The split
// dimension must have even size. C selects the complex element type, so callers
// write expr.Interleaved[complex64](p).
func Interleaved[C Cplx, R Flt](in Operator[R]) (*InterleavedOp[R, C], error) {
	if err := requireRank("interleaved", in, 1, MaxRank); err != nil {
		return nil, err
	}
	o := &InterleavedOp[R, C]{in: in, shape: shapeOf(in), dim: splitDim(Rank(in))}
	if n := o.size[o.dim]; n%2 != 0 {
		return nil, errors.Wrapf(tensor.ErrInvalidSize, "interleaved: odd size %d in dimension %d", n, o.dim)
	}
	o.half = o.size[o.dim] / 2
	o.size[o.dim] = o.half
	return o, nil
}

// At combines the real part at idx with the imaginary part half an extent later.
func (o *InterleavedOp[R, C]) At(idx Index) C {
	re := o.in.At(idx)
	idx[o.dim] += o.half
	im := o.in.At(idx)
	return C(complex(float64(re), float64(im)))
}
