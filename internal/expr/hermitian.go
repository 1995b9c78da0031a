package expr

import "github.com/binbinmeng/MatX/internal/scalar"

// HermitianOp is the conjugate transpose of its operand: coordinates are read
// in reverse order and every value is conjugated.
type HermitianOp[T scalar.Elem] struct {
	shape
	in Operator[T]
}

// HermitianT returns the conjugate transpose of in. Scalars and vectors are
// only conjugated.
func HermitianT[T scalar.Elem](in Operator[T]) *HermitianOp[T] {
	o := &HermitianOp[T]{in: in, shape: shape{rank: Rank(in)}}
	for d := 0; d < o.rank; d++ {
		o.size[d] = in.Size(o.rank - d - 1)
	}
	return o
}

// At returns conj(in[reversed idx]).
func (o *HermitianOp[T]) At(idx Index) T {
	var src Index
	for d := 0; d < o.rank; d++ {
		src[d] = idx[o.rank-d-1]
	}
	return scalar.Conj(o.in.At(src))
}
