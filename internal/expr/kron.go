package expr

import (
	"github.com/binbinmeng/MatX/internal/scalar"
	"github.com/binbinmeng/MatX/internal/tensor"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// KronOp is the Kronecker product of the last two dimensions of two operands.
// Leading dimensions are a batch shared by both operands.
type KronOp[T scalar.Number] struct {
	shape
	a, b Operator[T]
}

// Kron returns the Kronecker product of a and b. Both operands must have the
// same rank between 2 and 4 and identical batch sizes. Along the last two
// dimensions the result size is Size_a(d) * Size_b(d).
func Kron[T scalar.Number](a, b Operator[T]) (*KronOp[T], error) {
	if err := requireRank("kron", a, 2, MaxRank); err != nil {
		return nil, err
	}
	if Rank(a) != Rank(b) {
		return nil, errors.Wrapf(tensor.ErrInvalidDim, "kron: operand ranks %d and %d differ", Rank(a), Rank(b))
	}

	r := Rank(a)
	o := &KronOp[T]{a: a, b: b, shape: shape{rank: r}}
	var err error
	for d := 0; d < r-2; d++ {
		if a.Size(d) != b.Size(d) {
			err = multierr.Append(err, &tensor.ShapeError{
				Op: "kron", Dim: d, Want: a.Size(d), Got: b.Size(d), Err: tensor.ErrInvalidSize,
			})
		}
		o.size[d] = a.Size(d)
	}
	if err != nil {
		return nil, err
	}
	for d := r - 2; d < r; d++ {
		o.size[d] = a.Size(d) * b.Size(d)
	}
	return o, nil
}

// At returns a[c / Size_b] * b[c % Size_b] along the combined dimensions.
func (o *KronOp[T]) At(idx Index) T {
	ia, ib := idx, idx
	for d := o.rank - 2; d < o.rank; d++ {
		n := o.b.Size(d)
		ia[d] = idx[d] / n
		ib[d] = idx[d] % n
	}
	return o.a.At(ia) * o.b.At(ib)
}
