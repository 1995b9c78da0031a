package expr

import (
	"github.com/binbinmeng/MatX/internal/tensor"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// broadcast computes the output shape of a node combining operands.
// The output rank is the largest operand rank. At each dimension the size is
// the maximum ExpandedSize, and every non-zero candidate must equal it:
// missing dimensions are lifted, unequal sizes are rejected.
// All mismatching dimensions are reported together.
func broadcast(op string, operands ...Shaped) (shape, error) {
	s := shape{rank: -1}
	for _, n := range operands {
		s.rank = max(s.rank, Rank(n))
	}

	var err error
	for d := 0; d < s.rank; d++ {
		for _, n := range operands {
			s.size[d] = max(s.size[d], ExpandedSize(n, d))
		}
		for _, n := range operands {
			if got := ExpandedSize(n, d); got != 0 && got != s.size[d] {
				err = multierr.Append(err, &tensor.ShapeError{
					Op: op, Dim: d, Want: s.size[d], Got: got, Err: tensor.ErrInvalidSize,
				})
			}
		}
	}
	if err != nil {
		return shape{}, err
	}
	return s, nil
}

// requireRank checks that n has a rank in [lo, hi].
func requireRank(op string, n Shaped, lo, hi int) error {
	if r := Rank(n); r < lo || r > hi {
		return errors.Wrapf(tensor.ErrInvalidDim, "%s: rank %d outside [%d, %d]", op, r, lo, hi)
	}
	return nil
}
