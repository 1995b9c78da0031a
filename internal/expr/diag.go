package expr

// DiagOp selects the diagonal of the last two dimensions of its operand.
// Leading dimensions pass through as a batch.
type DiagOp[T any] struct {
	shape
	in Operator[T]
}

// Diag returns the diagonal of a rank 2 to 4 operand. The result has one
// dimension less; its last size is the smaller of the operand's last two sizes.
func Diag[T any](in Operator[T]) (*DiagOp[T], error) {
	if err := requireRank("diag", in, 2, MaxRank); err != nil {
		return nil, err
	}
	r := Rank(in)
	o := &DiagOp[T]{in: in, shape: shape{rank: r - 1}}
	for d := 0; d < r-2; d++ {
		o.size[d] = in.Size(d)
	}
	o.size[r-2] = min(in.Size(r-1), in.Size(r-2))
	return o, nil
}

// At returns in[batch..., c, c] where c is the last coordinate of idx.
func (o *DiagOp[T]) At(idx Index) T {
	idx[o.rank] = idx[o.rank-1]
	return o.in.At(idx)
}
