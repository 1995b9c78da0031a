package expr

// UnaryOp applies fn to every element of its operand.
type UnaryOp[T, R any] struct {
	shape
	in Operator[T]
	fn func(T) R
}

// Unary lifts fn over in. A single operand cannot disagree with itself, so
// there is nothing to validate.
func Unary[T, R any](in Operator[T], fn func(T) R) *UnaryOp[T, R] {
	return &UnaryOp[T, R]{shape: shapeOf(in), in: in, fn: fn}
}

// At returns fn(in[idx]).
func (o *UnaryOp[T, R]) At(idx Index) R {
	return o.fn(o.in.At(idx))
}

// BinaryOp applies fn to matching elements of two operands.
type BinaryOp[A, B, R any] struct {
	shape
	a  Operator[A]
	b  Operator[B]
	fn func(A, B) R
}

// Binary lifts fn over a and b. The output rank is the larger operand rank;
// sizes must agree wherever both operands define a dimension.
func Binary[A, B, R any](a Operator[A], b Operator[B], fn func(A, B) R) (*BinaryOp[A, B, R], error) {
	s, err := broadcast("binary", a, b)
	if err != nil {
		return nil, err
	}
	return &BinaryOp[A, B, R]{shape: s, a: a, b: b, fn: fn}, nil
}

// At returns fn(a[idx], b[idx]).
func (o *BinaryOp[A, B, R]) At(idx Index) R {
	return o.fn(o.a.At(idx), o.b.At(idx))
}
