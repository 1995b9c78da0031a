// Package expr implements the lazy expression tree: the node contract, rank and
// size inference, elementwise combinators and the structural operators.
//
// Every node is evaluated one coordinate at a time. Constructors validate the
// operand shapes once and cache the result; At and Emit never re-check.
package expr

import (
	"github.com/binbinmeng/MatX/internal/tensor"
	"github.com/pkg/errors"
)

// MaxRank is the highest rank any node can have.
const MaxRank = tensor.MaxRank

// Index holds the coordinates of one element. A node reads only the first
// Rank() entries, so lower-rank operands ignore trailing coordinates.
type Index = tensor.Index

// ErrUnknownOp is returned by Apply and Combine for names missing from the tables.
var ErrUnknownOp = errors.New("unknown operation")

// Shaped is implemented by every node: leaves, derived operators and emitters.
// Rank returns -1 for pure scalars.
type Shaped interface {
	Rank() int
	Size(dim int) int
}

// Operator is a node that produces a value per coordinate.
// *tensor.View[T] satisfies it directly.
type Operator[T any] interface {
	Shaped
	At(idx Index) T
}

// Emitter is a node with a write-capable evaluation path. Conditionals accept
// only emitters in their branches, which excludes raw views.
type Emitter interface {
	Shaped
	Emit(idx Index)
}

// Rank returns the rank of n, or -1 when n carries no shape.
func Rank(n Shaped) int {
	if n == nil {
		return -1
	}
	return n.Rank()
}

// ExpandedSize returns n's size at dim, or 0 when dim lies beyond n's rank.
// A zero result places no constraint on the dimension.
func ExpandedSize(n Shaped, dim int) int {
	if dim < Rank(n) {
		return n.Size(dim)
	}
	return 0
}

// ShapeOf returns the sizes of n as a tensor.Shape. Scalars have an empty shape.
func ShapeOf(n Shaped) tensor.Shape {
	r := max(Rank(n), 0)
	s := make(tensor.Shape, r)
	for i := range s {
		s[i] = n.Size(i)
	}
	return s
}

// Must panics if err is non-nil and returns n otherwise.
// It allows nested construction in places where sizes are known to agree:
//
//	sum := expr.Must(expr.Add[float32](a, expr.Must(expr.Mul[float32](b, c))))
func Must[N any](n N, err error) N {
	if err != nil {
		panic(err)
	}
	return n
}

// shape is the cached size vector embedded by every derived node.
type shape struct {
	rank int
	size [MaxRank]int
}

func shapeOf(n Shaped) shape {
	s := shape{rank: Rank(n)}
	for i := 0; i < s.rank; i++ {
		s.size[i] = n.Size(i)
	}
	return s
}

// Rank returns the node's rank.
func (s shape) Rank() int { return s.rank }

// Size returns the node's size along dim.
func (s shape) Size(dim int) int { return s.size[dim] }

// ScalarOp is a constant with no shape. It broadcasts against any operand.
type ScalarOp[T any] struct {
	v T
}

// Scalar wraps a constant value as a rank -1 node.
func Scalar[T any](v T) *ScalarOp[T] {
	return &ScalarOp[T]{v: v}
}

// Rank returns -1.
func (s *ScalarOp[T]) Rank() int { return -1 }

// Size returns 0 for every dimension.
func (s *ScalarOp[T]) Size(int) int { return 0 }

// At returns the constant.
func (s *ScalarOp[T]) At(Index) T { return s.v }

// SelfOp exposes a node through the read-only Operator contract.
// Wrapping a view in Self hides its Set method.
type SelfOp[T any] struct {
	shape
	in Operator[T]
}

// Self wraps in as a plain value-producing node.
func Self[T any](in Operator[T]) *SelfOp[T] {
	return &SelfOp[T]{shape: shapeOf(in), in: in}
}

// At returns in's value at idx.
func (s *SelfOp[T]) At(idx Index) T { return s.in.At(idx) }
