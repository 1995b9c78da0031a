package expr

import (
	"github.com/binbinmeng/MatX/internal/tensor"
	"github.com/pkg/errors"
)

// ChainOp sequences two expressions: per coordinate the first is emitted, then
// the second is evaluated and its value returned.
type ChainOp[T any] struct {
	shape
	first  Emitter
	second Operator[T]
	emit   Emitter // second, when it can also emit
}

// Chain sequences first and second. Both must have the same rank.
func Chain[T any](first Emitter, second Operator[T]) (*ChainOp[T], error) {
	if Rank(first) != Rank(second) {
		return nil, errors.Wrapf(tensor.ErrInvalidSize, "chain: ranks %d and %d differ", Rank(first), Rank(second))
	}
	o := &ChainOp[T]{shape: shapeOf(second), first: first, second: second}
	o.emit, _ = second.(Emitter)
	return o, nil
}

// At emits first at idx and returns second's value there.
func (o *ChainOp[T]) At(idx Index) T {
	o.first.Emit(idx)
	return o.second.At(idx)
}

// Emit emits first and then second at idx.
func (o *ChainOp[T]) Emit(idx Index) {
	o.first.Emit(idx)
	if o.emit != nil {
		o.emit.Emit(idx)
		return
	}
	o.second.At(idx)
}
