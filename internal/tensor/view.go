package tensor

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Index holds up to MaxRank coordinates. Entries past a node's rank are ignored.
type Index [MaxRank]int

// View is a non-owning leaf over a Storage: a descriptor plus an element offset.
// A view must not outlive the storage it aliases; Alive reports whether it still may be used.
//
// Example:
//
//	v := tensor.Make[float32](Shape{3, 4})
//	v.Set(tensor.Index{1, 2}, 5)
//	x := v.At(tensor.Index{1, 2}) // 5
type View[T any] struct {
	storage *Storage[T]
	desc    Desc
	offset  int
}

// NewView creates a view of s described by d, starting at element offset.
// Every coordinate the descriptor can address must fall inside the storage.
func NewView[T any](s *Storage[T], d Desc, offset int) (*View[T], error) {
	if offset < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "view: negative offset %d", offset)
	}
	last := offset
	for i := 0; i < d.rank; i++ {
		if d.stride[i] < 0 {
			return nil, errors.Wrapf(ErrUnsupportedLayout, "view: negative stride %d in dimension %d", d.stride[i], i)
		}
		if d.size[i] == 0 {
			return &View[T]{storage: s, desc: d, offset: offset}, nil
		}
		var ok bool
		if last, ok = addSpan(last, d.size[i], d.stride[i]); !ok {
			return nil, errors.Wrapf(ErrInvalidSize, "view: shape %v with strides %v overflows int", d.Shape(), d.Strides())
		}
	}
	if last >= s.Len() {
		return nil, errors.Wrapf(ErrInvalidSize, "view: shape %v with strides %v needs %d elements, storage has %d",
			d.Shape(), d.Strides(), last+1, s.Len())
	}
	return &View[T]{storage: s, desc: d, offset: offset}, nil
}

// addSpan returns last + (size-1)*stride, or false if the sum overflows int.
// size must be positive and stride non-negative.
func addSpan(last, size, stride int) (int, bool) {
	if stride == 0 || size == 1 {
		return last, true
	}
	if size-1 > (math.MaxInt-last)/stride {
		return 0, false
	}
	return last + (size-1)*stride, true
}

// Rank returns the number of dimensions.
func (v *View[T]) Rank() int {
	return v.desc.rank
}

// Size returns the number of elements along dim.
func (v *View[T]) Size(dim int) int {
	return v.desc.size[dim]
}

// Stride returns the element distance between neighbours along dim.
func (v *View[T]) Stride(dim int) int {
	return v.desc.stride[dim]
}

// Shape returns the view's shape.
func (v *View[T]) Shape() Shape {
	return v.desc.Shape()
}

// Desc returns the view's descriptor.
func (v *View[T]) Desc() Desc {
	return v.desc
}

// TotalSize returns the number of addressable elements.
func (v *View[T]) TotalSize() int {
	return v.desc.TotalSize()
}

// IsLinear reports whether the view is contiguous in row-major order.
func (v *View[T]) IsLinear() bool {
	return v.desc.IsLinear()
}

// Alive reports whether the owning storage has not been released.
func (v *View[T]) Alive() bool {
	return v.storage.Alive()
}

// Storage returns the owner this view aliases.
func (v *View[T]) Storage() *Storage[T] {
	return v.storage
}

// Offset returns the element offset of the view origin inside its storage.
func (v *View[T]) Offset() int {
	return v.offset
}

// Data returns the storage slice starting at the view origin.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify every view of the storage.
func (v *View[T]) Data() []T {
	return v.storage.data[v.offset:]
}

// At returns the element at idx.
func (v *View[T]) At(idx Index) T {
	return v.storage.data[v.offset+v.desc.offset(&idx)]
}

// Set stores val at idx.
func (v *View[T]) Set(idx Index, val T) {
	v.storage.data[v.offset+v.desc.offset(&idx)] = val
}

// Permute returns a view with dimensions reordered; output dimension i is input dimension dims[i].
func (v *View[T]) Permute(dims []int) (*View[T], error) {
	d, err := v.desc.Permute(dims)
	if err != nil {
		return nil, err
	}
	return &View[T]{storage: v.storage, desc: d, offset: v.offset}, nil
}

// Slice returns the sub-view covering [begin[i], end[i]) in every dimension.
// Narrowing any dimension but the first makes the result non-linear.
func (v *View[T]) Slice(begin, end []int) (*View[T], error) {
	if len(begin) != v.desc.rank || len(end) != v.desc.rank {
		return nil, errors.Wrapf(ErrInvalidDim, "slice: need %d bounds, got %d and %d", v.desc.rank, len(begin), len(end))
	}

	d := v.desc
	var start Index
	for i := 0; i < d.rank; i++ {
		if begin[i] < 0 || end[i] > d.size[i] || begin[i] > end[i] {
			return nil, &ShapeError{Op: "slice", Dim: i, Want: d.size[i], Got: end[i], Err: ErrInvalidSize}
		}
		start[i] = begin[i]
		d.size[i] = end[i] - begin[i]
	}
	return &View[T]{storage: v.storage, desc: d, offset: v.offset + v.desc.offset(&start)}, nil
}

// String returns a short description of the view.
func (v *View[T]) String() string {
	return fmt.Sprintf("View[%s]%v on %s", DataTypeOf[T](), v.Shape(), v.storage.device)
}
