package tensor

import "github.com/pkg/errors"

// Make creates a view over newly allocated, zeroed, row-major storage.
// It panics on an invalid shape; use MakeStrided for checked construction.
//
// Example:
//
//	m := tensor.Make[float32](Shape{2, 3})
func Make[T any](shape Shape) *View[T] {
	v, err := MakeStrided[T](shape, nil)
	if err != nil {
		panic(err)
	}
	return v
}

// Make0D creates a rank-0 view holding a single element.
func Make0D[T any]() *View[T] {
	return Make[T](Shape{})
}

// MakeStrided creates a view over newly allocated storage with explicit strides.
// The storage is sized to the largest element the strides can reach.
func MakeStrided[T any](shape Shape, strides []int) (*View[T], error) {
	d, err := NewDesc(shape, strides)
	if err != nil {
		return nil, err
	}

	last := 0
	for i := 0; i < d.rank; i++ {
		if d.size[i] == 0 {
			return NewView(NewStorage[T](0), d, 0)
		}
		if d.stride[i] < 0 {
			break
		}
		var ok bool
		if last, ok = addSpan(last, d.size[i], d.stride[i]); !ok {
			return nil, errors.Wrapf(ErrInvalidSize, "shape %v with strides %v overflows int", shape, strides)
		}
	}
	return NewView(NewStorage[T](last+1), d, 0)
}

// FromSlice wraps caller memory as a row-major view without copying.
// The caller keeps ownership; the view must not outlive data.
func FromSlice[T any](data []T, shape Shape) (*View[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, errors.Wrapf(ErrInvalidSize, "shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	d, err := NewDesc(shape, nil)
	if err != nil {
		return nil, err
	}
	return NewView(WrapStorage(data), d, 0)
}

// Clone copies the view's elements into new row-major storage.
func (v *View[T]) Clone() *View[T] {
	out := Make[T](v.Shape())
	var idx Index
	v.walk(0, &idx, func(i *Index) {
		out.Set(*i, v.At(*i))
	})
	return out
}

// walk visits every coordinate of the view in row-major order.
func (v *View[T]) walk(dim int, idx *Index, f func(*Index)) {
	if dim == v.desc.rank {
		f(idx)
		return
	}
	for i := 0; i < v.desc.size[dim]; i++ {
		idx[dim] = i
		v.walk(dim+1, idx, f)
	}
}

// Values returns the view's elements in row-major order.
func (v *View[T]) Values() []T {
	out := make([]T, 0, v.TotalSize())
	var idx Index
	v.walk(0, &idx, func(i *Index) {
		out = append(out, v.At(*i))
	})
	return out
}
