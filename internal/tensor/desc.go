package tensor

import "github.com/pkg/errors"

// Desc describes the size and stride of a fixed-rank view.
// Strides are measured in elements of the backing storage.
type Desc struct {
	rank   int
	size   [MaxRank]int
	stride [MaxRank]int
}

// NewDesc creates a descriptor. A nil strides argument selects row-major strides.
func NewDesc(shape Shape, strides []int) (Desc, error) {
	if err := shape.Validate(); err != nil {
		return Desc{}, err
	}
	if strides == nil {
		strides = shape.ComputeStrides()
	}
	if len(strides) != len(shape) {
		return Desc{}, errors.Wrapf(ErrInvalidDim, "descriptor: %d strides for rank-%d shape", len(strides), len(shape))
	}

	d := Desc{rank: len(shape)}
	copy(d.size[:], shape)
	copy(d.stride[:], strides)
	return d, nil
}

// Rank returns the number of dimensions.
func (d Desc) Rank() int {
	return d.rank
}

// Size returns the number of elements along dim.
func (d Desc) Size(dim int) int {
	return d.size[dim]
}

// Stride returns the element distance between neighbours along dim.
func (d Desc) Stride(dim int) int {
	return d.stride[dim]
}

// Shape returns the sizes as a Shape.
func (d Desc) Shape() Shape {
	return Shape(d.size[:d.rank]).Clone()
}

// Strides returns a copy of the strides.
func (d Desc) Strides() []int {
	return append([]int(nil), d.stride[:d.rank]...)
}

// TotalSize returns the number of addressable elements.
func (d Desc) TotalSize() int {
	n := 1
	for i := 0; i < d.rank; i++ {
		n *= d.size[i]
	}
	return n
}

// IsLinear reports whether the descriptor is contiguous in canonical row-major order.
func (d Desc) IsLinear() bool {
	expected := 1
	for i := d.rank - 1; i >= 0; i-- {
		if d.size[i] > 1 && d.stride[i] != expected {
			return false
		}
		expected *= d.size[i]
	}
	return true
}

// Permute reorders dimensions: output dimension i takes input dimension dims[i].
// No data moves; only sizes and strides are remapped.
func (d Desc) Permute(dims []int) (Desc, error) {
	if len(dims) != d.rank {
		return Desc{}, errors.Wrapf(ErrInvalidDim, "permute: %d dims for rank %d", len(dims), d.rank)
	}

	var seen [MaxRank]bool
	out := Desc{rank: d.rank}
	for i, ax := range dims {
		if ax < 0 || ax >= d.rank {
			return Desc{}, errors.Wrapf(ErrInvalidDim, "permute: axis %d out of range for rank %d", ax, d.rank)
		}
		if seen[ax] {
			return Desc{}, errors.Wrapf(ErrInvalidDim, "permute: duplicate axis %d", ax)
		}
		seen[ax] = true
		out.size[i] = d.size[ax]
		out.stride[i] = d.stride[ax]
	}
	return out, nil
}

// offset maps coordinates to an element offset relative to the view origin.
func (d *Desc) offset(idx *Index) int {
	off := 0
	for i := 0; i < d.rank; i++ {
		off += idx[i] * d.stride[i]
	}
	return off
}
