// Copyright 2025 The MatX Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/binbinmeng/MatX/internal/tensor"
)

// MaxRank is the highest rank a view or expression node can have.
const MaxRank = tensor.MaxRank

// Shape represents the dimensions of a view.
// Example: Shape{2, 3, 4} represents a 3D view with dimensions 2×3×4.
type Shape = tensor.Shape

// Index holds the coordinates of one element.
type Index = tensor.Index

// Desc describes the size and stride of every dimension of a view.
type Desc = tensor.Desc

// Storage owns the buffer views alias.
type Storage[T any] = tensor.Storage[T]

// View is a strided, non-owning window onto a Storage.
type View[T any] = tensor.View[T]

// DataType represents the element type of a view at runtime.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32    DataType = tensor.Float32
	Float64    DataType = tensor.Float64
	Int32      DataType = tensor.Int32
	Int64      DataType = tensor.Int64
	Uint8      DataType = tensor.Uint8
	Bool       DataType = tensor.Bool
	Complex64  DataType = tensor.Complex64
	Complex128 DataType = tensor.Complex128
	Other      DataType = tensor.Other
)

// Device represents where storage memory lives.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	WebGPU Device = tensor.WebGPU
)

// ShapeError describes a per-dimension validation failure.
type ShapeError = tensor.ShapeError

// Errors shared by views, expressions and bulk transforms.
var (
	ErrInvalidSize       = tensor.ErrInvalidSize
	ErrInvalidDim        = tensor.ErrInvalidDim
	ErrUnsupportedLayout = tensor.ErrUnsupportedLayout
	ErrReleased          = tensor.ErrReleased
)

// Make creates a row-major view over newly allocated, zeroed storage.
// It panics on an invalid shape.
func Make[T any](shape Shape) *View[T] {
	return tensor.Make[T](shape)
}

// Make0D creates a rank-0 view holding one element.
func Make0D[T any]() *View[T] {
	return tensor.Make0D[T]()
}

// MakeStrided creates a view over new storage with explicit strides.
func MakeStrided[T any](shape Shape, strides []int) (*View[T], error) {
	return tensor.MakeStrided[T](shape, strides)
}

// FromSlice wraps data as a row-major view without copying.
func FromSlice[T any](data []T, shape Shape) (*View[T], error) {
	return tensor.FromSlice(data, shape)
}

// NewDesc creates a descriptor; nil strides select row-major order.
func NewDesc(shape Shape, strides []int) (Desc, error) {
	return tensor.NewDesc(shape, strides)
}

// NewStorage allocates n zeroed elements.
func NewStorage[T any](n int) *Storage[T] {
	return tensor.NewStorage[T](n)
}

// NewView creates a view of s described by d starting at offset.
func NewView[T any](s *Storage[T], d Desc, offset int) (*View[T], error) {
	return tensor.NewView(s, d, offset)
}

// Format renders the view's elements as nested brackets.
func Format[T any](v *View[T]) string {
	return tensor.Format(v)
}

// DataTypeOf returns the runtime tag of T.
func DataTypeOf[T any]() DataType {
	return tensor.DataTypeOf[T]()
}
