// Copyright 2025 The MatX Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the leaf side of MatX expressions: shapes, strided
// descriptors, reference-counted storage and the views that alias it.
//
// # Overview
//
// A View is a non-owning window onto a Storage. It carries a descriptor
// (rank, per-dimension size and stride, at most MaxRank dimensions) and an
// element offset. Views are the leaves of expression trees built with package
// expr; they read and write memory, while every other node computes its values
// from the nodes it wraps.
//
// # Basic Usage
//
//	m := tensor.Make[float32](tensor.Shape{3, 4})
//	m.Set(tensor.Index{1, 2}, 5)
//
//	col, _ := m.Slice([]int{0, 2}, []int{3, 3}) // third column, non-linear
//	t, _ := m.Permute([]int{1, 0})              // stride remap, no copy
//
// # Memory
//
// Storage is reference counted. Views take no reference: a view must not
// outlive the storage it aliases, and Alive reports whether it still may be
// used. FromSlice wraps caller memory without copying.
package tensor
