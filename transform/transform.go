// Copyright 2025 The MatX Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package transform evaluates whole expressions into destination views:
// deep copy, transpose and permute.
//
// Every function validates before submitting, so a failed call never writes
// to its destination. Work runs asynchronously on the given stream; call
// Synchronize before reading the result.
package transform

import (
	"github.com/binbinmeng/MatX/expr"
	"github.com/binbinmeng/MatX/internal/transform"
	"github.com/binbinmeng/MatX/stream"
	"github.com/binbinmeng/MatX/tensor"
)

// Copy evaluates in into out. Both must have the same rank and sizes.
func Copy[T any](out *tensor.View[T], in expr.Operator[T], s *stream.Stream) error {
	return transform.Copy(out, in, s)
}

// Transpose swaps the last two dimensions of in into out.
// float32 data runs on the stream's device kernels when it has them.
func Transpose[T any](out, in *tensor.View[T], s *stream.Stream) error {
	return transform.Transpose(out, in, s)
}

// Permute copies in into out with dimension i of out taken from dimension dims[i] of in.
func Permute[T any](out, in *tensor.View[T], dims []int, s *stream.Stream) error {
	return transform.Permute(out, in, dims, s)
}
