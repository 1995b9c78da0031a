// Copyright 2025 The MatX Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package stream provides ordered asynchronous evaluation of expressions.
//
// A Stream owns one worker goroutine draining a FIFO queue. Work submitted to
// the same stream runs in submission order. Evaluate returns as soon as the
// work is queued; Synchronize waits for it and reports every failure since
// the previous call.
//
// Example:
//
//	s := stream.New(stream.DefaultConfig())
//	defer s.Close()
//
//	assign, err := expr.Set(out, expr.Must(expr.FFTShift1D[float64](in)))
//	if err != nil {
//	    return err
//	}
//	if err := s.Evaluate(assign); err != nil {
//	    return err
//	}
//	return s.Synchronize()
package stream

import (
	"github.com/binbinmeng/MatX/expr"
	"github.com/binbinmeng/MatX/internal/parallel"
	"github.com/binbinmeng/MatX/internal/stream"
)

type (
	// Stream is an ordered execution queue.
	Stream = stream.Stream
	// Config controls how a stream evaluates the work submitted to it.
	Config = stream.Config
	// Kernels is the accelerator hook a stream carries.
	Kernels = stream.Kernels
	// Task is a unit of work executed on the stream's worker goroutine.
	Task = stream.Task
	// ParallelConfig controls CPU fan-out inside one evaluation.
	ParallelConfig = parallel.Config
)

// ErrClosed is returned when work is submitted to a closed stream.
var ErrClosed = stream.ErrClosed

// MaxKernelBatch is the largest batch handed to Kernels in one call.
const MaxKernelBatch = stream.MaxKernelBatch

// New starts a stream.
func New(cfg Config) *Stream {
	return stream.New(cfg)
}

// DefaultConfig returns CPU evaluation with default parallelism and no device kernels.
func DefaultConfig() Config {
	return stream.DefaultConfig()
}

// DefaultParallelConfig returns parallel evaluation on every CPU.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// Sequential returns a configuration that evaluates on the calling goroutine.
func Sequential() ParallelConfig {
	return parallel.Sequential()
}

// Run evaluates e at every coordinate on the calling goroutine.
func Run(e expr.Emitter, cfg ParallelConfig) error {
	return stream.Run(e, cfg)
}
