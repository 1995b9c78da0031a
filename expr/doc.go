// Copyright 2025 The MatX Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package expr composes lazy tensor expressions.
//
// # Overview
//
// Every node reports a rank, a size per dimension and a value per coordinate.
// Views from package tensor are leaves; everything in this package wraps other
// nodes and owns no memory. Constructors check operand shapes once and return
// an error wrapping tensor.ErrInvalidSize or tensor.ErrInvalidDim on mismatch.
//
// # Shapes
//
// Operands of different rank combine by rank-lifting: a missing trailing
// dimension places no constraint, while a dimension both operands define must
// have equal size. A size of 1 is not stretched.
//
//	a := tensor.Make[float64](tensor.Shape{2, 3})
//	b := tensor.Make[float64](tensor.Shape{2})
//	c, err := expr.Add[float64](a, b) // c[i, j] = a[i, j] + b[i]
//
// # Evaluation
//
// Nothing is computed until an Emitter is run. Set builds one that writes an
// expression into a view; package stream evaluates it:
//
//	assign, err := expr.Set(out, expr.Must(expr.Kron[float64](a, b)))
//	err = s.Evaluate(assign)
//	err = s.Synchronize()
package expr
