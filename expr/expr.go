// Copyright 2025 The MatX Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package expr

import (
	"github.com/binbinmeng/MatX/internal/expr"
	"github.com/binbinmeng/MatX/internal/scalar"
	"github.com/binbinmeng/MatX/tensor"
)

// Node contract.
type (
	// Index holds the coordinates of one element.
	Index = expr.Index
	// Shaped is implemented by every node.
	Shaped = expr.Shaped
	// Operator is a node producing a value per coordinate.
	Operator[T any] = expr.Operator[T]
	// Emitter is a node with a write-capable evaluation path.
	Emitter = expr.Emitter
)

// Element constraints.
type (
	// Number is any integer, floating-point or complex type.
	Number = scalar.Number
	// Real is any integer or floating-point type.
	Real = scalar.Real
	// Elem is an element type accepted by the transcendental functions.
	Elem = scalar.Elem
	// Cplx is a complex element type with a planar layout.
	Cplx = expr.Cplx
	// Flt is a real element type a planar layout is made of.
	Flt = expr.Flt
)

// Node types.
type (
	ScalarOp[T any]              = expr.ScalarOp[T]
	SelfOp[T any]                = expr.SelfOp[T]
	UnaryOp[T, R any]            = expr.UnaryOp[T, R]
	BinaryOp[A, B, R any]        = expr.BinaryOp[A, B, R]
	ReverseOp[T any]             = expr.ReverseOp[T]
	ShiftOp[T any]               = expr.ShiftOp[T]
	HermitianOp[T Elem]          = expr.HermitianOp[T]
	DiagOp[T any]                = expr.DiagOp[T]
	KronOp[T Number]             = expr.KronOp[T]
	RepMatOp[T any]              = expr.RepMatOp[T]
	IfOp                         = expr.IfOp
	IfElseOp                     = expr.IfElseOp
	PlanarOp[C Cplx, R Flt]      = expr.PlanarOp[C, R]
	InterleavedOp[R Flt, C Cplx] = expr.InterleavedOp[R, C]
	ChainOp[T any]               = expr.ChainOp[T]
	SetOp[T any]                 = expr.SetOp[T]
)

// ErrUnknownOp is returned by Apply and Combine for unknown operation names.
var ErrUnknownOp = expr.ErrUnknownOp

// Rank returns the rank of n, or -1 when n is nil.
func Rank(n Shaped) int { return expr.Rank(n) }

// ExpandedSize returns n's size at dim, or 0 when dim lies beyond n's rank.
func ExpandedSize(n Shaped, dim int) int { return expr.ExpandedSize(n, dim) }

// ShapeOf returns the sizes of n.
func ShapeOf(n Shaped) tensor.Shape { return expr.ShapeOf(n) }

// Must panics if err is non-nil and returns n otherwise.
func Must[N any](n N, err error) N { return expr.Must(n, err) }

// Scalar wraps a constant as a rank -1 node.
func Scalar[T any](v T) *ScalarOp[T] { return expr.Scalar(v) }

// Self wraps in as a read-only node.
func Self[T any](in Operator[T]) *SelfOp[T] { return expr.Self(in) }

// Unary lifts fn over in.
func Unary[T, R any](in Operator[T], fn func(T) R) *UnaryOp[T, R] { return expr.Unary(in, fn) }

// Binary lifts fn over a and b.
func Binary[A, B, R any](a Operator[A], b Operator[B], fn func(A, B) R) (*BinaryOp[A, B, R], error) {
	return expr.Binary(a, b, fn)
}

// Apply lifts the named unary function over in. See UnaryTable for names.
func Apply[T Elem](name string, in Operator[T]) (*UnaryOp[T, T], error) { return expr.Apply(name, in) }

// Combine lifts the named binary function over a and b. See BinaryTable for names.
func Combine[T Elem](name string, a, b Operator[T]) (*BinaryOp[T, T, T], error) {
	return expr.Combine(name, a, b)
}

// Compare lifts the named comparison over a and b. See CompareTable for names.
func Compare[T Real](name string, a, b Operator[T]) (*BinaryOp[T, T, bool], error) {
	return expr.Compare(name, a, b)
}

// UnaryTable lists the unary functions Apply accepts.
func UnaryTable[T Elem]() map[string]func(T) T { return expr.UnaryTable[T]() }

// BinaryTable lists the binary functions Combine accepts.
func BinaryTable[T Elem]() map[string]func(T, T) T { return expr.BinaryTable[T]() }

// CompareTable lists the comparisons Compare accepts.
func CompareTable[T Real]() map[string]func(T, T) bool { return expr.CompareTable[T]() }

func Add[T Number](a, b Operator[T]) (*BinaryOp[T, T, T], error) { return expr.Add(a, b) }
func Sub[T Number](a, b Operator[T]) (*BinaryOp[T, T, T], error) { return expr.Sub(a, b) }
func Mul[T Number](a, b Operator[T]) (*BinaryOp[T, T, T], error) { return expr.Mul(a, b) }
func Div[T Number](a, b Operator[T]) (*BinaryOp[T, T, T], error) { return expr.Div(a, b) }
func Pow[T Elem](a, b Operator[T]) (*BinaryOp[T, T, T], error) { return expr.Pow(a, b) }
func Max[T Real](a, b Operator[T]) (*BinaryOp[T, T, T], error) { return expr.Max(a, b) }
func Min[T Real](a, b Operator[T]) (*BinaryOp[T, T, T], error) { return expr.Min(a, b) }

func Less[T Real](a, b Operator[T]) (*BinaryOp[T, T, bool], error) { return expr.Less(a, b) }
func Greater[T Real](a, b Operator[T]) (*BinaryOp[T, T, bool], error) { return expr.Greater(a, b) }
func Equal[T comparable](a, b Operator[T]) (*BinaryOp[T, T, bool], error) {
	return expr.Equal(a, b)
}

func LogicalAnd(a, b Operator[bool]) (*BinaryOp[bool, bool, bool], error) {
	return expr.LogicalAnd(a, b)
}

func LogicalOr(a, b Operator[bool]) (*BinaryOp[bool, bool, bool], error) {
	return expr.LogicalOr(a, b)
}

func Not(a Operator[bool]) *UnaryOp[bool, bool] { return expr.Not(a) }
func Neg[T Number](a Operator[T]) *UnaryOp[T, T] { return expr.Neg(a) }
func Sqrt[T Elem](a Operator[T]) *UnaryOp[T, T] { return expr.Sqrt(a) }
func Exp[T Elem](a Operator[T]) *UnaryOp[T, T] { return expr.Exp(a) }
func Expj[T Elem](a Operator[T]) *UnaryOp[T, complex128] { return expr.Expj(a) }
func Abs[T Elem](a Operator[T]) *UnaryOp[T, T] { return expr.Abs(a) }
func Conj[T Elem](a Operator[T]) *UnaryOp[T, T] { return expr.Conj(a) }

// Reverse maps coordinate c along dim to Size(dim)-c-1.
func Reverse[T any](in Operator[T], dim int) (*ReverseOp[T], error) { return expr.Reverse(in, dim) }

func ReverseX[T any](in Operator[T]) (*ReverseOp[T], error) { return expr.ReverseX(in) }
func ReverseY[T any](in Operator[T]) (*ReverseOp[T], error) { return expr.ReverseY(in) }
func ReverseZ[T any](in Operator[T]) (*ReverseOp[T], error) { return expr.ReverseZ(in) }
func ReverseW[T any](in Operator[T]) (*ReverseOp[T], error) { return expr.ReverseW(in) }
func FlipUD[T any](in Operator[T]) (*ReverseOp[T], error) { return expr.FlipUD(in) }
func FlipLR[T any](in Operator[T]) (*ReverseOp[T], error) { return expr.FlipLR(in) }

// Shift rotates in by s elements along dim, wrapping around.
func Shift[T any](in Operator[T], dim, s int) (*ShiftOp[T], error) { return expr.Shift(in, dim, s) }

func Shift0[T any](in Operator[T], s int) (*ShiftOp[T], error) { return expr.Shift0(in, s) }
func Shift1[T any](in Operator[T], s int) (*ShiftOp[T], error) { return expr.Shift1(in, s) }
func Shift2[T any](in Operator[T], s int) (*ShiftOp[T], error) { return expr.Shift2(in, s) }
func Shift3[T any](in Operator[T], s int) (*ShiftOp[T], error) { return expr.Shift3(in, s) }

func FFTShift1D[T any](in Operator[T]) (*ShiftOp[T], error) { return expr.FFTShift1D(in) }
func FFTShift2D[T any](in Operator[T]) (*ShiftOp[T], error) { return expr.FFTShift2D(in) }
func IFFTShift1D[T any](in Operator[T]) (*ShiftOp[T], error) { return expr.IFFTShift1D(in) }
func IFFTShift2D[T any](in Operator[T]) (*ShiftOp[T], error) { return expr.IFFTShift2D(in) }

// HermitianT returns the conjugate transpose of in.
func HermitianT[T Elem](in Operator[T]) *HermitianOp[T] { return expr.HermitianT(in) }

// Diag returns the diagonal of the last two dimensions of in.
func Diag[T any](in Operator[T]) (*DiagOp[T], error) { return expr.Diag(in) }

// Kron returns the Kronecker product of the last two dimensions of a and b.
func Kron[T Number](a, b Operator[T]) (*KronOp[T], error) { return expr.Kron(a, b) }

// RepMat tiles in reps times along every dimension.
func RepMat[T any](in Operator[T], reps int) (*RepMatOp[T], error) { return expr.RepMat(in, reps) }

// RepMatDims tiles in reps[d] times along dimension d.
func RepMatDims[T any](in Operator[T], reps []int) (*RepMatOp[T], error) {
	return expr.RepMatDims(in, reps)
}

// If emits then wherever cond holds.
func If(cond Operator[bool], then Emitter) (*IfOp, error) { return expr.If(cond, then) }

// IfElse emits then where cond holds and els elsewhere.
func IfElse(cond Operator[bool], then, els Emitter) (*IfElseOp, error) {
	return expr.IfElse(cond, then, els)
}

// Planar converts a complex operand to planar real layout.
func Planar[R Flt, C Cplx](in Operator[C]) (*PlanarOp[C, R], error) {
	return expr.Planar[R](in)
}

// Interleaved converts a planar real operand back to complex values.
func Interleaved[C Cplx, R Flt](in Operator[R]) (*InterleavedOp[R, C], error) {
	return expr.Interleaved[C](in)
}

// Chain emits first and then evaluates second, per coordinate.
func Chain[T any](first Emitter, second Operator[T]) (*ChainOp[T], error) {
	return expr.Chain(first, second)
}

// Set builds the assignment dst = src.
func Set[T any](dst *tensor.View[T], src Operator[T]) (*SetOp[T], error) { return expr.Set(dst, src) }
