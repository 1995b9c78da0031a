package expr

import (
	"github.com/binbinmeng/MatX/internal/scalar"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// UnaryTable returns the named single-operand functions available for T.
func UnaryTable[T scalar.Elem]() map[string]func(T) T {
	return map[string]func(T) T{
		"neg":     scalar.Neg[T],
		"sqrt":    scalar.Sqrt[T],
		"exp":     scalar.Exp[T],
		"log":     scalar.Log[T],
		"log10":   scalar.Log10[T],
		"log2":    scalar.Log2[T],
		"conj":    scalar.Conj[T],
		"norm":    scalar.Norm[T],
		"abs":     scalar.Abs[T],
		"sin":     scalar.Sin[T],
		"cos":     scalar.Cos[T],
		"tan":     scalar.Tan[T],
		"asin":    scalar.Asin[T],
		"acos":    scalar.Acos[T],
		"atan":    scalar.Atan[T],
		"sinh":    scalar.Sinh[T],
		"cosh":    scalar.Cosh[T],
		"tanh":    scalar.Tanh[T],
		"asinh":   scalar.Asinh[T],
		"acosh":   scalar.Acosh[T],
		"atanh":   scalar.Atanh[T],
		"angle":   scalar.Angle[T],
		"floor":   scalar.Floor[T],
		"ceil":    scalar.Ceil[T],
		"round":   scalar.Round[T],
		"normcdf": scalar.NormCdf[T],
	}
}

// BinaryTable returns the named two-operand arithmetic functions available for T.
func BinaryTable[T scalar.Elem]() map[string]func(T, T) T {
	return map[string]func(T, T) T{
		"add": scalar.Add[T],
		"sub": scalar.Sub[T],
		"mul": scalar.Mul[T],
		"div": scalar.Div[T],
		"pow": scalar.Pow[T],
	}
}

// CompareTable returns the named comparisons available for T.
func CompareTable[T scalar.Real]() map[string]func(T, T) bool {
	return map[string]func(T, T) bool{
		"lt": scalar.Less[T],
		"gt": scalar.Greater[T],
		"le": scalar.LessEqual[T],
		"ge": scalar.GreaterEqual[T],
		"eq": scalar.Equal[T],
		"ne": scalar.NotEqual[T],
	}
}

// IntegerTable returns the named integer-only functions available for T.
func IntegerTable[T constraints.Integer]() map[string]func(T, T) T {
	return map[string]func(T, T) T{
		"mod": scalar.Mod[T],
		"and": scalar.And[T],
		"or":  scalar.Or[T],
		"xor": scalar.Xor[T],
		"max": scalar.Max[T],
		"min": scalar.Min[T],
	}
}

// Apply looks name up in UnaryTable and lifts it over in.
func Apply[T scalar.Elem](name string, in Operator[T]) (*UnaryOp[T, T], error) {
	fn, ok := UnaryTable[T]()[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownOp, "unary %q", name)
	}
	return Unary(in, fn), nil
}

// Combine looks name up in BinaryTable and lifts it over a and b.
func Combine[T scalar.Elem](name string, a, b Operator[T]) (*BinaryOp[T, T, T], error) {
	fn, ok := BinaryTable[T]()[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownOp, "binary %q", name)
	}
	return Binary(a, b, fn)
}

// Compare looks name up in CompareTable and lifts it over a and b.
func Compare[T scalar.Real](name string, a, b Operator[T]) (*BinaryOp[T, T, bool], error) {
	fn, ok := CompareTable[T]()[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownOp, "comparison %q", name)
	}
	return Binary(a, b, fn)
}

// Add returns a + b elementwise.
func Add[T scalar.Number](a, b Operator[T]) (*BinaryOp[T, T, T], error) {
	return Binary(a, b, scalar.Add[T])
}

// Sub returns a - b elementwise.
func Sub[T scalar.Number](a, b Operator[T]) (*BinaryOp[T, T, T], error) {
	return Binary(a, b, scalar.Sub[T])
}

// Mul returns a * b elementwise.
func Mul[T scalar.Number](a, b Operator[T]) (*BinaryOp[T, T, T], error) {
	return Binary(a, b, scalar.Mul[T])
}

// Div returns a / b elementwise.
func Div[T scalar.Number](a, b Operator[T]) (*BinaryOp[T, T, T], error) {
	return Binary(a, b, scalar.Div[T])
}

// Pow returns a ** b elementwise.
func Pow[T scalar.Elem](a, b Operator[T]) (*BinaryOp[T, T, T], error) {
	return Binary(a, b, scalar.Pow[T])
}

// Max returns the elementwise maximum.
func Max[T scalar.Real](a, b Operator[T]) (*BinaryOp[T, T, T], error) {
	return Binary(a, b, scalar.Max[T])
}

// Min returns the elementwise minimum.
func Min[T scalar.Real](a, b Operator[T]) (*BinaryOp[T, T, T], error) {
	return Binary(a, b, scalar.Min[T])
}

// Less returns a < b elementwise.
func Less[T scalar.Real](a, b Operator[T]) (*BinaryOp[T, T, bool], error) {
	return Binary(a, b, scalar.Less[T])
}

// Greater returns a > b elementwise.
func Greater[T scalar.Real](a, b Operator[T]) (*BinaryOp[T, T, bool], error) {
	return Binary(a, b, scalar.Greater[T])
}

// Equal returns a == b elementwise.
func Equal[T comparable](a, b Operator[T]) (*BinaryOp[T, T, bool], error) {
	return Binary(a, b, scalar.Equal[T])
}

// LogicalAnd returns a && b elementwise.
func LogicalAnd(a, b Operator[bool]) (*BinaryOp[bool, bool, bool], error) {
	return Binary(a, b, scalar.LogicalAnd)
}

// LogicalOr returns a || b elementwise.
func LogicalOr(a, b Operator[bool]) (*BinaryOp[bool, bool, bool], error) {
	return Binary(a, b, scalar.LogicalOr)
}

// Not returns !a elementwise.
func Not(a Operator[bool]) *UnaryOp[bool, bool] { return Unary(a, scalar.Not) }

// Neg returns -a elementwise.
func Neg[T scalar.Number](a Operator[T]) *UnaryOp[T, T] { return Unary(a, scalar.Neg[T]) }

// Sqrt returns the elementwise square root.
func Sqrt[T scalar.Elem](a Operator[T]) *UnaryOp[T, T] { return Unary(a, scalar.Sqrt[T]) }

// Exp returns e ** a elementwise.
func Exp[T scalar.Elem](a Operator[T]) *UnaryOp[T, T] { return Unary(a, scalar.Exp[T]) }

// Expj returns e ** (i*a) elementwise.
func Expj[T scalar.Elem](a Operator[T]) *UnaryOp[T, complex128] { return Unary(a, scalar.Expj[T]) }

// Abs returns |a| elementwise.
func Abs[T scalar.Elem](a Operator[T]) *UnaryOp[T, T] { return Unary(a, scalar.Abs[T]) }

// Conj returns the elementwise complex conjugate.
func Conj[T scalar.Elem](a Operator[T]) *UnaryOp[T, T] { return Unary(a, scalar.Conj[T]) }
