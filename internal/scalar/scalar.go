// Package scalar provides the pure element functions that expression
// combinators lift over tensors. None of them allocate or keep state.
package scalar

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is a constraint for element types that support arithmetic.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Real is a constraint for ordered numeric element types.
type Real interface {
	constraints.Integer | constraints.Float
}

// Complex is a constraint for complex element types.
type Complex interface {
	constraints.Complex
}

// Add returns a + b.
func Add[T Number](a, b T) T { return a + b }

// Sub returns a - b.
func Sub[T Number](a, b T) T { return a - b }

// Mul returns a * b.
func Mul[T Number](a, b T) T { return a * b }

// Div returns a / b.
func Div[T Number](a, b T) T { return a / b }

// Neg returns -a.
func Neg[T Number](a T) T { return -a }

// Mod returns the remainder of a / b, with the sign of a.
func Mod[T constraints.Integer](a, b T) T { return a % b }

// FMod returns the floating-point remainder of a / b.
func FMod[T constraints.Float](a, b T) T { return T(math.Mod(float64(a), float64(b))) }

// Max returns the larger of a and b.
func Max[T Real](a, b T) T { return max(a, b) }

// Min returns the smaller of a and b.
func Min[T Real](a, b T) T { return min(a, b) }

// Less returns a < b.
func Less[T Real](a, b T) bool { return a < b }

// Greater returns a > b.
func Greater[T Real](a, b T) bool { return a > b }

// LessEqual returns a <= b.
func LessEqual[T Real](a, b T) bool { return a <= b }

// GreaterEqual returns a >= b.
func GreaterEqual[T Real](a, b T) bool { return a >= b }

// Equal returns a == b.
func Equal[T comparable](a, b T) bool { return a == b }

// NotEqual returns a != b.
func NotEqual[T comparable](a, b T) bool { return a != b }

// And returns the bitwise AND of a and b.
func And[T constraints.Integer](a, b T) T { return a & b }

// Or returns the bitwise OR of a and b.
func Or[T constraints.Integer](a, b T) T { return a | b }

// Xor returns the bitwise XOR of a and b.
func Xor[T constraints.Integer](a, b T) T { return a ^ b }

// LogicalAnd returns a && b.
func LogicalAnd(a, b bool) bool { return a && b }

// LogicalOr returns a || b.
func LogicalOr(a, b bool) bool { return a || b }

// Not returns !a.
func Not(a bool) bool { return !a }
