package scalar

import (
	"math"
	"math/cmplx"
)

// Elem covers the element types the transcendental functions accept.
// Real inputs use package math, complex inputs use math/cmplx.
type Elem interface {
	float32 | float64 | complex64 | complex128
}

func lift[T Elem](a T, f func(float64) float64, g func(complex128) complex128) T {
	switch v := any(a).(type) {
	case float32:
		return any(float32(f(float64(v)))).(T)
	case float64:
		return any(f(v)).(T)
	case complex64:
		return any(complex64(g(complex128(v)))).(T)
	default:
		return any(g(any(a).(complex128))).(T)
	}
}

func lift2[T Elem](a, b T, f func(float64, float64) float64, g func(complex128, complex128) complex128) T {
	switch v := any(a).(type) {
	case float32:
		return any(float32(f(float64(v), float64(any(b).(float32))))).(T)
	case float64:
		return any(f(v, any(b).(float64))).(T)
	case complex64:
		return any(complex64(g(complex128(v), complex128(any(b).(complex64))))).(T)
	default:
		return any(g(any(a).(complex128), any(b).(complex128))).(T)
	}
}

// ToComplex widens any Elem value to complex128.
func ToComplex[T Elem](a T) complex128 {
	switch v := any(a).(type) {
	case float32:
		return complex(float64(v), 0)
	case float64:
		return complex(v, 0)
	case complex64:
		return complex128(v)
	default:
		return any(a).(complex128)
	}
}

func parts(f func(float64) float64) func(complex128) complex128 {
	return func(c complex128) complex128 {
		return complex(f(real(c)), f(imag(c)))
	}
}

func realOnly(f func(complex128) float64) func(complex128) complex128 {
	return func(c complex128) complex128 {
		return complex(f(c), 0)
	}
}

func identity(x float64) float64 { return x }

// Sqrt returns the square root of a.
func Sqrt[T Elem](a T) T { return lift(a, math.Sqrt, cmplx.Sqrt) }

// Exp returns e**a.
func Exp[T Elem](a T) T { return lift(a, math.Exp, cmplx.Exp) }

// Expj returns e**(i*a).
func Expj[T Elem](a T) complex128 { return cmplx.Exp(complex(0, 1) * ToComplex(a)) }

// Log returns the natural logarithm of a.
func Log[T Elem](a T) T { return lift(a, math.Log, cmplx.Log) }

// Log10 returns the decimal logarithm of a.
func Log10[T Elem](a T) T { return lift(a, math.Log10, cmplx.Log10) }

// Log2 returns the binary logarithm of a.
func Log2[T Elem](a T) T {
	return lift(a, math.Log2, func(c complex128) complex128 { return cmplx.Log(c) / math.Ln2 })
}

// Conj returns the complex conjugate of a. Real values are returned unchanged.
func Conj[T Elem](a T) T { return lift(a, identity, cmplx.Conj) }

// Abs returns |a|. For complex input the magnitude is stored in the real part.
func Abs[T Elem](a T) T { return lift(a, math.Abs, realOnly(cmplx.Abs)) }

// Norm returns the squared magnitude |a|².
func Norm[T Elem](a T) T {
	return lift(a,
		func(x float64) float64 { return x * x },
		realOnly(func(c complex128) float64 { return real(c)*real(c) + imag(c)*imag(c) }))
}

// Angle returns the phase of a in radians.
func Angle[T Elem](a T) T {
	return lift(a, func(x float64) float64 { return math.Atan2(0, x) }, realOnly(cmplx.Phase))
}

// Sin returns the sine of a.
func Sin[T Elem](a T) T { return lift(a, math.Sin, cmplx.Sin) }

// Cos returns the cosine of a.
func Cos[T Elem](a T) T { return lift(a, math.Cos, cmplx.Cos) }

// Tan returns the tangent of a.
func Tan[T Elem](a T) T { return lift(a, math.Tan, cmplx.Tan) }

// Asin returns the arcsine of a.
func Asin[T Elem](a T) T { return lift(a, math.Asin, cmplx.Asin) }

// Acos returns the arccosine of a.
func Acos[T Elem](a T) T { return lift(a, math.Acos, cmplx.Acos) }

// Atan returns the arctangent of a.
func Atan[T Elem](a T) T { return lift(a, math.Atan, cmplx.Atan) }

// Sinh returns the hyperbolic sine of a.
func Sinh[T Elem](a T) T { return lift(a, math.Sinh, cmplx.Sinh) }

// Cosh returns the hyperbolic cosine of a.
func Cosh[T Elem](a T) T { return lift(a, math.Cosh, cmplx.Cosh) }

// Tanh returns the hyperbolic tangent of a.
func Tanh[T Elem](a T) T { return lift(a, math.Tanh, cmplx.Tanh) }

// Asinh returns the inverse hyperbolic sine of a.
func Asinh[T Elem](a T) T { return lift(a, math.Asinh, cmplx.Asinh) }

// Acosh returns the inverse hyperbolic cosine of a.
func Acosh[T Elem](a T) T { return lift(a, math.Acosh, cmplx.Acosh) }

// Atanh returns the inverse hyperbolic tangent of a.
func Atanh[T Elem](a T) T { return lift(a, math.Atanh, cmplx.Atanh) }

// Floor rounds down. Complex values are rounded per component.
func Floor[T Elem](a T) T { return lift(a, math.Floor, parts(math.Floor)) }

// Ceil rounds up. Complex values are rounded per component.
func Ceil[T Elem](a T) T { return lift(a, math.Ceil, parts(math.Ceil)) }

// Round rounds half away from zero. Complex values are rounded per component.
func Round[T Elem](a T) T { return lift(a, math.Round, parts(math.Round)) }

// NormCdf returns the standard normal cumulative distribution at a.
// Complex values are evaluated per component.
func NormCdf[T Elem](a T) T { return lift(a, normCdf, parts(normCdf)) }

func normCdf(x float64) float64 {
	return 0.5 * math.Erfc(-x/math.Sqrt2)
}

// Pow returns a**b.
func Pow[T Elem](a, b T) T { return lift2(a, b, math.Pow, cmplx.Pow) }
