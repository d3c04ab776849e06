// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the component type of every vector, matrix, complex number and
// quaternion in lvmath.
type Float interface {
	constraints.Float
}

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Epsilon values (distance from 1.0 to the next representable float).
const (
	Epsilon32 = 1.1920928955078125e-07 // 2^-23
	Epsilon64 = 2.220446049250313e-16  // 2^-52
)

// single reports whether T is a 4-byte float.
func single[T Float]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

// Epsilon returns the machine epsilon of T.
func Epsilon[T Float]() T {
	if single[T]() {
		return T(Epsilon32)
	}
	return T(Epsilon64)
}

// Sqrt returns the square root of x.
func Sqrt[T Float](x T) T {
	if single[T]() {
		return T(math32.Sqrt(float32(x)))
	}
	return T(math.Sqrt(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin[T Float](x T) T {
	if single[T]() {
		return T(math32.Sin(float32(x)))
	}
	return T(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos[T Float](x T) T {
	if single[T]() {
		return T(math32.Cos(float32(x)))
	}
	return T(math.Cos(float64(x)))
}

// Tan returns the tangent of the radian argument x.
func Tan[T Float](x T) T {
	if single[T]() {
		return T(math32.Tan(float32(x)))
	}
	return T(math.Tan(float64(x)))
}

// Atan2 returns the arc tangent of y/x in (-π, π].
func Atan2[T Float](y, x T) T {
	if single[T]() {
		return T(math32.Atan2(float32(y), float32(x)))
	}
	return T(math.Atan2(float64(y), float64(x)))
}

// Hypot returns sqrt(p*p + q*q) without undue overflow or underflow.
func Hypot[T Float](p, q T) T {
	if single[T]() {
		return T(math32.Hypot(float32(p), float32(q)))
	}
	return T(math.Hypot(float64(p), float64(q)))
}

// Exp returns e**x.
func Exp[T Float](x T) T {
	if single[T]() {
		return T(math32.Exp(float32(x)))
	}
	return T(math.Exp(float64(x)))
}

// Log returns the natural logarithm of x.
func Log[T Float](x T) T {
	if single[T]() {
		return T(math32.Log(float32(x)))
	}
	return T(math.Log(float64(x)))
}

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	if single[T]() {
		return T(math32.Abs(float32(x)))
	}
	return T(math.Abs(float64(x)))
}
