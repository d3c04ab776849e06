// SPDX-License-Identifier: MIT

package vec

import (
	"fmt"

	"github.com/katalvlaran/lvmath/scalar"
)

// Vec4 is a 4-component vector.
type Vec4[T scalar.Float] struct {
	X, Y, Z, W T
}

// New4 builds a Vec4 from its components.
func New4[T scalar.Float](x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

// Zero4 returns (0, 0, 0, 0).
func Zero4[T scalar.Float]() Vec4[T] { return Vec4[T]{} }

// One4 returns (1, 1, 1, 1).
func One4[T scalar.Float]() Vec4[T] { return Vec4[T]{1, 1, 1, 1} }

// Vec4X returns the basis vector (1, 0, 0, 0).
func Vec4X[T scalar.Float]() Vec4[T] { return Vec4[T]{1, 0, 0, 0} }

// Vec4Y returns the basis vector (0, 1, 0, 0).
func Vec4Y[T scalar.Float]() Vec4[T] { return Vec4[T]{0, 1, 0, 0} }

// Vec4Z returns the basis vector (0, 0, 1, 0).
func Vec4Z[T scalar.Float]() Vec4[T] { return Vec4[T]{0, 0, 1, 0} }

// Vec4W returns the basis vector (0, 0, 0, 1).
func Vec4W[T scalar.Float]() Vec4[T] { return Vec4[T]{0, 0, 0, 1} }

// Add returns a + b.
func (a Vec4[T]) Add(b Vec4[T]) Vec4[T] { return Vec4[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W} }

// Sub returns a - b.
func (a Vec4[T]) Sub(b Vec4[T]) Vec4[T] { return Vec4[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W} }

// Mul scales every component by s.
func (a Vec4[T]) Mul(s T) Vec4[T] { return Vec4[T]{a.X * s, a.Y * s, a.Z * s, a.W * s} }

// Div divides every component by s. A zero s yields ±Inf or NaN.
func (a Vec4[T]) Div(s T) Vec4[T] { return Vec4[T]{a.X / s, a.Y / s, a.Z / s, a.W / s} }

// Neg returns -a.
func (a Vec4[T]) Neg() Vec4[T] { return Vec4[T]{-a.X, -a.Y, -a.Z, -a.W} }

// MulComponents returns the componentwise (Hadamard) product.
func (a Vec4[T]) MulComponents(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X * b.X, a.Y * b.Y, a.Z * b.Z, a.W * b.W}
}

// DivComponents returns the componentwise quotient.
func (a Vec4[T]) DivComponents(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a.X / b.X, a.Y / b.Y, a.Z / b.Z, a.W / b.W}
}

// Dot returns a·b.
func (a Vec4[T]) Dot(b Vec4[T]) T { return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W }

// Len2 returns the squared length.
func (a Vec4[T]) Len2() T { return a.Dot(a) }

// Len returns the length.
func (a Vec4[T]) Len() T { return scalar.Sqrt(a.Len2()) }

// Normalized returns a / |a|. A zero vector yields NaN components.
func (a Vec4[T]) Normalized() Vec4[T] { return a.Div(a.Len()) }

// TryNormalized is the checked form of Normalized.
func (a Vec4[T]) TryNormalized() (Vec4[T], error) {
	l := a.Len()
	if l == 0 {
		return Vec4[T]{}, ErrZeroLength
	}
	return a.Div(l), nil
}

// Map applies f to every component.
func (a Vec4[T]) Map(f func(T) T) Vec4[T] { return Vec4[T]{f(a.X), f(a.Y), f(a.Z), f(a.W)} }

// Lerp interpolates between a (t=0) and b (t=1).
func (a Vec4[T]) Lerp(b Vec4[T], t T) Vec4[T] { return a.Add(b.Sub(a).Mul(t)) }

// XYZ drops the W component.
func (a Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{a.X, a.Y, a.Z} }

// Array returns the components in declared order.
func (a Vec4[T]) Array() [4]T { return [4]T{a.X, a.Y, a.Z, a.W} }

// String formats the vector as "(x, y, ...)" using %v for each component.
func (a Vec4[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", a.X, a.Y, a.Z, a.W)
}

// Dot4 is the free-function form of Vec4.Dot.
func Dot4[T scalar.Float](a, b Vec4[T]) T { return a.Dot(b) }

// Extend3 appends w to v.
func Extend3[T scalar.Float](v Vec3[T], w T) Vec4[T] { return Vec4[T]{v.X, v.Y, v.Z, w} }
