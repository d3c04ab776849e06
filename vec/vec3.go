// SPDX-License-Identifier: MIT

package vec

import (
	"fmt"

	"github.com/katalvlaran/lvmath/scalar"
)

// Vec3 is a 3-component vector.
type Vec3[T scalar.Float] struct {
	X, Y, Z T
}

// New3 builds a Vec3 from its components.
func New3[T scalar.Float](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Zero3 returns (0, 0, 0).
func Zero3[T scalar.Float]() Vec3[T] { return Vec3[T]{} }

// One3 returns (1, 1, 1).
func One3[T scalar.Float]() Vec3[T] { return Vec3[T]{1, 1, 1} }

// Vec3X returns the basis vector (1, 0, 0).
func Vec3X[T scalar.Float]() Vec3[T] { return Vec3[T]{1, 0, 0} }

// Vec3Y returns the basis vector (0, 1, 0).
func Vec3Y[T scalar.Float]() Vec3[T] { return Vec3[T]{0, 1, 0} }

// Vec3Z returns the basis vector (0, 0, 1).
func Vec3Z[T scalar.Float]() Vec3[T] { return Vec3[T]{0, 0, 1} }

// Add returns a + b.
func (a Vec3[T]) Add(b Vec3[T]) Vec3[T] { return Vec3[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

// Sub returns a - b.
func (a Vec3[T]) Sub(b Vec3[T]) Vec3[T] { return Vec3[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// Mul scales every component by s.
func (a Vec3[T]) Mul(s T) Vec3[T] { return Vec3[T]{a.X * s, a.Y * s, a.Z * s} }

// Div divides every component by s. A zero s yields ±Inf or NaN.
func (a Vec3[T]) Div(s T) Vec3[T] { return Vec3[T]{a.X / s, a.Y / s, a.Z / s} }

// Neg returns -a.
func (a Vec3[T]) Neg() Vec3[T] { return Vec3[T]{-a.X, -a.Y, -a.Z} }

// MulComponents returns the componentwise (Hadamard) product.
func (a Vec3[T]) MulComponents(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// DivComponents returns the componentwise quotient.
func (a Vec3[T]) DivComponents(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X / b.X, a.Y / b.Y, a.Z / b.Z}
}

// Dot returns a·b.
func (a Vec3[T]) Dot(b Vec3[T]) T { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross returns the right-handed cross product a×b.
func (a Vec3[T]) Cross(b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Len2 returns the squared length.
func (a Vec3[T]) Len2() T { return a.X*a.X + a.Y*a.Y + a.Z*a.Z }

// Len returns the length.
func (a Vec3[T]) Len() T { return scalar.Sqrt(a.Len2()) }

// Normalized returns a / |a|. A zero vector yields NaN components.
func (a Vec3[T]) Normalized() Vec3[T] { return a.Div(a.Len()) }

// TryNormalized is the checked form of Normalized.
func (a Vec3[T]) TryNormalized() (Vec3[T], error) {
	l := a.Len()
	if l == 0 {
		return Vec3[T]{}, ErrZeroLength
	}
	return a.Div(l), nil
}

// Map applies f to every component.
func (a Vec3[T]) Map(f func(T) T) Vec3[T] { return Vec3[T]{f(a.X), f(a.Y), f(a.Z)} }

// Lerp interpolates between a (t=0) and b (t=1).
func (a Vec3[T]) Lerp(b Vec3[T], t T) Vec3[T] { return a.Add(b.Sub(a).Mul(t)) }

// Array returns the components in declared order.
func (a Vec3[T]) Array() [3]T { return [3]T{a.X, a.Y, a.Z} }

// String formats the vector as "(x, y, ...)" using %v for each component.
func (a Vec3[T]) String() string { return fmt.Sprintf("(%v, %v, %v)", a.X, a.Y, a.Z) }

// Dot3 is the free-function form of Vec3.Dot.
func Dot3[T scalar.Float](a, b Vec3[T]) T { return a.Dot(b) }

// Cross3 is the free-function form of Vec3.Cross.
func Cross3[T scalar.Float](a, b Vec3[T]) Vec3[T] { return a.Cross(b) }
