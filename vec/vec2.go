// SPDX-License-Identifier: MIT

package vec

import (
	"fmt"

	"github.com/katalvlaran/lvmath/scalar"
)

// Vec2 is a 2-component vector.
type Vec2[T scalar.Float] struct {
	X, Y T
}

// New2 builds a Vec2 from its components.
func New2[T scalar.Float](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Zero2 returns (0, 0).
func Zero2[T scalar.Float]() Vec2[T] { return Vec2[T]{} }

// One2 returns (1, 1).
func One2[T scalar.Float]() Vec2[T] { return Vec2[T]{1, 1} }

// Vec2X returns the basis vector (1, 0).
func Vec2X[T scalar.Float]() Vec2[T] { return Vec2[T]{1, 0} }

// Vec2Y returns the basis vector (0, 1).
func Vec2Y[T scalar.Float]() Vec2[T] { return Vec2[T]{0, 1} }

// Add returns a + b.
func (a Vec2[T]) Add(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X + b.X, a.Y + b.Y} }

// Sub returns a - b.
func (a Vec2[T]) Sub(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X - b.X, a.Y - b.Y} }

// Mul scales every component by s.
func (a Vec2[T]) Mul(s T) Vec2[T] { return Vec2[T]{a.X * s, a.Y * s} }

// Div divides every component by s. A zero s yields ±Inf or NaN.
func (a Vec2[T]) Div(s T) Vec2[T] { return Vec2[T]{a.X / s, a.Y / s} }

// Neg returns -a.
func (a Vec2[T]) Neg() Vec2[T] { return Vec2[T]{-a.X, -a.Y} }

// MulComponents returns the componentwise (Hadamard) product.
func (a Vec2[T]) MulComponents(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X * b.X, a.Y * b.Y} }

// DivComponents returns the componentwise quotient.
func (a Vec2[T]) DivComponents(b Vec2[T]) Vec2[T] { return Vec2[T]{a.X / b.X, a.Y / b.Y} }

// Dot returns a·b.
func (a Vec2[T]) Dot(b Vec2[T]) T { return a.X*b.X + a.Y*b.Y }

// Cross returns the z component of the 3D cross product of a and b embedded
// in the xy-plane: a.X*b.Y - a.Y*b.X.
func (a Vec2[T]) Cross(b Vec2[T]) T { return a.X*b.Y - a.Y*b.X }

// Len2 returns the squared length.
func (a Vec2[T]) Len2() T { return a.X*a.X + a.Y*a.Y }

// Len returns the length, computed with Hypot to limit overflow.
func (a Vec2[T]) Len() T { return scalar.Hypot(a.X, a.Y) }

// Normalized returns a / |a|. A zero vector yields NaN components.
func (a Vec2[T]) Normalized() Vec2[T] { return a.Div(a.Len()) }

// TryNormalized is the checked form of Normalized.
func (a Vec2[T]) TryNormalized() (Vec2[T], error) {
	l := a.Len()
	if l == 0 {
		return Vec2[T]{}, ErrZeroLength
	}
	return a.Div(l), nil
}

// Map applies f to every component.
func (a Vec2[T]) Map(f func(T) T) Vec2[T] { return Vec2[T]{f(a.X), f(a.Y)} }

// Lerp interpolates between a (t=0) and b (t=1).
func (a Vec2[T]) Lerp(b Vec2[T], t T) Vec2[T] { return a.Add(b.Sub(a).Mul(t)) }

// Array returns the components in declared order.
func (a Vec2[T]) Array() [2]T { return [2]T{a.X, a.Y} }

// String formats the vector as "(x, y, ...)" using %v for each component.
func (a Vec2[T]) String() string { return fmt.Sprintf("(%v, %v)", a.X, a.Y) }

// Dot2 is the free-function form of Vec2.Dot.
func Dot2[T scalar.Float](a, b Vec2[T]) T { return a.Dot(b) }

// Cross2 is the free-function form of Vec2.Cross.
func Cross2[T scalar.Float](a, b Vec2[T]) T { return a.Cross(b) }
