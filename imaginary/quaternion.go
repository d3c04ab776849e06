// SPDX-License-Identifier: MIT

package imaginary

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vec"
)

// Quaternion is Scalar + Vector.X·i + Vector.Y·j + Vector.Z·k.
//
// Rotation quaternions are expected to have unit length; the type does not
// enforce it.
type Quaternion[T scalar.Float] struct {
	Scalar T
	Vector vec.Vec3[T]
}

// NewQuaternion returns s + v.
func NewQuaternion[T scalar.Float](s T, v vec.Vec3[T]) Quaternion[T] {
	return Quaternion[T]{Scalar: s, Vector: v}
}

// QuaternionFromScalar returns s + 0.
func QuaternionFromScalar[T scalar.Float](s T) Quaternion[T] { return Quaternion[T]{Scalar: s} }

// QuaternionFromComplex embeds re + im·i as re + im·i + 0j + 0k.
func QuaternionFromComplex[T scalar.Float](c Complex[T]) Quaternion[T] {
	return Quaternion[T]{Scalar: c.Re, Vector: vec.Vec3[T]{X: c.Im}}
}

// QuaternionIdentity returns 1, the identity rotation.
func QuaternionIdentity[T scalar.Float]() Quaternion[T] { return Quaternion[T]{Scalar: 1} }

// QuaternionFromAxisAngle returns the unit quaternion rotating by angle
// radians about axis. axis need not be normalized but must be non-zero.
func QuaternionFromAxisAngle[T scalar.Float](axis vec.Vec3[T], angle T) Quaternion[T] {
	half := angle / 2
	return Quaternion[T]{
		Scalar: scalar.Cos(half),
		Vector: axis.Normalized().Mul(scalar.Sin(half)),
	}
}

// Add returns q + r.
func (q Quaternion[T]) Add(r Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.Scalar + r.Scalar, q.Vector.Add(r.Vector)}
}

// Sub returns q - r.
func (q Quaternion[T]) Sub(r Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.Scalar - r.Scalar, q.Vector.Sub(r.Vector)}
}

// Neg returns -q.
func (q Quaternion[T]) Neg() Quaternion[T] { return Quaternion[T]{-q.Scalar, q.Vector.Neg()} }

// Mul returns the Hamilton product q·r.
func (q Quaternion[T]) Mul(r Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		Scalar: q.Scalar*r.Scalar - q.Vector.Dot(r.Vector),
		Vector: r.Vector.Mul(q.Scalar).Add(q.Vector.Mul(r.Scalar)).Add(q.Vector.Cross(r.Vector)),
	}
}

// MulScalar scales all four components by s.
func (q Quaternion[T]) MulScalar(s T) Quaternion[T] {
	return Quaternion[T]{q.Scalar * s, q.Vector.Mul(s)}
}

// DivScalar divides all four components by s.
func (q Quaternion[T]) DivScalar(s T) Quaternion[T] {
	return Quaternion[T]{q.Scalar / s, q.Vector.Div(s)}
}

// Div returns q·conj(r)/|r|², i.e. q·r⁻¹.
func (q Quaternion[T]) Div(r Quaternion[T]) Quaternion[T] {
	return q.Mul(r.Conjugate()).DivScalar(r.Len2())
}

// Conjugate negates the vector part.
func (q Quaternion[T]) Conjugate() Quaternion[T] { return Quaternion[T]{q.Scalar, q.Vector.Neg()} }

// Len2 returns |q|², the sum of the squared components.
func (q Quaternion[T]) Len2() T { return q.Scalar*q.Scalar + q.Vector.Len2() }

// Len returns |q|.
func (q Quaternion[T]) Len() T { return scalar.Sqrt(q.Len2()) }

// LnLen returns ln|q|.
func (q Quaternion[T]) LnLen() T { return scalar.Log(q.Len2()) / 2 }

// Normalized returns q/|q|.
func (q Quaternion[T]) Normalized() Quaternion[T] { return q.DivScalar(q.Len()) }

// Invert returns conj(q)/|q|². The zero quaternion yields NaN.
func (q Quaternion[T]) Invert() Quaternion[T] { return q.Conjugate().DivScalar(q.Len2()) }

// TryInvert is the checked form of Invert.
func (q Quaternion[T]) TryInvert() (Quaternion[T], error) {
	l2 := q.Len2()
	if l2 == 0 {
		return Quaternion[T]{}, ErrZeroLength
	}
	return q.Conjugate().DivScalar(l2), nil
}

// Rotate returns the vector part of q·(0, p)·conj(q). q must be a unit
// quaternion.
func (q Quaternion[T]) Rotate(p vec.Vec3[T]) vec.Vec3[T] {
	return q.Mul(Quaternion[T]{Vector: p}).Mul(q.Conjugate()).Vector
}

// Exp returns e^q.
func (q Quaternion[T]) Exp() Quaternion[T] {
	es := scalar.Exp(q.Scalar)
	lv := q.Vector.Len()
	if lv < scalar.Epsilon[T]() {
		return Quaternion[T]{Scalar: es}
	}
	return Quaternion[T]{
		Scalar: es * scalar.Cos(lv),
		Vector: q.Vector.Mul(es * scalar.Sin(lv) / lv),
	}
}

// Ln returns the principal logarithm of q, with the rotation angle taken as
// atan2(|v|, s). A negative real q has no unique axis; its logarithm uses
// (π, 0, 0) so that Exp maps it back to q.
func (q Quaternion[T]) Ln() Quaternion[T] {
	lnLen := q.LnLen()
	lv := q.Vector.Len()
	if lv < scalar.Epsilon[T]() {
		if q.Scalar < 0 {
			return Quaternion[T]{Scalar: lnLen, Vector: vec.Vec3[T]{X: T(math.Pi)}}
		}
		return Quaternion[T]{Scalar: lnLen}
	}
	return Quaternion[T]{
		Scalar: lnLen,
		Vector: q.Vector.Mul(scalar.Atan2(lv, q.Scalar) / lv),
	}
}

// AxisAngle returns the normalized rotation axis of a unit q and half its
// rotation angle, atan2(|v|, s). The axis is NaN for the identity.
func (q Quaternion[T]) AxisAngle() (axis vec.Vec3[T], halfAngle T) {
	sin := q.Vector.Len()
	return q.Vector.Div(sin), scalar.Atan2(sin, q.Scalar)
}

// ConvertQuaternion changes the scalar type of q.
func ConvertQuaternion[D, S scalar.Float](q Quaternion[S]) Quaternion[D] {
	return Quaternion[D]{D(q.Scalar), vec.Convert3[D](q.Vector)}
}

// String formats q as "s + xi - yj + zk".
func (q Quaternion[T]) String() string {
	return fmt.Sprintf("%v %s %vi %s %vj %s %vk", q.Scalar,
		sign(q.Vector.X), scalar.Abs(q.Vector.X),
		sign(q.Vector.Y), scalar.Abs(q.Vector.Y),
		sign(q.Vector.Z), scalar.Abs(q.Vector.Z))
}

func sign[T scalar.Float](x T) string {
	if x < 0 {
		return "-"
	}
	return "+"
}
