// SPDX-License-Identifier: MIT

package mat

import (
	"github.com/katalvlaran/lvmath/imaginary"
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vec"
)

// gimbalLockCos is the |cos(pitch)| below which EulerAngles treats the matrix
// as gimbal-locked.
const gimbalLockCos = 1e-6

// Yaw returns the rotation by phi radians about +Z.
func Yaw[T scalar.Float](phi T) Mat3[T] {
	c, s := scalar.Cos(phi), scalar.Sin(phi)
	return Mat3[T]{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

// Pitch returns the rotation by theta radians about +Y.
func Pitch[T scalar.Float](theta T) Mat3[T] {
	c, s := scalar.Cos(theta), scalar.Sin(theta)
	return Mat3[T]{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	}
}

// Roll returns the rotation by psi radians about +X.
func Roll[T scalar.Float](psi T) Mat3[T] {
	c, s := scalar.Cos(psi), scalar.Sin(psi)
	return Mat3[T]{
		1, 0, 0,
		0, c, s,
		0, -s, c,
	}
}

// YawPitchRoll returns Yaw(yaw)·Pitch(pitch)·Roll(roll) in closed form.
func YawPitchRoll[T scalar.Float](yaw, pitch, roll T) Mat3[T] {
	cy, sy := scalar.Cos(yaw), scalar.Sin(yaw)
	cp, sp := scalar.Cos(pitch), scalar.Sin(pitch)
	cr, sr := scalar.Cos(roll), scalar.Sin(roll)
	return Mat3[T]{
		cy * cp, sy * cp, -sp,
		cy*sp*sr - sy*cr, sy*sp*sr + cy*cr, cp * sr,
		cy*sp*cr + sy*sr, sy*sp*cr - cy*sr, cp * cr,
	}
}

// EulerAngles recovers (yaw, pitch, roll) such that YawPitchRoll of the
// result reproduces m, for a pure rotation m.
//
// Near pitch = ±90° yaw and roll describe the same axis. When
// hypot(m00, m10) < 1e-6 yaw is reported as 0 and roll absorbs the whole
// rotation about that axis; reconstruction is then only accurate to ~1e-3.
func (m Mat3[T]) EulerAngles() (yaw, pitch, roll T) {
	sy := scalar.Hypot(m.At(0, 0), m.At(1, 0))
	if sy >= gimbalLockCos {
		yaw = scalar.Atan2(m.At(1, 0), m.At(0, 0))
		pitch = scalar.Atan2(-m.At(2, 0), sy)
		roll = scalar.Atan2(m.At(2, 1), m.At(2, 2))
		return yaw, pitch, roll
	}
	pitch = scalar.Atan2(-m.At(2, 0), sy)
	roll = scalar.Atan2(-m.At(1, 2), m.At(1, 1))
	return 0, pitch, roll
}

// FromAxisAngle returns the rotation by angle radians about axis
// (Rodrigues' formula). axis is normalized first and must be non-zero.
func FromAxisAngle[T scalar.Float](axis vec.Vec3[T], angle T) Mat3[T] {
	n := axis.Normalized()
	x, y, z := n.X, n.Y, n.Z
	c, s := scalar.Cos(angle), scalar.Sin(angle)
	t := 1 - c
	return Mat3[T]{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c,
	}
}

// FromQuat returns the rotation matrix of the unit quaternion q.
func FromQuat[T scalar.Float](q imaginary.Quaternion[T]) Mat3[T] {
	s := q.Scalar
	x, y, z := q.Vector.X, q.Vector.Y, q.Vector.Z
	return Mat3[T]{
		1 - 2*y*y - 2*z*z, 2*x*y + 2*s*z, 2*x*z - 2*s*y,
		2*x*y - 2*s*z, 1 - 2*x*x - 2*z*z, 2*y*z + 2*s*x,
		2*x*z + 2*s*y, 2*y*z - 2*s*x, 1 - 2*x*x - 2*y*y,
	}
}

// LookAt returns the camera basis at pos facing target: the columns are
// right = normalize(up × forward), the recomputed up = forward × right, and
// forward = normalize(target - pos).
func LookAt[T scalar.Float](pos, target, up vec.Vec3[T]) Mat3[T] {
	forward := target.Sub(pos).Normalized()
	right := up.Cross(forward).Normalized()
	return FromCols3(right, forward.Cross(right), forward)
}
