// SPDX-License-Identifier: MIT

// Package vec provides fixed-arity vectors (Vec2, Vec3, Vec4) generic over
// a scalar.Float component type.
//
// Vectors are plain value types: components are laid out contiguously in
// declared order (X, Y[, Z[, W]]) with no padding, so a []Vec3[float32] can be
// uploaded to a vertex buffer as-is. Every method takes and returns values;
// nothing allocates, locks or logs.
//
// Domain errors are not reported: normalizing a zero vector yields NaN
// components through ordinary IEEE-754 arithmetic. Callers who prefer an
// explicit error use TryNormalized, which returns ErrZeroLength instead.
//
//	a := vec.New3(1.0, 0.0, 0.0)
//	b := vec.New3(0.0, 1.0, 0.0)
//	n := a.Cross(b)          // (0, 0, 1)
//	d := vec.Dot3(n, a)      // 0
package vec
