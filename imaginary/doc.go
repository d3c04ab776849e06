// SPDX-License-Identifier: MIT

// Package imaginary implements complex numbers and quaternions generic over
// scalar.Float.
//
// Complex[T] is deliberately a separate type from vec.Vec2[T]: its Mul and
// Div are the complex product and quotient, not componentwise operations.
// Quaternion[T] pairs a scalar part with a vec.Vec3[T] vector part and
// multiplies with the Hamilton product, which is not commutative.
//
// As in the rest of lvmath, domain errors surface as NaN or ±Inf. Dividing
// by a zero complex number or inverting a zero quaternion is not reported;
// use TryDiv and TryInvert when an explicit error is wanted.
//
// Two branches are intentional:
//   - Quaternion.Exp and Quaternion.Ln fall back to a pure-scalar result when
//     the vector part is shorter than scalar.Epsilon, instead of dividing by
//     a near-zero length.
//   - Complex.Powf and Complex.Powc return the exponent itself when the base
//     is exactly zero.
package imaginary
