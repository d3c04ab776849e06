// SPDX-License-Identifier: MIT

// Package lvmath is a small, generic maths core for real-time graphics and
// simulation code: vectors, square matrices, complex numbers, quaternions
// and colours, plus an escape-time fractal renderer built on top of them.
//
// 🚀 What is inside?
//
//	A value-typed, allocation-free library that brings together:
//		• Scalars: float32/float64 generics, epsilons, angle conversion, lerp
//		• Vectors: Vec2, Vec3, Vec4 with dot, cross, length, normalisation
//		• Matrices: column-major Mat2, Mat3, Mat4 with closed-form det/invert,
//		  Euler angles, axis-angle, look-at and perspective builders
//		• Imaginary: Complex powers/exp/ln and Hamilton quaternions
//		• Colour: RGB, HSV and HSLuv with hex parsing and hue-aware lerp
//		• Fractals: Multibrot, Multicorn and Lambda sets with Julia variants
//
// ✨ Conventions
//
//   - Every type is generic over float32 and float64 and copied by value.
//   - Core arithmetic never fails: degenerate input (zero-length vectors,
//     singular matrices) yields NaN/Inf the way IEEE-754 does.
//   - A checked layer (TryNormalized, TryInvert, TryDiv) reports the same
//     situations as sentinel errors matched with errors.Is.
//   - Matrices are column-major: element (row, col) of an N×N matrix lives
//     at index col*N + row, ready for upload to OpenGL or Vulkan.
//
// Packages:
//
//	scalar/     — Float constraint, epsilons, Radians/Degrees, Lerp, Clamp
//	vec/        — Vec2, Vec3, Vec4
//	mat/        — Mat2, Mat3, Mat4, rotation and projection builders
//	imaginary/  — Complex, Quaternion
//	color/      — Rgb, Hsv, Hsluv, Gradient
//	fractal/    — escape-time iteration and the concurrent Render
//	cmd/fractal — command-line renderer (PNG, JPEG, WebP, ...)
//
// Quick example:
//
//	axis := vec.New3(0.0, 0.0, 1.0)
//	q := imaginary.QuaternionFromAxisAngle(axis, math.Pi/2)
//	q.Rotate(vec.New3(1.0, 0.0, 0.0)) // ≈ (0, 1, 0)
//
//	go get github.com/katalvlaran/lvmath
package lvmath
