// SPDX-License-Identifier: MIT

// Package scalar is the numeric capability layer shared by every lvmath type.
//
// Vectors, matrices, complex numbers and quaternions are written once per
// arity and instantiated over any type satisfying Float (float32, float64 and
// named types built on them). This package supplies:
//
//   - Float / Number constraints (golang.org/x/exp/constraints),
//   - transcendental helpers (Sqrt, Sin, Cos, Atan2, Hypot, Exp, Log, ...)
//     that run in single precision for 4-byte floats via
//     github.com/chewxy/math32 and in double precision otherwise,
//   - Epsilon, angle conversion constants and small interpolation helpers.
//
// Every function is pure, allocation-free and safe for concurrent use.
package scalar
