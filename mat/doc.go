// SPDX-License-Identifier: MIT

// Package mat provides fixed-size square matrices (Mat2, Mat3, Mat4) generic
// over scalar.Float.
//
// Storage is column-major: a MatN is an [N*N]T array and element (row, col)
// lives at index col*N + row. The array can therefore be handed to a
// graphics API expecting column-major data without copying or transposing.
//
//	m := mat.Yaw(math.Pi / 2)           // rotation about +Z
//	p := m.MulVec(vec.New3(1.0, 0, 0))  // ≈ (0, 1, 0)
//
// Determinants and inverses use closed-form cofactor expansion. Invert does
// not check the determinant: a singular matrix produces NaN or ±Inf. The
// checked TryInvert rejects |det| < eps with ErrSingular, where eps defaults
// to DefaultEpsilon and is changed with WithEpsilon.
//
// Mat3 carries the rotation constructors (Yaw, Pitch, Roll, YawPitchRoll,
// FromAxisAngle, FromQuat, LookAt) and Euler-angle extraction. Mat4 carries
// Perspective and the affine packing helpers FromMat3Vec / ToMat3Vec.
package mat
