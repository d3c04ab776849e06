// SPDX-License-Identifier: MIT

package mat

import (
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vec"
)

// Mat4 is a 4×4 column-major matrix.
type Mat4[T scalar.Float] [16]T

// Identity4 returns the 4×4 identity.
func Identity4[T scalar.Float]() Mat4[T] { return Scale4[T](1) }

// Scale4 returns factor on the diagonal.
func Scale4[T scalar.Float](factor T) Mat4[T] {
	return Mat4[T]{
		factor, 0, 0, 0,
		0, factor, 0, 0,
		0, 0, factor, 0,
		0, 0, 0, factor,
	}
}

// New4 wraps a column-major array.
func New4[T scalar.Float](a [16]T) Mat4[T] { return Mat4[T](a) }

// FromRows4 builds a matrix from its rows.
func FromRows4[T scalar.Float](r0, r1, r2, r3 vec.Vec4[T]) Mat4[T] {
	return Mat4[T]{
		r0.X, r1.X, r2.X, r3.X,
		r0.Y, r1.Y, r2.Y, r3.Y,
		r0.Z, r1.Z, r2.Z, r3.Z,
		r0.W, r1.W, r2.W, r3.W,
	}
}

// FromCols4 builds a matrix from its columns.
func FromCols4[T scalar.Float](c0, c1, c2, c3 vec.Vec4[T]) Mat4[T] {
	return Mat4[T]{
		c0.X, c0.Y, c0.Z, c0.W,
		c1.X, c1.Y, c1.Z, c1.W,
		c2.X, c2.Y, c2.Z, c2.W,
		c3.X, c3.Y, c3.Z, c3.W,
	}
}

// Perspective returns the projection matrix for a vertical field of view of
// fovDeg degrees, looking down +Z. Clip w takes the view-space z and the
// near plane maps to depth 0. Axis flips required by a particular graphics
// API are left to the caller.
func Perspective[T scalar.Float](fovDeg, aspect, near, far T) Mat4[T] {
	cot := 1 / scalar.Tan(scalar.Radians(fovDeg)/2)
	fn := 1 / (far - near)
	return Mat4[T]{
		cot / aspect, 0, 0, 0,
		0, cot, 0, 0,
		0, 0, fn, 1,
		0, 0, -near * fn, 0,
	}
}

// FromMat3Vec packs the linear part m and the translation v into an affine
// transform with bottom row (0, 0, 0, 1).
func FromMat3Vec[T scalar.Float](m Mat3[T], v vec.Vec3[T]) Mat4[T] {
	return Mat4[T]{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		v.X, v.Y, v.Z, 1,
	}
}

// ToMat3Vec is the inverse of FromMat3Vec. The bottom row is ignored.
func (m Mat4[T]) ToMat3Vec() (Mat3[T], vec.Vec3[T]) {
	return m.Mat3(), m.Translation()
}

// Mat3 returns the upper-left 3×3 block.
func (m Mat4[T]) Mat3() Mat3[T] {
	return Mat3[T]{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Translation returns the first three entries of the last column.
func (m Mat4[T]) Translation() vec.Vec3[T] { return vec.Vec3[T]{m[12], m[13], m[14]} }

// At returns the element at (row, col), stored at index col*4+row.
// Indices are not checked beyond Go's array bounds.
func (m Mat4[T]) At(row, col int) T { return m[col*4+row] }

// Set writes v at (row, col) in place.
func (m *Mat4[T]) Set(row, col int, v T) { m[col*4+row] = v }

// Row returns row i.
func (m Mat4[T]) Row(i int) vec.Vec4[T] {
	return vec.Vec4[T]{m[i], m[4+i], m[8+i], m[12+i]}
}

// Col returns column i, which is contiguous in storage.
func (m Mat4[T]) Col(i int) vec.Vec4[T] {
	return vec.Vec4[T]{m[i*4], m[i*4+1], m[i*4+2], m[i*4+3]}
}

// Transpose swaps rows and columns.
func (m Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// minors4 holds the twelve 2×2 minors shared by Det and Adjugate: b00..b05
// are taken from columns 0 and 1, b06..b11 from columns 2 and 3.
type minors4[T scalar.Float] [12]T

func (m *Mat4[T]) minors() minors4[T] {
	return minors4[T]{
		m[0]*m[5] - m[1]*m[4],
		m[0]*m[6] - m[2]*m[4],
		m[0]*m[7] - m[3]*m[4],
		m[1]*m[6] - m[2]*m[5],
		m[1]*m[7] - m[3]*m[5],
		m[2]*m[7] - m[3]*m[6],
		m[8]*m[13] - m[9]*m[12],
		m[8]*m[14] - m[10]*m[12],
		m[8]*m[15] - m[11]*m[12],
		m[9]*m[14] - m[10]*m[13],
		m[9]*m[15] - m[11]*m[13],
		m[10]*m[15] - m[11]*m[14],
	}
}

// Det returns the determinant as the Laplace expansion over complementary
// 2×2 minors of columns (0, 1) and (2, 3).
func (m Mat4[T]) Det() T {
	b := m.minors()
	return b[0]*b[11] - b[1]*b[10] + b[2]*b[9] + b[3]*b[8] - b[4]*b[7] + b[5]*b[6]
}

// Adjugate returns the transposed cofactor matrix.
func (m Mat4[T]) Adjugate() Mat4[T] {
	b := m.minors()
	return Mat4[T]{
		m[5]*b[11] - m[6]*b[10] + m[7]*b[9],
		m[2]*b[10] - m[1]*b[11] - m[3]*b[9],
		m[13]*b[5] - m[14]*b[4] + m[15]*b[3],
		m[10]*b[4] - m[9]*b[5] - m[11]*b[3],

		m[6]*b[8] - m[4]*b[11] - m[7]*b[7],
		m[0]*b[11] - m[2]*b[8] + m[3]*b[7],
		m[14]*b[2] - m[12]*b[5] - m[15]*b[1],
		m[8]*b[5] - m[10]*b[2] + m[11]*b[1],

		m[4]*b[10] - m[5]*b[8] + m[7]*b[6],
		m[1]*b[8] - m[0]*b[10] - m[3]*b[6],
		m[12]*b[4] - m[13]*b[2] + m[15]*b[0],
		m[9]*b[2] - m[8]*b[4] - m[11]*b[0],

		m[5]*b[7] - m[4]*b[9] - m[6]*b[6],
		m[0]*b[9] - m[1]*b[7] + m[2]*b[6],
		m[13]*b[1] - m[12]*b[3] - m[14]*b[0],
		m[8]*b[3] - m[9]*b[1] + m[10]*b[0],
	}
}

// Invert returns Adjugate()/Det(). A singular m yields NaN or ±Inf.
func (m Mat4[T]) Invert() Mat4[T] { return m.Adjugate().DivScalar(m.Det()) }

// TryInvert is the checked form of Invert.
func (m Mat4[T]) TryInvert(opts ...Option) (Mat4[T], error) {
	det := m.Det()
	if singular(float64(det), opts) {
		return Mat4[T]{}, ErrSingular
	}
	return m.Adjugate().DivScalar(det), nil
}

// Add returns the elementwise sum m + b.
func (m Mat4[T]) Add(b Mat4[T]) Mat4[T] {
	for i := range m {
		m[i] += b[i]
	}
	return m
}

// Sub returns the elementwise difference m - b.
func (m Mat4[T]) Sub(b Mat4[T]) Mat4[T] {
	for i := range m {
		m[i] -= b[i]
	}
	return m
}

// MulScalar scales every element by s.
func (m Mat4[T]) MulScalar(s T) Mat4[T] {
	for i := range m {
		m[i] *= s
	}
	return m
}

// DivScalar divides every element by s.
func (m Mat4[T]) DivScalar(s T) Mat4[T] {
	for i := range m {
		m[i] /= s
	}
	return m
}

// Neg returns -m.
func (m Mat4[T]) Neg() Mat4[T] { return m.MulScalar(-1) }

// Norm returns the Frobenius norm, sqrt of the sum of squared elements.
func (m Mat4[T]) Norm() T { return frobenius(m[:]) }

// Mul returns the matrix product m·b.
func (m Mat4[T]) Mul(b Mat4[T]) Mat4[T] {
	var out Mat4[T]
	mul(out[:], m[:], b[:], 4)
	return out
}

// MulVec returns m·v.
func (m Mat4[T]) MulVec(v vec.Vec4[T]) vec.Vec4[T] {
	return m.Col(0).Mul(v.X).Add(m.Col(1).Mul(v.Y)).Add(m.Col(2).Mul(v.Z)).Add(m.Col(3).Mul(v.W))
}

// ConvertMat4 changes the scalar type of m.
func ConvertMat4[D, S scalar.Float](m Mat4[S]) Mat4[D] {
	var out Mat4[D]
	convert(out[:], m[:])
	return out
}
