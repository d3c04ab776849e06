// SPDX-License-Identifier: MIT

package mat

import (
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vec"
)

// Mat3 is a 3×3 column-major matrix.
type Mat3[T scalar.Float] [9]T

// Identity3 returns the 3×3 identity.
func Identity3[T scalar.Float]() Mat3[T] { return Scale3[T](1) }

// Scale3 returns factor on the diagonal.
func Scale3[T scalar.Float](factor T) Mat3[T] {
	return Mat3[T]{factor, 0, 0, 0, factor, 0, 0, 0, factor}
}

// New3 wraps a column-major array.
func New3[T scalar.Float](a [9]T) Mat3[T] { return Mat3[T](a) }

// FromRows3 builds a matrix from its rows.
func FromRows3[T scalar.Float](r0, r1, r2 vec.Vec3[T]) Mat3[T] {
	return Mat3[T]{
		r0.X, r1.X, r2.X,
		r0.Y, r1.Y, r2.Y,
		r0.Z, r1.Z, r2.Z,
	}
}

// FromCols3 builds a matrix from its columns.
func FromCols3[T scalar.Float](c0, c1, c2 vec.Vec3[T]) Mat3[T] {
	return Mat3[T]{
		c0.X, c0.Y, c0.Z,
		c1.X, c1.Y, c1.Z,
		c2.X, c2.Y, c2.Z,
	}
}

// At returns the element at (row, col), stored at index col*3+row.
// Indices are not checked beyond Go's array bounds.
func (m Mat3[T]) At(row, col int) T { return m[col*3+row] }

// Set writes v at (row, col) in place.
func (m *Mat3[T]) Set(row, col int, v T) { m[col*3+row] = v }

// Row returns row i.
func (m Mat3[T]) Row(i int) vec.Vec3[T] { return vec.Vec3[T]{m[i], m[3+i], m[6+i]} }

// Col returns column i.
func (m Mat3[T]) Col(i int) vec.Vec3[T] { return vec.Vec3[T]{m[i*3], m[i*3+1], m[i*3+2]} }

// Transpose swaps rows and columns.
func (m Mat3[T]) Transpose() Mat3[T] {
	return Mat3[T]{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Det returns the determinant by cofactor expansion along the first row.
func (m Mat3[T]) Det() T {
	a, b, c := m[0], m[3], m[6]
	d, e, f := m[1], m[4], m[7]
	g, h, i := m[2], m[5], m[8]
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// Adjugate returns the transposed cofactor matrix, so that
// m.Mul(m.Adjugate()) == Scale3(m.Det()).
func (m Mat3[T]) Adjugate() Mat3[T] {
	a, b, c := m[0], m[3], m[6]
	d, e, f := m[1], m[4], m[7]
	g, h, i := m[2], m[5], m[8]
	return FromRows3(
		vec.Vec3[T]{e*i - f*h, c*h - b*i, b*f - c*e},
		vec.Vec3[T]{f*g - d*i, a*i - c*g, c*d - a*f},
		vec.Vec3[T]{d*h - e*g, b*g - a*h, a*e - b*d},
	)
}

// Invert returns Adjugate()/Det(). A singular m yields NaN or ±Inf.
func (m Mat3[T]) Invert() Mat3[T] { return m.Adjugate().DivScalar(m.Det()) }

// TryInvert is the checked form of Invert.
func (m Mat3[T]) TryInvert(opts ...Option) (Mat3[T], error) {
	det := m.Det()
	if singular(float64(det), opts) {
		return Mat3[T]{}, ErrSingular
	}
	return m.Adjugate().DivScalar(det), nil
}

// Add returns the elementwise sum m + b.
func (m Mat3[T]) Add(b Mat3[T]) Mat3[T] {
	for i := range m {
		m[i] += b[i]
	}
	return m
}

// Sub returns the elementwise difference m - b.
func (m Mat3[T]) Sub(b Mat3[T]) Mat3[T] {
	for i := range m {
		m[i] -= b[i]
	}
	return m
}

// MulScalar scales every element by s.
func (m Mat3[T]) MulScalar(s T) Mat3[T] {
	for i := range m {
		m[i] *= s
	}
	return m
}

// DivScalar divides every element by s.
func (m Mat3[T]) DivScalar(s T) Mat3[T] {
	for i := range m {
		m[i] /= s
	}
	return m
}

// Neg returns -m.
func (m Mat3[T]) Neg() Mat3[T] { return m.MulScalar(-1) }

// Norm returns the Frobenius norm.
func (m Mat3[T]) Norm() T { return frobenius(m[:]) }

// Mul returns the matrix product m·b.
func (m Mat3[T]) Mul(b Mat3[T]) Mat3[T] {
	var out Mat3[T]
	mul(out[:], m[:], b[:], 3)
	return out
}

// MulVec returns m·v.
func (m Mat3[T]) MulVec(v vec.Vec3[T]) vec.Vec3[T] {
	return vec.Vec3[T]{
		X: m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		Y: m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		Z: m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// ConvertMat3 changes the scalar type of m.
func ConvertMat3[D, S scalar.Float](m Mat3[S]) Mat3[D] {
	var out Mat3[D]
	convert(out[:], m[:])
	return out
}
