// SPDX-License-Identifier: MIT

package mat

import (
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vec"
)

// Mat2 is a 2×2 column-major matrix.
type Mat2[T scalar.Float] [4]T

// Identity2 returns the 2×2 identity.
func Identity2[T scalar.Float]() Mat2[T] { return Scale2[T](1) }

// Scale2 returns factor on the diagonal.
func Scale2[T scalar.Float](factor T) Mat2[T] { return Mat2[T]{factor, 0, 0, factor} }

// New2 wraps a column-major array.
func New2[T scalar.Float](a [4]T) Mat2[T] { return Mat2[T](a) }

// FromRows2 builds a matrix from its rows.
func FromRows2[T scalar.Float](r0, r1 vec.Vec2[T]) Mat2[T] {
	return Mat2[T]{r0.X, r1.X, r0.Y, r1.Y}
}

// FromCols2 builds a matrix from its columns.
func FromCols2[T scalar.Float](c0, c1 vec.Vec2[T]) Mat2[T] {
	return Mat2[T]{c0.X, c0.Y, c1.X, c1.Y}
}

// Rot2 returns the counter-clockwise rotation by phi radians.
func Rot2[T scalar.Float](phi T) Mat2[T] {
	c, s := scalar.Cos(phi), scalar.Sin(phi)
	return Mat2[T]{c, s, -s, c}
}

// At returns the element at (row, col), stored at index col*2+row.
// Indices are not checked beyond Go's array bounds.
func (m Mat2[T]) At(row, col int) T { return m[col*2+row] }

// Set writes v at (row, col) in place.
func (m *Mat2[T]) Set(row, col int, v T) { m[col*2+row] = v }

// Row returns row i.
func (m Mat2[T]) Row(i int) vec.Vec2[T] { return vec.Vec2[T]{m[i], m[2+i]} }

// Col returns column i, which is contiguous in storage.
func (m Mat2[T]) Col(i int) vec.Vec2[T] { return vec.Vec2[T]{m[i*2], m[i*2+1]} }

// Transpose swaps rows and columns.
func (m Mat2[T]) Transpose() Mat2[T] { return Mat2[T]{m[0], m[2], m[1], m[3]} }

// Det returns m00·m11 - m01·m10.
func (m Mat2[T]) Det() T { return m[0]*m[3] - m[2]*m[1] }

// Adjugate returns the transposed cofactor matrix, [[m11, -m01], [-m10, m00]].
func (m Mat2[T]) Adjugate() Mat2[T] { return Mat2[T]{m[3], -m[1], -m[2], m[0]} }

// Invert returns Adjugate()/Det(). A singular m yields NaN or ±Inf; use
// TryInvert to detect it.
func (m Mat2[T]) Invert() Mat2[T] { return m.Adjugate().DivScalar(m.Det()) }

// Neg returns -m.
func (m Mat2[T]) Neg() Mat2[T] { return m.MulScalar(-1) }

// Norm returns the Frobenius norm, sqrt of the sum of squared elements.
func (m Mat2[T]) Norm() T { return frobenius(m[:]) }

// MulVec returns m·v.
func (m Mat2[T]) MulVec(v vec.Vec2[T]) vec.Vec2[T] {
	return vec.Vec2[T]{m[0]*v.X + m[2]*v.Y, m[1]*v.X + m[3]*v.Y}
}

// TryInvert is the checked form of Invert.
func (m Mat2[T]) TryInvert(opts ...Option) (Mat2[T], error) {
	det := m.Det()
	if singular(float64(det), opts) {
		return Mat2[T]{}, ErrSingular
	}
	return m.Adjugate().DivScalar(det), nil
}

// Add returns the elementwise sum m + b.
func (m Mat2[T]) Add(b Mat2[T]) Mat2[T] {
	for i := range m {
		m[i] += b[i]
	}
	return m
}

// Sub returns the elementwise difference m - b.
func (m Mat2[T]) Sub(b Mat2[T]) Mat2[T] {
	for i := range m {
		m[i] -= b[i]
	}
	return m
}

// MulScalar scales every element by s.
func (m Mat2[T]) MulScalar(s T) Mat2[T] {
	for i := range m {
		m[i] *= s
	}
	return m
}

// DivScalar divides every element by s.
func (m Mat2[T]) DivScalar(s T) Mat2[T] {
	for i := range m {
		m[i] /= s
	}
	return m
}

// Mul returns the matrix product m·b.
func (m Mat2[T]) Mul(b Mat2[T]) Mat2[T] {
	var out Mat2[T]
	mul(out[:], m[:], b[:], 2)
	return out
}

// ConvertMat2 changes the scalar type of m.
func ConvertMat2[D, S scalar.Float](m Mat2[S]) Mat2[D] {
	var out Mat2[D]
	convert(out[:], m[:])
	return out
}
