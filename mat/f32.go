// SPDX-License-Identifier: MIT

package mat

import "golang.org/x/image/math/f32"

// F32 exports m in the row-major layout of golang.org/x/image/math/f32.
func (m Mat3[T]) F32() f32.Mat3 {
	var out f32.Mat3
	transposeInto(out[:], m[:], 3)
	return out
}

// F32 exports m in the row-major layout of golang.org/x/image/math/f32.
func (m Mat4[T]) F32() f32.Mat4 {
	var out f32.Mat4
	transposeInto(out[:], m[:], 4)
	return out
}
