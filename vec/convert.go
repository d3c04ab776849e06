// SPDX-License-Identifier: MIT

package vec

import (
	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/lvmath/scalar"
)

// Convert2 changes the component type of v.
func Convert2[D, S scalar.Float](v Vec2[S]) Vec2[D] { return Vec2[D]{D(v.X), D(v.Y)} }

// Convert3 changes the component type of v.
func Convert3[D, S scalar.Float](v Vec3[S]) Vec3[D] { return Vec3[D]{D(v.X), D(v.Y), D(v.Z)} }

// Convert4 changes the component type of v.
func Convert4[D, S scalar.Float](v Vec4[S]) Vec4[D] {
	return Vec4[D]{D(v.X), D(v.Y), D(v.Z), D(v.W)}
}

// F32 converts the vector to its golang.org/x/image/math/f32 counterpart.
func (a Vec2[T]) F32() f32.Vec2 { return f32.Vec2{float32(a.X), float32(a.Y)} }

// F32 converts the vector to its golang.org/x/image/math/f32 counterpart.
func (a Vec3[T]) F32() f32.Vec3 { return f32.Vec3{float32(a.X), float32(a.Y), float32(a.Z)} }

// F32 converts the vector to its golang.org/x/image/math/f32 counterpart.
func (a Vec4[T]) F32() f32.Vec4 {
	return f32.Vec4{float32(a.X), float32(a.Y), float32(a.Z), float32(a.W)}
}
