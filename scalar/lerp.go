// SPDX-License-Identifier: MIT

package scalar

// Lerp interpolates linearly between a (t=0) and b (t=1).
// t is not clamped; values outside [0,1] extrapolate.
func Lerp[T Float](a, b, t T) T {
	return a + (b-a)*t
}

// LinearFunc returns y of the point (x, y) lying on the line through
// (x0, y0) and (x1, y1). x0 == x1 divides by zero.
func LinearFunc[T Number](x0, y0, x1, y1, x T) T {
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}

// Clamp limits v to [lo, hi].
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
