// SPDX-License-Identifier: MIT

package scalar

import "math"

// Angle conversion factors.
const (
	DegToRad64 float64 = math.Pi / 180.0
	DegToRad32 float32 = math.Pi / 180.0
	RadToDeg64 float64 = 180.0 / math.Pi
	RadToDeg32 float32 = 180.0 / math.Pi
)

// Radians converts an angle in degrees to radians.
func Radians[T Float](deg T) T {
	return deg * T(DegToRad64)
}

// Degrees converts an angle in radians to degrees.
func Degrees[T Float](rad T) T {
	return rad * T(RadToDeg64)
}
