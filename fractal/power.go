// SPDX-License-Identifier: MIT

package fractal

import "github.com/katalvlaran/lvmath/imaginary"

// Point is a point of the complex plane.
type Point = imaginary.Complex[float64]

// Power raises a complex number to a fixed exponent.
type Power interface {
	Pow(z Point) Point
	// Real returns the real part of the exponent, used as the base of the
	// smoothing logarithm.
	Real() float64
}

// IntPower raises by repeated squaring.
type IntPower uint32

// Pow returns z raised to p via Powi.
func (p IntPower) Pow(z Point) Point { return z.Powi(uint32(p)) }

// Real returns p as a float64.
func (p IntPower) Real() float64 { return float64(p) }

// FloatPower raises to a real exponent.
type FloatPower float64

// Pow returns z raised to p via Powf.
func (p FloatPower) Pow(z Point) Point { return z.Powf(float64(p)) }

// Real returns p as a float64.
func (p FloatPower) Real() float64 { return float64(p) }

// ComplexPower raises to a complex exponent.
type ComplexPower Point

// Pow returns z raised to p via Powc.
func (p ComplexPower) Pow(z Point) Point { return z.Powc(Point(p)) }

// Real returns the real part of the exponent.
func (p ComplexPower) Real() float64 { return p.Re }
