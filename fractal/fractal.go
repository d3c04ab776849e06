// SPDX-License-Identifier: MIT

package fractal

import "math"

// Fractal defines one escape-time iteration.
type Fractal interface {
	// StartPoint returns z₀ for the pixel at c.
	StartPoint(c Point) Point
	// Step returns the next z.
	Step(z, c Point) Point
	// Smooth maps the escaped z after counter steps to a continuous
	// iteration count.
	Smooth(z, c Point, counter uint64, lengthBound float64) float64
}

// Iterate runs f for the pixel at c until |z|² reaches lengthBound or
// iterationBound steps were taken. It reports the smoothed escape value and
// whether the point escaped; points that never escape return (0, false).
func Iterate(f Fractal, c Point, iterationBound uint64, lengthBound float64) (float64, bool) {
	var counter uint64
	z := f.StartPoint(c)
	for counter < iterationBound && z.Len2() < lengthBound {
		z = f.Step(z, c)
		counter++
	}
	if counter == iterationBound {
		return 0, false
	}
	return f.Smooth(z, c, counter, lengthBound), true
}

// smooth is the normalized iteration count for escape radius² lengthBound.
func smooth(p float64, z Point, counter uint64, lengthBound float64) float64 {
	return float64(counter+1) - math.Log(math.Log(z.Len2())/math.Log(lengthBound))/math.Log(p)
}

// smoothLambda is smooth for z ← λ·(z − zᵖ), where the escape radius is
// scaled by |λ|.
func smoothLambda(p float64, z Point, counter uint64, lengthBound float64, lambda Point) float64 {
	l := lambda.Len()
	b := l * lengthBound
	return float64(counter+1) - math.Log(math.Log(z.Len()*l)/math.Log(b))/math.Log(p)
}

// Multibrot iterates z ← zᵖ + c from a fixed start.
type Multibrot struct {
	Start Point
	Power Power
}

// StartPoint returns the fixed Start, whatever the pixel.
func (f Multibrot) StartPoint(Point) Point { return f.Start }

// Step applies one iteration with the pixel as parameter.
func (f Multibrot) Step(z, c Point) Point { return f.Power.Pow(z).Add(c) }

// Smooth returns the normalized iteration count.
func (f Multibrot) Smooth(z, _ Point, n uint64, b float64) float64 {
	return smooth(f.Power.Real(), z, n, b)
}

// MultibrotJulia iterates z ← zᵖ + Center starting at the pixel.
type MultibrotJulia struct {
	Center Point
	Power  Power
}

// StartPoint returns the pixel itself.
func (f MultibrotJulia) StartPoint(c Point) Point { return c }

// Step applies one iteration with the fixed Center.
func (f MultibrotJulia) Step(z, _ Point) Point { return f.Power.Pow(z).Add(f.Center) }

// Smooth returns the normalized iteration count.
func (f MultibrotJulia) Smooth(z, _ Point, n uint64, b float64) float64 {
	return smooth(f.Power.Real(), z, n, b)
}

// Multicorn iterates z ← conj(z)ᵖ + c from a fixed start.
type Multicorn struct {
	Start Point
	Power Power
}

// StartPoint returns the fixed Start, whatever the pixel.
func (f Multicorn) StartPoint(Point) Point { return f.Start }

// Step applies one iteration with the pixel as parameter.
func (f Multicorn) Step(z, c Point) Point { return f.Power.Pow(z.Conjugate()).Add(c) }

// Smooth returns the normalized iteration count.
func (f Multicorn) Smooth(z, _ Point, n uint64, b float64) float64 {
	return smooth(f.Power.Real(), z, n, b)
}

// MulticornJulia iterates z ← conj(z)ᵖ + Center starting at the pixel.
type MulticornJulia struct {
	Center Point
	Power  Power
}

// StartPoint returns the pixel itself.
func (f MulticornJulia) StartPoint(c Point) Point { return c }

// Step applies one iteration with the fixed Center.
func (f MulticornJulia) Step(z, _ Point) Point {
	return f.Power.Pow(z.Conjugate()).Add(f.Center)
}

// Smooth returns the normalized iteration count.
func (f MulticornJulia) Smooth(z, _ Point, n uint64, b float64) float64 {
	return smooth(f.Power.Real(), z, n, b)
}

// Lambda iterates z ← c·(z − zᵖ) from a fixed start.
type Lambda struct {
	Start Point
	Power Power
}

// StartPoint returns the fixed Start, whatever the pixel.
func (f Lambda) StartPoint(Point) Point { return f.Start }

// Step applies one iteration with the pixel as parameter.
func (f Lambda) Step(z, c Point) Point { return c.Mul(z.Sub(f.Power.Pow(z))) }

// Smooth returns the normalized iteration count with the escape radius
// scaled by |λ|.
func (f Lambda) Smooth(z, c Point, n uint64, b float64) float64 {
	return smoothLambda(f.Power.Real(), z, n, b, c)
}

// LambdaJulia iterates z ← Center·(z − zᵖ) starting at the pixel.
type LambdaJulia struct {
	Center Point
	Power  Power
}

// StartPoint returns the pixel itself.
func (f LambdaJulia) StartPoint(c Point) Point { return c }

// Step applies one iteration with the fixed Center.
func (f LambdaJulia) Step(z, _ Point) Point {
	return f.Center.Mul(z.Sub(f.Power.Pow(z)))
}

// Smooth returns the normalized iteration count with the escape radius
// scaled by |λ|.
func (f LambdaJulia) Smooth(z, _ Point, n uint64, b float64) float64 {
	return smoothLambda(f.Power.Real(), z, n, b, f.Center)
}
