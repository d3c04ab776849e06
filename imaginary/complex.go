// SPDX-License-Identifier: MIT

package imaginary

import (
	"fmt"

	"github.com/katalvlaran/lvmath/scalar"
)

// Complex is re + im·i.
type Complex[T scalar.Float] struct {
	Re, Im T
}

// NewComplex returns re + im·i.
func NewComplex[T scalar.Float](re, im T) Complex[T] {
	return Complex[T]{Re: re, Im: im}
}

// ComplexFromReal returns re + 0i.
func ComplexFromReal[T scalar.Float](re T) Complex[T] { return Complex[T]{Re: re} }

// ComplexZero returns 0 + 0i.
func ComplexZero[T scalar.Float]() Complex[T] { return Complex[T]{} }

// ComplexOne returns 1 + 0i, the multiplicative identity.
func ComplexOne[T scalar.Float]() Complex[T] { return Complex[T]{Re: 1} }

// ComplexI returns the imaginary unit.
func ComplexI[T scalar.Float]() Complex[T] { return Complex[T]{Im: 1} }

// ComplexFromAngle returns the unit complex number with argument angle.
func ComplexFromAngle[T scalar.Float](angle T) Complex[T] {
	return Complex[T]{Re: scalar.Cos(angle), Im: scalar.Sin(angle)}
}

// ComplexFromPolar returns length·e^(i·angle).
func ComplexFromPolar[T scalar.Float](length, angle T) Complex[T] {
	return Complex[T]{Re: length * scalar.Cos(angle), Im: length * scalar.Sin(angle)}
}

// Real returns the real part.
func (c Complex[T]) Real() T { return c.Re }

// Imag returns the imaginary part.
func (c Complex[T]) Imag() T { return c.Im }

// Add returns c + d.
func (c Complex[T]) Add(d Complex[T]) Complex[T] { return Complex[T]{c.Re + d.Re, c.Im + d.Im} }

// Sub returns c - d.
func (c Complex[T]) Sub(d Complex[T]) Complex[T] { return Complex[T]{c.Re - d.Re, c.Im - d.Im} }

// Neg returns -c.
func (c Complex[T]) Neg() Complex[T] { return Complex[T]{-c.Re, -c.Im} }

// Mul returns the complex product c·d.
func (c Complex[T]) Mul(d Complex[T]) Complex[T] {
	return Complex[T]{
		Re: c.Re*d.Re - c.Im*d.Im,
		Im: c.Re*d.Im + c.Im*d.Re,
	}
}

// MulScalar scales both parts by s.
func (c Complex[T]) MulScalar(s T) Complex[T] { return Complex[T]{c.Re * s, c.Im * s} }

// DivScalar divides both parts by s.
func (c Complex[T]) DivScalar(s T) Complex[T] { return Complex[T]{c.Re / s, c.Im / s} }

// Div returns c/d computed as c·conj(d)/|d|². A zero d yields NaN.
func (c Complex[T]) Div(d Complex[T]) Complex[T] {
	return c.Mul(d.Conjugate()).DivScalar(d.Len2())
}

// TryDiv is the checked form of Div.
func (c Complex[T]) TryDiv(d Complex[T]) (Complex[T], error) {
	if d.Re == 0 && d.Im == 0 {
		return Complex[T]{}, ErrZeroDivisor
	}
	return c.Div(d), nil
}

// Conjugate returns re - im·i.
func (c Complex[T]) Conjugate() Complex[T] { return Complex[T]{c.Re, -c.Im} }

// Len2 returns |c|².
func (c Complex[T]) Len2() T { return c.Re*c.Re + c.Im*c.Im }

// Len returns |c|.
func (c Complex[T]) Len() T { return scalar.Hypot(c.Re, c.Im) }

// Phi returns the principal argument in (-π, π].
func (c Complex[T]) Phi() T { return scalar.Atan2(c.Im, c.Re) }

// LnLen returns ln|c|.
func (c Complex[T]) LnLen() T { return scalar.Log(c.Len2()) / 2 }

// Ln returns the principal natural logarithm ln|c| + φ·i. It is -Inf at 0.
func (c Complex[T]) Ln() Complex[T] { return Complex[T]{c.LnLen(), c.Phi()} }

// Exp returns e^c.
func (c Complex[T]) Exp() Complex[T] { return ComplexFromPolar(scalar.Exp(c.Re), c.Im) }

// Powi raises c to a non-negative integer power by repeated squaring.
// Powi(0) is 1 for every c, including 0.
func (c Complex[T]) Powi(n uint32) Complex[T] {
	result := ComplexOne[T]()
	for a := c; n > 0; n >>= 1 {
		if n&1 == 1 {
			result = result.Mul(a)
		}
		a = a.Mul(a)
	}
	return result
}

// Powf returns c^p = e^(p·ln c). For c == 0 it returns p + 0i.
func (c Complex[T]) Powf(p T) Complex[T] {
	if c.Re == 0 && c.Im == 0 {
		return ComplexFromReal(p)
	}
	return ComplexFromPolar(scalar.Exp(p*c.LnLen()), p*c.Phi())
}

// Powc returns c^p = e^(p·ln c). For c == 0 it returns p.
func (c Complex[T]) Powc(p Complex[T]) Complex[T] {
	if c.Re == 0 && c.Im == 0 {
		return p
	}
	e := p.Mul(c.Ln())
	return ComplexFromPolar(scalar.Exp(e.Re), e.Im)
}

// Complex128 converts c to the built-in complex type.
func (c Complex[T]) Complex128() complex128 { return complex(float64(c.Re), float64(c.Im)) }

// ConvertComplex changes the scalar type of c.
func ConvertComplex[D, S scalar.Float](c Complex[S]) Complex[D] {
	return Complex[D]{D(c.Re), D(c.Im)}
}

// String formats c as "a + b * i" or "a - b * i".
func (c Complex[T]) String() string {
	if c.Im >= 0 {
		return fmt.Sprintf("%v + %v * i", c.Re, c.Im)
	}
	return fmt.Sprintf("%v - %v * i", c.Re, -c.Im)
}
