package imaginary_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/imaginary"
	"github.com/katalvlaran/lvmath/internal/randtest"
)

const tol = 1e-10

func assertComplexInDelta(t *testing.T, want, got imaginary.Complex[float64], delta float64) {
	t.Helper()
	assert.InDelta(t, want.Re, got.Re, delta, "re: want %v, got %v", want, got)
	assert.InDelta(t, want.Im, got.Im, delta, "im: want %v, got %v", want, got)
}

func TestComplex_ISquared(t *testing.T) {
	i := imaginary.ComplexI[float64]()
	assert.Equal(t, imaginary.NewComplex(-1.0, 0.0), i.Mul(i))
	assert.Equal(t, imaginary.NewComplex(0.0, 1.0), i)
}

func TestComplex_Product(t *testing.T) {
	a := imaginary.NewComplex(1.0, 1.0)
	b := imaginary.NewComplex(-2.5, 1.0)
	assert.Equal(t, imaginary.NewComplex(-3.5, -1.5), a.Mul(b))
	assert.Equal(t, a.Mul(b), b.Mul(a))
}

func TestComplex_Div(t *testing.T) {
	q := imaginary.NewComplex(1.0, 2.0).Div(imaginary.NewComplex(3.0, 4.0))
	assertComplexInDelta(t, imaginary.NewComplex(0.44, 0.08), q, tol)

	r := randtest.New(randtest.DefaultSeed)
	for i := 0; i < 500; i++ {
		a, b := r.Complex(), r.Complex()
		assertComplexInDelta(t, a, a.Div(b).Mul(b), 1e-8)
	}
}

func TestComplex_DivByZero(t *testing.T) {
	q := imaginary.ComplexOne[float64]().Div(imaginary.ComplexZero[float64]())
	assert.True(t, math.IsNaN(q.Re) || math.IsInf(q.Re, 0))

	_, err := imaginary.ComplexOne[float64]().TryDiv(imaginary.ComplexZero[float64]())
	require.ErrorIs(t, err, imaginary.ErrZeroDivisor)

	got, err := imaginary.NewComplex(4.0, 2.0).TryDiv(imaginary.ComplexFromReal(2.0))
	require.NoError(t, err)
	assert.Equal(t, imaginary.NewComplex(2.0, 1.0), got)
}

func TestComplex_Polar(t *testing.T) {
	c := imaginary.NewComplex(3.0, 4.0)
	assert.Equal(t, 5.0, c.Len())
	assert.Equal(t, 25.0, c.Len2())
	assert.InDelta(t, math.Atan2(4, 3), c.Phi(), tol)
	assert.InDelta(t, math.Log(5), c.LnLen(), tol)
	assertComplexInDelta(t, c, imaginary.ComplexFromPolar(c.Len(), c.Phi()), tol)
	assertComplexInDelta(t, imaginary.ComplexI[float64](), imaginary.ComplexFromAngle(math.Pi/2), tol)
	assert.Equal(t, math.Pi, imaginary.ComplexFromReal(-1.0).Phi())
	assert.Equal(t, imaginary.NewComplex(3.0, -4.0), c.Conjugate())
	assert.Equal(t, 3.0, c.Real())
	assert.Equal(t, 4.0, c.Imag())
}

func TestComplex_Powers(t *testing.T) {
	c := imaginary.NewComplex(1.0, 1.0)
	want := imaginary.NewComplex(0.0, 2.0)

	assert.Equal(t, want, c.Powi(2))
	assertComplexInDelta(t, want, c.Powf(2), tol)
	assertComplexInDelta(t, want, c.Powc(imaginary.ComplexFromReal(2.0)), tol)

	assert.Equal(t, imaginary.ComplexOne[float64](), c.Powi(0))
	assert.Equal(t, imaginary.ComplexOne[float64](), imaginary.ComplexZero[float64]().Powi(0))
	assert.Equal(t, imaginary.NewComplex(-4.0, 0.0), c.Powi(4))

	r := randtest.New(11)
	for i := 0; i < 200; i++ {
		z := r.Complex()
		for n := uint32(0); n < 8; n++ {
			assertComplexInDelta(t, z.Powf(float64(n)), z.Powi(n), 1e-9)
		}
		p := r.Complex()
		oracle := cmplx.Pow(z.Complex128(), p.Complex128())
		got := z.Powc(p)
		delta := 1e-9 * (1 + cmplx.Abs(oracle))
		assert.InDelta(t, real(oracle), got.Re, delta)
		assert.InDelta(t, imag(oracle), got.Im, delta)
	}
}

func TestComplex_ZeroBasePower(t *testing.T) {
	zero := imaginary.ComplexZero[float64]()
	assert.Equal(t, imaginary.ComplexFromReal(3.0), zero.Powf(3))
	p := imaginary.NewComplex(2.0, -1.0)
	assert.Equal(t, p, zero.Powc(p))
}

func TestComplex_ExpLnRoundTrip(t *testing.T) {
	r := randtest.New(randtest.DefaultSeed)
	for i := 0; i < 1000; i++ {
		c := r.Complex()
		assertComplexInDelta(t, c, c.Exp().Ln(), tol)

		e := cmplx.Exp(c.Complex128())
		assert.InDelta(t, real(e), c.Exp().Re, tol)
		assert.InDelta(t, imag(e), c.Exp().Im, tol)
		l := cmplx.Log(c.Complex128())
		assert.InDelta(t, real(l), c.Ln().Re, tol)
		assert.InDelta(t, imag(l), c.Ln().Im, tol)
	}
}

func TestComplex_String(t *testing.T) {
	assert.Equal(t, "1 + 2 * i", imaginary.NewComplex(1.0, 2.0).String())
	assert.Equal(t, "1.5 - 2 * i", imaginary.NewComplex(1.5, -2.0).String())
	assert.Equal(t, "0 + 0 * i", imaginary.ComplexZero[float32]().String())
}

func TestComplex_Float32(t *testing.T) {
	c := imaginary.ConvertComplex[float32](imaginary.NewComplex(1.0, 1.0))
	assert.Equal(t, imaginary.NewComplex[float32](0, 2), c.Powi(2))
	p := c.Powf(2)
	assert.InDelta(t, 0, p.Re, 1e-6)
	assert.InDelta(t, 2, p.Im, 1e-6)
}
