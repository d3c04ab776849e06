package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvmath/scalar"
)

type meters float64

// TestEpsilon_PerWidth verifies that Epsilon follows the storage width of T,
// including named types built on float32/float64.
func TestEpsilon_PerWidth(t *testing.T) {
	assert.Equal(t, float32(scalar.Epsilon32), scalar.Epsilon[float32]())
	assert.Equal(t, scalar.Epsilon64, scalar.Epsilon[float64]())
	assert.Equal(t, meters(scalar.Epsilon64), scalar.Epsilon[meters]())

	assert.NotEqual(t, float32(1), float32(1)+scalar.Epsilon[float32]())
	assert.Equal(t, float32(1), float32(1)+scalar.Epsilon[float32]()/4)
}

// TestTranscendentals_AgreeWithMath checks both dispatch paths against package math.
func TestTranscendentals_AgreeWithMath(t *testing.T) {
	xs := []float64{0.1, 0.5, 1, 2.5, 3}
	for _, x := range xs {
		assert.InDelta(t, math.Sqrt(x), scalar.Sqrt(x), 1e-15)
		assert.InDelta(t, math.Sin(x), scalar.Sin(x), 1e-15)
		assert.InDelta(t, math.Cos(x), scalar.Cos(x), 1e-15)
		assert.InDelta(t, math.Tan(x), scalar.Tan(x), 1e-13)
		assert.InDelta(t, math.Exp(x), scalar.Exp(x), 1e-13)
		assert.InDelta(t, math.Log(x), scalar.Log(x), 1e-15)
		assert.InDelta(t, math.Atan2(x, 1-x), scalar.Atan2(x, 1-x), 1e-15)
		assert.InDelta(t, math.Hypot(x, 2*x), scalar.Hypot(x, 2*x), 1e-15)

		f := float32(x)
		assert.InDelta(t, math.Sqrt(x), float64(scalar.Sqrt(f)), 1e-6)
		assert.InDelta(t, math.Sin(x), float64(scalar.Sin(f)), 1e-6)
		assert.InDelta(t, math.Cos(x), float64(scalar.Cos(f)), 1e-6)
		assert.InDelta(t, math.Exp(x), float64(scalar.Exp(f)), 1e-5)
		assert.InDelta(t, math.Log(x), float64(scalar.Log(f)), 1e-6)
		assert.InDelta(t, math.Hypot(x, 2*x), float64(scalar.Hypot(f, 2*f)), 1e-5)
	}
	assert.Equal(t, 2.5, scalar.Abs(-2.5))
	assert.Equal(t, float32(2.5), scalar.Abs(float32(-2.5)))
}

func TestAngles_RoundTrip(t *testing.T) {
	assert.InDelta(t, math.Pi, scalar.Radians(180.0), 1e-15)
	assert.InDelta(t, 90.0, scalar.Degrees(math.Pi/2), 1e-12)
	assert.InDelta(t, float32(math.Pi/2), scalar.Radians(float32(90)), 1e-6)
	assert.InDelta(t, 42.0, scalar.Degrees(scalar.Radians(42.0)), 1e-12)
}

func TestLerpLinearClamp(t *testing.T) {
	assert.Equal(t, 5.0, scalar.Lerp(0.0, 10.0, 0.5))
	assert.Equal(t, 15.0, scalar.Lerp(0.0, 10.0, 1.5))
	assert.Equal(t, 3.0, scalar.LinearFunc(0.0, 1.0, 2.0, 2.0, 4.0))
	assert.Equal(t, 7, scalar.LinearFunc(0, 1, 2, 4, 4))
	assert.Equal(t, 0, scalar.Clamp(-3, 0, 10))
	assert.Equal(t, 10, scalar.Clamp(30, 0, 10))
	assert.Equal(t, 0.25, scalar.Clamp(0.25, 0.0, 1.0))
}
