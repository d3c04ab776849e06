package randtest_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/internal/randtest"
)

func TestNew_Deterministic(t *testing.T) {
	a := randtest.New(42)
	b := randtest.New(42)
	for i := 0; i < 16; i++ {
		require.Equal(t, a.Mat4(), b.Mat4())
	}
}

func TestRange(t *testing.T) {
	r := randtest.New(randtest.DefaultSeed).WithRange(2, 3)
	for i := 0; i < 1000; i++ {
		f := r.Float()
		assert.GreaterOrEqual(t, f, 2.0)
		assert.Less(t, f, 3.0)
	}
	assert.Panics(t, func() { r.WithRange(1, 1) })
}

func TestAxis_NonDegenerate(t *testing.T) {
	r := randtest.New(7)
	for i := 0; i < 1000; i++ {
		assert.GreaterOrEqual(t, r.Axis().Len2(), 0.01)
	}
}

func TestAngle_Range(t *testing.T) {
	r := randtest.New(randtest.DefaultSeed)
	for i := 0; i < 1000; i++ {
		a := r.Angle()
		assert.GreaterOrEqual(t, a, -math.Pi)
		assert.Less(t, a, math.Pi)
	}
}
