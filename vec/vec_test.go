package vec_test

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/internal/randtest"
	"github.com/katalvlaran/lvmath/vec"
)

const tol = 1e-10

func TestLayout_Contiguous(t *testing.T) {
	assert.Equal(t, uintptr(8), unsafe.Sizeof(vec.Vec2[float32]{}))
	assert.Equal(t, uintptr(12), unsafe.Sizeof(vec.Vec3[float32]{}))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(vec.Vec4[float32]{}))
	assert.Equal(t, uintptr(32), unsafe.Sizeof(vec.Vec4[float64]{}))

	v := vec.Vec3[float32]{}
	assert.Equal(t, uintptr(4), unsafe.Offsetof(v.Y))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(v.Z))
}

func TestVec3_Arithmetic(t *testing.T) {
	a := vec.New3(1.0, 2.0, 3.0)
	b := vec.New3(4.0, -5.0, 6.0)

	assert.Equal(t, vec.New3(5.0, -3.0, 9.0), a.Add(b))
	assert.Equal(t, vec.New3(-3.0, 7.0, -3.0), a.Sub(b))
	assert.Equal(t, vec.New3(2.0, 4.0, 6.0), a.Mul(2))
	assert.Equal(t, vec.New3(0.5, 1.0, 1.5), a.Div(2))
	assert.Equal(t, vec.New3(-1.0, -2.0, -3.0), a.Neg())
	assert.Equal(t, vec.New3(4.0, -10.0, 18.0), a.MulComponents(b))
	assert.Equal(t, vec.New3(0.25, -0.4, 0.5), a.DivComponents(b))
	assert.Equal(t, 12.0, a.Dot(b))
	assert.Equal(t, 14.0, a.Len2())
	assert.InDelta(t, math.Sqrt(14), a.Len(), tol)
	assert.Equal(t, [3]float64{1, 2, 3}, a.Array())
	assert.Equal(t, vec.New3(1.0, 4.0, 9.0), a.Map(func(x float64) float64 { return x * x }))
	assert.Equal(t, vec.New3(2.5, -1.5, 4.5), a.Lerp(b, 0.5))
}

func TestVec2_CrossAndLen(t *testing.T) {
	a := vec.New2(3.0, 4.0)
	assert.Equal(t, 5.0, a.Len())
	assert.Equal(t, 1.0, vec.Cross2(vec.Vec2X[float64](), vec.Vec2Y[float64]()))
	assert.Equal(t, -1.0, vec.Vec2Y[float64]().Cross(vec.Vec2X[float64]()))
	assert.Equal(t, 11.0, vec.Dot2(a, vec.One2[float64]().Add(vec.Vec2Y[float64]())))

	// Hypot keeps the length finite where the naive sum of squares overflows.
	big := vec.New2(1e200, 1e200)
	assert.True(t, math.IsInf(big.Len2(), 1))
	assert.InDelta(t, math.Sqrt2*1e200, big.Len(), 1e186)
}

func TestVec3_CrossBasis(t *testing.T) {
	x, y, z := vec.Vec3X[float64](), vec.Vec3Y[float64](), vec.Vec3Z[float64]()
	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, x, y.Cross(z))
	assert.Equal(t, y, z.Cross(x))
	assert.Equal(t, z.Neg(), vec.Cross3(y, x))
}

func TestVec3_CrossOrthogonal(t *testing.T) {
	r := randtest.New(randtest.DefaultSeed)
	for i := 0; i < 1000; i++ {
		a, b := r.Vec3(), r.Vec3()
		c := a.Cross(b)
		assert.InDelta(t, 0, vec.Dot3(c, a), tol)
		assert.InDelta(t, 0, vec.Dot3(c, b), tol)
	}
}

func TestNormalized(t *testing.T) {
	r := randtest.New(3)
	for i := 0; i < 100; i++ {
		assert.InDelta(t, 1, r.Axis().Normalized().Len(), tol)
		assert.InDelta(t, 1, r.Vec4().Normalized().Len(), tol)
	}
	n := vec.New2(0.0, -2.0).Normalized()
	assert.Equal(t, vec.New2(0.0, -1.0), n)
}

func TestNormalized_ZeroIsNaN(t *testing.T) {
	n := vec.Zero3[float64]().Normalized()
	assert.True(t, math.IsNaN(n.X) && math.IsNaN(n.Y) && math.IsNaN(n.Z))

	_, err := vec.Zero3[float64]().TryNormalized()
	require.ErrorIs(t, err, vec.ErrZeroLength)
	_, err = vec.Zero2[float32]().TryNormalized()
	require.ErrorIs(t, err, vec.ErrZeroLength)
	_, err = vec.Zero4[float64]().TryNormalized()
	require.ErrorIs(t, err, vec.ErrZeroLength)

	u, err := vec.New4(0.0, 0.0, 3.0, 4.0).TryNormalized()
	require.NoError(t, err)
	assert.Equal(t, vec.New4(0.0, 0.0, 0.6, 0.8), u)
}

func TestVec4_Basics(t *testing.T) {
	a := vec.New4(1.0, 2.0, 3.0, 4.0)
	assert.Equal(t, 30.0, a.Len2())
	assert.Equal(t, 4.0, vec.Dot4(a, vec.Vec4W[float64]()))
	assert.Equal(t, vec.New3(1.0, 2.0, 3.0), a.XYZ())
	assert.Equal(t, a, vec.Extend3(a.XYZ(), 4))
	assert.Equal(t, vec.One4[float64](),
		vec.Vec4X[float64]().Add(vec.Vec4Y[float64]()).Add(vec.Vec4Z[float64]()).Add(vec.Vec4W[float64]()))
}

func TestConvertAndF32(t *testing.T) {
	v := vec.New3(1.5, -2.25, 3.0)
	f := vec.Convert3[float32](v)
	assert.Equal(t, vec.New3[float32](1.5, -2.25, 3), f)
	assert.Equal(t, v, vec.Convert3[float64](f))
	assert.Equal(t, vec.New2[float32](1, 2), vec.Convert2[float32](vec.New2(1.0, 2.0)))
	assert.Equal(t, vec.New4(1.0, 2.0, 3.0, 4.0), vec.Convert4[float64](vec.New4[float32](1, 2, 3, 4)))

	g := v.F32()
	assert.Equal(t, float32(1.5), g[0])
	assert.Equal(t, float32(-2.25), g[1])
	assert.Equal(t, [2]float32{1, 2}, [2]float32(vec.New2(1.0, 2.0).F32()))
	assert.Equal(t, [4]float32{1, 2, 3, 4}, [4]float32(vec.New4(1.0, 2.0, 3.0, 4.0).F32()))
}

func TestString(t *testing.T) {
	assert.Equal(t, "(1, 2)", vec.New2(1.0, 2.0).String())
	assert.Equal(t, "(1, -2, 0.5)", vec.New3(1.0, -2.0, 0.5).String())
	assert.Equal(t, "(0, 0, 0, 1)", vec.Vec4W[float32]().String())
}
