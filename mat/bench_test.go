package mat_test

import (
	"testing"

	"github.com/katalvlaran/lvmath/internal/randtest"
	"github.com/katalvlaran/lvmath/mat"
)

var (
	sinkMat4 mat.Mat4[float64]
	sinkMat3 mat.Mat3[float64]
)

func BenchmarkMat4_Invert(b *testing.B) {
	m := randtest.New(randtest.DefaultSeed).Mat4()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkMat4 = m.Invert()
	}
}

func BenchmarkMat4_Mul(b *testing.B) {
	r := randtest.New(randtest.DefaultSeed)
	x, y := r.Mat4(), r.Mat4()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkMat4 = x.Mul(y)
	}
}

func BenchmarkYawPitchRoll(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkMat3 = mat.YawPitchRoll(0.1, 0.2, 0.3)
	}
}
