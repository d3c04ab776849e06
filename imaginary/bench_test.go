package imaginary_test

import (
	"testing"

	"github.com/katalvlaran/lvmath/imaginary"
	"github.com/katalvlaran/lvmath/internal/randtest"
)

var (
	sinkComplex imaginary.Complex[float64]
	sinkQuat    imaginary.Quaternion[float64]
)

func BenchmarkComplex_Powi(b *testing.B) {
	c := randtest.New(randtest.DefaultSeed).Complex()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkComplex = c.Powi(7)
	}
}

func BenchmarkComplex_Powf(b *testing.B) {
	c := randtest.New(randtest.DefaultSeed).Complex()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkComplex = c.Powf(7)
	}
}

func BenchmarkQuaternion_Mul(b *testing.B) {
	r := randtest.New(randtest.DefaultSeed)
	p, q := r.Quaternion(), r.Quaternion()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkQuat = p.Mul(q)
	}
}
