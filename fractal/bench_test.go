package fractal_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvmath/fractal"
)

var sinkFloat float64

func BenchmarkIterate_Mandelbrot(b *testing.B) {
	c := fractal.Point{Re: -0.7435, Im: 0.1314}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkFloat, _ = fractal.Iterate(mandelbrot, c, 1024, 256)
	}
}

func BenchmarkIterate_FloatPower(b *testing.B) {
	f := fractal.MultibrotJulia{Center: fractal.Point{Re: -0.4, Im: 0.6}, Power: fractal.FloatPower(2.5)}
	c := fractal.Point{Re: 0.1, Im: 0.2}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkFloat, _ = fractal.Iterate(f, c, 1024, 256)
	}
}

func BenchmarkRender(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := fractal.Render(context.Background(), mandelbrot, fractal.WithSize(128, 128)); err != nil {
			b.Fatal(err)
		}
	}
}
