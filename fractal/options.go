// SPDX-License-Identifier: MIT

package fractal

import (
	"math"
	"runtime"

	"github.com/katalvlaran/lvmath/color"
)

// Defaults for Render.
const (
	DefaultWidth          = 512
	DefaultHeight         = 512
	DefaultScale          = 3.0
	DefaultIterationBound = 256
	DefaultLengthBound    = 256.0
)

var (
	// DefaultCenter frames the whole Mandelbrot set at DefaultScale.
	DefaultCenter = Point{Re: -0.5}

	// DefaultInterior colours points that never escape.
	DefaultInterior = color.Black
)

const (
	panicScaleInvalid     = "fractal: WithScale: scale must be finite and positive"
	panicIterationInvalid = "fractal: WithIterationBound: bound must be positive"
	panicLengthInvalid    = "fractal: WithLengthBound: bound must be finite and greater than 1"
	panicWorkersInvalid   = "fractal: WithWorkers: workers must be positive"
	panicGradientNil      = "fractal: WithGradient: gradient is nil"
	panicCycleInvalid     = "fractal: WithCycle: period must be finite and non-negative"
)

// Option configures Render.
type Option func(*options)

type options struct {
	width, height  int
	center         Point
	scale          float64
	iterationBound uint64
	lengthBound    float64
	workers        int
	gradient       *color.Gradient
	interior       color.Rgb
	cycle          float64
}

// WithSize sets the image size in pixels. Sizes usually come from user
// input, so Render reports non-positive values as ErrBadSize.
func WithSize(width, height int) Option {
	return func(o *options) { o.width, o.height = width, height }
}

// WithCenter sets the point of the plane at the image centre.
func WithCenter(c Point) Option {
	return func(o *options) { o.center = c }
}

// WithScale sets the height of the visible region in plane units.
func WithScale(scale float64) Option {
	if !(scale > 0) || math.IsInf(scale, 0) {
		panic(panicScaleInvalid)
	}
	return func(o *options) { o.scale = scale }
}

// WithIterationBound caps the number of steps per pixel.
func WithIterationBound(n uint64) Option {
	if n == 0 {
		panic(panicIterationInvalid)
	}
	return func(o *options) { o.iterationBound = n }
}

// WithLengthBound sets the escape threshold on |z|².
func WithLengthBound(b float64) Option {
	if !(b > 1) || math.IsInf(b, 0) {
		panic(panicLengthInvalid)
	}
	return func(o *options) { o.lengthBound = b }
}

// WithWorkers bounds the number of rows rendered concurrently.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}
	return func(o *options) { o.workers = n }
}

// WithGradient sets the palette for escaped points.
func WithGradient(g *color.Gradient) Option {
	if g == nil {
		panic(panicGradientNil)
	}
	return func(o *options) { o.gradient = g }
}

// WithInterior sets the colour of points that never escape.
func WithInterior(c color.Rgb) Option {
	return func(o *options) { o.interior = c }
}

// WithCycle repeats the gradient every period smoothed iterations. Zero,
// the default, stretches the gradient once over the iteration bound.
func WithCycle(period float64) Option {
	if period < 0 || math.IsNaN(period) || math.IsInf(period, 0) {
		panic(panicCycleInvalid)
	}
	return func(o *options) { o.cycle = period }
}

func gatherOptions(opts []Option) options {
	o := options{
		width:          DefaultWidth,
		height:         DefaultHeight,
		center:         DefaultCenter,
		scale:          DefaultScale,
		iterationBound: DefaultIterationBound,
		lengthBound:    DefaultLengthBound,
		workers:        runtime.GOMAXPROCS(0),
		interior:       DefaultInterior,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.gradient == nil {
		o.gradient = defaultGradient
	}
	return o
}

var defaultGradient = mustGradient(color.HueShortest,
	color.DarkBlue, color.LightBlue, color.White, color.LightOrange, color.DarkRed)

func mustGradient(path color.HuePath, stops ...color.Rgb) *color.Gradient {
	g, err := color.NewGradient(path, stops...)
	if err != nil {
		panic(err)
	}
	return g
}
