// SPDX-License-Identifier: MIT

package color

import (
	"math"

	"github.com/katalvlaran/lvmath/scalar"
)

// Gradient maps t in [0, 1] onto evenly spaced colour stops, blending
// neighbouring stops through HSV. It is immutable after construction and
// safe for concurrent use.
type Gradient struct {
	stops []Hsv
	path  HuePath
}

// NewGradient returns a gradient over stops, in order.
func NewGradient(path HuePath, stops ...Rgb) (*Gradient, error) {
	if len(stops) == 0 {
		return nil, ErrEmptyGradient
	}
	g := &Gradient{stops: make([]Hsv, len(stops)), path: path}
	for i, s := range stops {
		g.stops[i] = RgbToHsv(s)
	}
	return g, nil
}

// Len returns the number of stops.
func (g *Gradient) Len() int { return len(g.stops) }

// At samples the gradient. t is clamped to [0, 1]; NaN samples the first
// stop.
func (g *Gradient) At(t float64) Rgb {
	n := len(g.stops)
	if n == 1 || math.IsNaN(t) {
		return HsvToRgb(g.stops[0])
	}
	pos := scalar.Clamp(t, 0, 1) * float64(n-1)
	i := int(pos)
	if i >= n-1 {
		i = n - 2
	}
	return HsvToRgb(LerpHsv(g.stops[i], g.stops[i+1], pos-float64(i), g.path))
}
