// SPDX-License-Identifier: MIT

package color

import (
	"math"

	"github.com/katalvlaran/lvmath/scalar"
)

// HuePath selects which way round the colour wheel hue interpolation goes.
type HuePath int

const (
	// HueShortest takes the shorter arc.
	HueShortest HuePath = iota
	// HueIncreasing moves clockwise, wrapping through 360° when b < a.
	HueIncreasing
	// HueDecreasing moves counter-clockwise, wrapping through 0° when b > a.
	HueDecreasing
)

// String returns the lower-case name of the path, as accepted by the CLI.
func (p HuePath) String() string {
	switch p {
	case HueShortest:
		return "shortest"
	case HueIncreasing:
		return "increasing"
	case HueDecreasing:
		return "decreasing"
	}
	return "unknown"
}

func lerpHue(a, b, t float64, path HuePath) float64 {
	switch path {
	case HueShortest:
		d1 := math.Abs(a - b)
		d2 := math.Abs(a + 360 - b)
		d3 := math.Abs(a - 360 - b)
		switch {
		case d1 <= d2 && d1 <= d3:
			return scalar.Lerp(a, b, t)
		case d2 <= d3:
			return wrapHue(scalar.Lerp(a+360, b, t))
		default:
			return wrapHue(scalar.Lerp(a-360, b, t))
		}
	case HueIncreasing:
		if a > b {
			return wrapHue(scalar.Lerp(a, b+360, t))
		}
	case HueDecreasing:
		if a < b {
			return wrapHue(scalar.Lerp(a+360, b, t))
		}
	}
	return scalar.Lerp(a, b, t)
}

// LerpRgb interpolates each channel and rounds to the nearest integer.
func LerpRgb(a, b Rgb, t float64) Rgb {
	ch := func(x, y uint8) uint8 {
		return uint8(scalar.Clamp(math.Round(scalar.Lerp(float64(x), float64(y), t)), 0, 255))
	}
	return Rgb{ch(a.R, b.R), ch(a.G, b.G), ch(a.B, b.B)}
}

// LerpHsv interpolates hue along path and the other channels linearly.
func LerpHsv(a, b Hsv, t float64, path HuePath) Hsv {
	return Hsv{
		H: lerpHue(a.H, b.H, t, path),
		S: scalar.Lerp(a.S, b.S, t),
		V: scalar.Lerp(a.V, b.V, t),
	}
}

// LerpHsluv interpolates hue along path and the other channels linearly.
func LerpHsluv(a, b Hsluv, t float64, path HuePath) Hsluv {
	return Hsluv{
		H: lerpHue(a.H, b.H, t, path),
		S: scalar.Lerp(a.S, b.S, t),
		L: scalar.Lerp(a.L, b.L, t),
	}
}

// LerpRgbHsv interpolates two RGB colours through HSV.
func LerpRgbHsv(a, b Rgb, t float64, path HuePath) Rgb {
	return HsvToRgb(LerpHsv(RgbToHsv(a), RgbToHsv(b), t, path))
}

// LerpRgbHsluv interpolates two RGB colours through HSLuv.
func LerpRgbHsluv(a, b Rgb, t float64, path HuePath) Rgb {
	return HsluvToRgb(LerpHsluv(RgbToHsluv(a), RgbToHsluv(b), t, path))
}
