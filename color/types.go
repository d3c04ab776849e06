// SPDX-License-Identifier: MIT

package color

import (
	imgcolor "image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Rgb is an opaque 8-bit-per-channel colour.
type Rgb struct {
	R, G, B uint8
}

// Hsv is hue in degrees, saturation and value in [0, 1].
type Hsv struct {
	H, S, V float64
}

// Hsluv is hue in degrees, saturation and lightness in [0, 1].
type Hsluv struct {
	H, S, L float64
}

// NewRgb returns the colour (r, g, b).
func NewRgb(r, g, b uint8) Rgb { return Rgb{R: r, G: g, B: b} }

// RGBA implements image/color.Color. Alpha is always opaque.
func (c Rgb) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// String returns the hex form.
func (c Rgb) String() string { return c.Hex() }

// RgbFromColor converts any image/color.Color, un-premultiplying alpha.
// A fully transparent colour maps to Black.
func RgbFromColor(c imgcolor.Color) Rgb {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return Black
	}
	return fromColorful(cf)
}

func (c Rgb) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) Rgb {
	r, g, b := c.Clamped().RGB255()
	return Rgb{r, g, b}
}

// Palette.
var (
	Black = Rgb{0, 0, 0}
	White = Rgb{255, 255, 255}
	Gray  = Rgb{127, 127, 127}

	Red    = Rgb{237, 28, 36}
	Orange = Rgb{255, 127, 39}
	Yellow = Rgb{255, 242, 0}
	Green  = Rgb{34, 177, 76}
	Blue   = Rgb{0, 128, 255}

	LightRed    = Rgb{255, 128, 128}
	LightOrange = Rgb{255, 201, 14}
	LightYellow = Rgb{239, 228, 176}
	LightGreen  = Rgb{181, 230, 29}
	LightBlue   = Rgb{0, 162, 232}

	DarkRed    = Rgb{136, 0, 21}
	DarkOrange = Rgb{128, 64, 0}
	DarkYellow = Rgb{128, 128, 0}
	DarkGreen  = Rgb{0, 128, 0}
	DarkBlue   = Rgb{63, 72, 204}
)
