// SPDX-License-Identifier: MIT

package color

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/lvmath/scalar"
)

// ParseHex parses "#RRGGBB", case-insensitively.
func ParseHex(s string) (Rgb, error) {
	if len(s) != 7 || s[0] != '#' {
		return Rgb{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	for i := 1; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return Rgb{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Rgb{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return fromColorful(c), nil
}

func isHexDigit(b byte) bool {
	return '0' <= b && b <= '9' || 'a' <= b && b <= 'f' || 'A' <= b && b <= 'F'
}

// Hex formats c as "#RRGGBB" with uppercase digits.
func (c Rgb) Hex() string { return strings.ToUpper(c.colorful().Hex()) }

// RgbToHsv converts c to HSV. Grays get hue 0.
func RgbToHsv(c Rgb) Hsv {
	h, s, v := c.colorful().Hsv()
	return Hsv{H: h, S: s, V: v}
}

// HsvToRgb converts c to 8-bit RGB, wrapping the hue into [0, 360) and
// clamping saturation and value into [0, 1].
func HsvToRgb(c Hsv) Rgb { return fromColorful(c.colorful()) }

func (c Hsv) colorful() colorful.Color {
	return colorful.Hsv(wrapHue(c.H), scalar.Clamp(c.S, 0, 1), scalar.Clamp(c.V, 0, 1))
}

// RgbToHsluv converts c to HSLuv.
func RgbToHsluv(c Rgb) Hsluv {
	h, s, l := c.colorful().HSLuv()
	return Hsluv{H: h, S: s, L: l}
}

// HsluvToRgb converts c to 8-bit RGB. Out-of-gamut results are clamped.
func HsluvToRgb(c Hsluv) Rgb {
	return fromColorful(colorful.HSLuv(wrapHue(c.H), scalar.Clamp(c.S, 0, 1), scalar.Clamp(c.L, 0, 1)))
}

// HsvToHsluv converts without rounding through 8-bit RGB.
func HsvToHsluv(c Hsv) Hsluv {
	h, s, l := c.colorful().HSLuv()
	return Hsluv{H: h, S: s, L: l}
}

// HsluvToHsv converts through 8-bit RGB.
func HsluvToHsv(c Hsluv) Hsv { return RgbToHsv(HsluvToRgb(c)) }

// HexToHsv parses s and converts it to HSV.
func HexToHsv(s string) (Hsv, error) {
	c, err := ParseHex(s)
	if err != nil {
		return Hsv{}, err
	}
	return RgbToHsv(c), nil
}

// HexToHsluv parses s and converts it to HSLuv.
func HexToHsluv(s string) (Hsluv, error) {
	c, err := ParseHex(s)
	if err != nil {
		return Hsluv{}, err
	}
	return RgbToHsluv(c), nil
}

// HsvToHex converts c to "#RRGGBB".
func HsvToHex(c Hsv) string { return HsvToRgb(c).Hex() }

// HsluvToHex converts c to "#RRGGBB".
func HsluvToHex(c Hsluv) string { return HsluvToRgb(c).Hex() }

// wrapHue maps h into [0, 360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}
