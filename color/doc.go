// SPDX-License-Identifier: MIT

// Package color converts between 8-bit RGB, HSV and HSLuv and interpolates
// colours in those spaces.
//
// Rgb implements image/color.Color, so palette entries and interpolated
// values can be written straight into an image.RGBA. Hex strings use the
// literal form "#RRGGBB": exactly seven characters, case-insensitive on
// input and uppercase on output, no alpha.
//
// Hue is measured in degrees in [0, 360). HSV saturation and value, and
// HSLuv saturation and lightness, are in [0, 1].
//
// The colour-space maths is delegated to github.com/lucasb-eyer/go-colorful.
package color
