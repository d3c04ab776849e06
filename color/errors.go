// SPDX-License-Identifier: MIT

package color

import "errors"

var (
	// ErrInvalidHex is returned by ParseHex for anything but "#RRGGBB".
	ErrInvalidHex = errors.New("color: invalid hex colour")

	// ErrEmptyGradient is returned by NewGradient without stops.
	ErrEmptyGradient = errors.New("color: gradient needs at least one stop")
)
