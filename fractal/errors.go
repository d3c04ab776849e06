// SPDX-License-Identifier: MIT

package fractal

import "errors"

// ErrBadSize is returned by Render for a non-positive image size.
var ErrBadSize = errors.New("fractal: image size must be positive")
