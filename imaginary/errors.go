// SPDX-License-Identifier: MIT

package imaginary

import "errors"

var (
	// ErrZeroDivisor is returned by Complex.TryDiv when the divisor is 0.
	ErrZeroDivisor = errors.New("imaginary: division by zero")

	// ErrZeroLength is returned by Quaternion.TryInvert for the zero quaternion.
	ErrZeroLength = errors.New("imaginary: zero-length quaternion")
)
