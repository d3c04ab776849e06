// SPDX-License-Identifier: MIT

package vec

import "errors"

// ErrZeroLength is returned by the checked helpers when a vector of zero
// length would be used as a divisor.
var ErrZeroLength = errors.New("vec: zero-length vector")
