// SPDX-License-Identifier: MIT

package mat

import "errors"

// ErrSingular is returned by TryInvert when |det| is below the configured
// epsilon.
var ErrSingular = errors.New("mat: matrix is singular")
