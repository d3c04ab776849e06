// SPDX-License-Identifier: MIT

package mat

import "math"

// DefaultEpsilon is the |det| threshold below which TryInvert reports
// ErrSingular.
const DefaultEpsilon = 1e-10

const panicEpsilonInvalid = "mat: WithEpsilon: eps must be finite, non-negative"

// Option configures the checked operations.
type Option func(*options)

type options struct {
	eps float64
}

// WithEpsilon sets the singularity threshold for TryInvert.
// It panics if eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}
	return func(o *options) { o.eps = eps }
}

func gatherOptions(opts []Option) options {
	o := options{eps: DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// singular reports whether det is too small to invert under opts.
func singular(det float64, opts []Option) bool {
	o := gatherOptions(opts)
	return math.IsNaN(det) || math.Abs(det) < o.eps
}
