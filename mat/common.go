// SPDX-License-Identifier: MIT

package mat

import "github.com/katalvlaran/lvmath/scalar"

// mul writes the n×n column-major product a·b into out.
func mul[T scalar.Float](out, a, b []T, n int) {
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			var s T
			for k := 0; k < n; k++ {
				s += a[k*n+r] * b[c*n+k]
			}
			out[c*n+r] = s
		}
	}
}

func frobenius[T scalar.Float](a []T) T {
	var s T
	for _, x := range a {
		s += x * x
	}
	return scalar.Sqrt(s)
}

func convert[D, S scalar.Float](out []D, in []S) {
	for i, x := range in {
		out[i] = D(x)
	}
}

// transposeInto copies the n×n column-major a into out in row-major order.
func transposeInto[D, S scalar.Float](out []D, a []S, n int) {
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out[r*n+c] = D(a[c*n+r])
		}
	}
}
