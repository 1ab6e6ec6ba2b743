// Package quality - dynamic-time-warping distance between waveforms.
package quality

import (
	"math"

	"github.com/signalscope/signalscope/core"
)

// Options configures WarpDistance.
//   - Window       — maximum index deviation |i−j| allowed (Sakoe–Chiba
//     band); 0 or negative means unconstrained.
//   - SlopePenalty — extra cost for insertion/deletion steps, biasing the
//     alignment toward the diagonal.
type Options struct {
	Window       int
	SlopePenalty float64
}

// DefaultOptions returns an unconstrained, unpenalized configuration.
func DefaultOptions() Options {
	return Options{}
}

// WarpDistance computes the dynamic-time-warping distance between the level
// values of a and b. Warping absorbs the time offsets a staircase
// reconstruction introduces, so it complements the strictly pointwise RMSE.
//
// Algorithm outline (rolling two-row storage):
//  1. D[0][0] = 0; first row/column +∞.
//  2. D[i][j] = |a[i−1].Y − b[j−1].Y| + min(D[i−1][j]+p, D[i][j−1]+p, D[i−1][j−1])
//     for |i−j| ≤ Window when a window is set.
//  3. distance = D[n][m].
//
// Errors: ErrEmptySeries.
// Complexity: O(n·m) time, O(min(n,m)) memory.
func WarpDistance(a, b []core.Point, opts Options) (float64, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, ErrEmptySeries
	}

	// Iterate over the longer series so the rows track the shorter one.
	if m > n {
		a, b = b, a
		n, m = m, n
	}

	window := math.MaxInt32
	if opts.Window > 0 {
		window = opts.Window
	}
	penalty := opts.SlopePenalty
	inf := math.Inf(1)

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if abs(i-j) > window {
				curr[j] = inf

				continue
			}

			var (
				cost  = math.Abs(a[i-1].Y - b[j-1].Y)
				ins   = prev[j] + penalty
				del   = curr[j-1] + penalty
				match = prev[j-1]
			)
			curr[j] = cost + min3(ins, del, match)
		}
		prev, curr = curr, prev
	}

	return prev[m], nil
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
