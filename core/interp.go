// Package core - time-domain interpolation.
package core

import "sort"

// ValueAt returns the value of signal at time t.
//
// Outside the series' time range the boundary value is returned (clamp, not
// extrapolation). Inside, the bracketing pair is located by binary search and
// linearly interpolated. Duplicate X values (vertical jumps) resolve to the
// earlier point's value, matching the rendering convention.
//
// Contract: signal is ascending in X. An empty signal yields 0.
// Complexity: O(log n).
func ValueAt(signal []Point, t float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	if t <= signal[0].X {
		return signal[0].Y
	}
	if t >= signal[len(signal)-1].X {
		return signal[len(signal)-1].Y
	}

	// First index with X >= t; the bounds checks above guarantee 0 < i < len.
	i := sort.Search(len(signal), func(k int) bool { return signal[k].X >= t })

	p1, p2 := signal[i-1], signal[i]
	if p2.X == p1.X {
		return p1.Y
	}

	ratio := (t - p1.X) / (p2.X - p1.X)

	return p1.Y + ratio*(p2.Y-p1.Y)
}
