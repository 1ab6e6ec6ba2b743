// Package linecode - the zero-run substitution codes (B8ZS, HDB3).
//
// Both behave as AMI until a zero run of the scheme's length begins at the
// scan position, then emit a fixed substitution pattern containing bipolar
// violations (V) and balancing marks (B) and advance the scan past the run.
// Lookahead is over the original bit slice, so a candidate run consumed by a
// substitution can never be substituted again.
package linecode

import "github.com/signalscope/signalscope/core"

// zeroRun reports whether bits[i:i+n] exists and is all zeros.
func zeroRun(bits []byte, i, n int) bool {
	if i+n > len(bits) {
		return false
	}
	for j := 0; j < n; j++ {
		if bits[i+j] != 0 {
			return false
		}
	}

	return true
}

// encodeB8ZS substitutes every 8-zero run with [0,0,0,V,B,0,V,B] where
// V repeats the last mark's polarity (the bipolar violation) and B = −V.
// After the substitution the last-mark polarity is B.
func encodeB8ZS(bits []byte, d float64) []core.Point {
	tx := make([]core.Point, 0, 2*len(bits))
	lastMark := -1.0

	for i := 0; i < len(bits); {
		if zeroRun(bits, i, 8) {
			v := lastMark
			b := -lastMark
			pattern := [8]float64{0, 0, 0, v, b, 0, v, b}
			for j, level := range pattern {
				tx = flat(tx, i+j, level, d)
			}
			lastMark = b
			i += 8

			continue
		}

		var level float64
		if bits[i] == 1 {
			lastMark = -lastMark
			level = lastMark
		}
		tx = flat(tx, i, level, d)
		i++
	}

	return tx
}

// encodeHDB3 substitutes every 4-zero run with 000V when the number of marks
// since the last substitution is even, else B00V with B = −(last polarity)
// and V = B. The mark counter resets after each substitution.
func encodeHDB3(bits []byte, d float64) []core.Point {
	tx := make([]core.Point, 0, 2*len(bits))
	lastMark := -1.0
	marks := 0

	for i := 0; i < len(bits); {
		if zeroRun(bits, i, 4) {
			var pattern [4]float64
			if marks%2 == 0 {
				v := lastMark
				pattern = [4]float64{0, 0, 0, v}
				lastMark = v
			} else {
				b := -lastMark
				pattern = [4]float64{b, 0, 0, b}
				lastMark = b
			}
			for j, level := range pattern {
				tx = flat(tx, i+j, level, d)
			}
			marks = 0
			i += 4

			continue
		}

		var level float64
		if bits[i] == 1 {
			lastMark = -lastMark
			level = lastMark
			marks++
		}
		tx = flat(tx, i, level, d)
		i++
	}

	return tx
}
