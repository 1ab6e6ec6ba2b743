// Package quality - pointwise error metrics.
package quality

import (
	"errors"
	"math"

	"github.com/signalscope/signalscope/core"
)

// ErrEmptySeries indicates one or both input series are empty.
var ErrEmptySeries = errors.New("quality: input series must be non-empty")

// RMSE returns the root-mean-square error of candidate against reference.
// The reference is resampled at each candidate instant via core.ValueAt, so
// the two series need not share a time grid.
//
// Errors: ErrEmptySeries.
// Complexity: O(m·log n) for m candidate points over n reference points.
func RMSE(reference, candidate []core.Point) (float64, error) {
	if len(reference) == 0 || len(candidate) == 0 {
		return 0, ErrEmptySeries
	}

	sum := 0.0
	for _, p := range candidate {
		diff := p.Y - core.ValueAt(reference, p.X)
		sum += diff * diff
	}

	return math.Sqrt(sum / float64(len(candidate))), nil
}

// MaxAbs returns the worst absolute error of candidate against reference,
// resampling the reference at each candidate instant.
//
// Errors: ErrEmptySeries.
func MaxAbs(reference, candidate []core.Point) (float64, error) {
	if len(reference) == 0 || len(candidate) == 0 {
		return 0, ErrEmptySeries
	}

	worst := 0.0
	for _, p := range candidate {
		if d := math.Abs(p.Y - core.ValueAt(reference, p.X)); d > worst {
			worst = d
		}
	}

	return worst, nil
}
