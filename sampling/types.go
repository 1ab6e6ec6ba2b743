// Package sampling - configuration shapes and sentinel errors.
package sampling

import (
	"errors"
	"math"
)

// Sentinel errors for configuration validation.
var (
	// ErrNonPositiveRate indicates SamplingRate ≤ 0.
	ErrNonPositiveRate = errors.New("sampling: sampling rate must be positive")

	// ErrQuantizationLevels indicates QuantizationLevels < 2.
	ErrQuantizationLevels = errors.New("sampling: quantization levels must be at least 2")

	// ErrDeltaStepRatio indicates DeltaStepRatio outside (0, 1].
	ErrDeltaStepRatio = errors.New("sampling: delta step ratio must be in (0, 1]")
)

// PCMConfig configures pulse-code modulation.
type PCMConfig struct {
	// SamplingRate is the resampling rate in samples per second (> 0).
	SamplingRate float64 `json:"sampling_rate"`

	// QuantizationLevels is the number of discrete levels (≥ 2).
	QuantizationLevels int `json:"quantization_levels"`
}

// DeltaConfig configures delta modulation.
type DeltaConfig struct {
	// SamplingRate is the resampling rate in samples per second (> 0).
	SamplingRate float64 `json:"sampling_rate"`

	// DeltaStepRatio scales the step as amplitude×ratio; must be in (0, 1].
	DeltaStepRatio float64 `json:"delta_step_ratio"`
}

// instantRound snaps a sample instant to 1 µs to avoid floating drift in
// the i/rate grid.
func instantRound(t float64) float64 {
	return math.Round(t*1e6) / 1e6
}
