// Package core - central data model and sentinel errors.
//
// This file declares Point, SignalResult, the canonical sampling constants,
// and the sentinel errors shared by every transformation family.
//
// Errors:
//
//	ErrEmptyBits            - bit string is empty.
//	ErrInvalidBit           - bit string contains a character other than '0'/'1'.
//	ErrNonPositiveFrequency - frequency must be > 0.
//	ErrNonPositiveAmplitude - amplitude must be > 0.
package core

import "errors"

// Sentinel errors for boundary validation.
var (
	// ErrEmptyBits indicates an empty bit string was supplied.
	ErrEmptyBits = errors.New("core: bit string is empty")

	// ErrInvalidBit indicates a character other than '0' or '1' in the bit string.
	ErrInvalidBit = errors.New("core: bit string must contain only '0' and '1'")

	// ErrNonPositiveFrequency indicates frequency ≤ 0.
	ErrNonPositiveFrequency = errors.New("core: frequency must be positive")

	// ErrNonPositiveAmplitude indicates amplitude ≤ 0.
	ErrNonPositiveAmplitude = errors.New("core: amplitude must be positive")
)

// Canonical sampling constants shared by the families.
//
// They are defaults, not hard-wired globals: every engine accepts an Options
// struct that may override its densities, so alternate sampling grids remain
// testable without touching package state.
const (
	// DefaultDuration is the time span, in seconds, of every analog input.
	DefaultDuration = 2.0

	// AnalogModulationRate is the sample density (samples/second) of the
	// analog↔analog family input.
	AnalogModulationRate = 200

	// AnalogSamplingRate is the sample density (samples/second) of the
	// analog→digital family input.
	AnalogSamplingRate = 100

	// DefaultBitDuration is the time span, in seconds, of one bit.
	DefaultBitDuration = 1.0
)

// Point is one time-indexed sample: X in seconds, Y a level, voltage,
// amplitude, or symbol code depending on the producing family.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SignalResult packages the three waveforms of one transformation:
// the pre-transformation input, the encoded/modulated line signal, and the
// receiver-side reconstruction. For digital→digital and digital→analog
// families Output equals Input (decoding fidelity is assumed perfect).
//
// Each series is ascending in X; duplicate X values are permitted at code
// transitions so discontinuities render as vertical jumps.
type SignalResult struct {
	Input       []Point `json:"input"`
	Transmitted []Point `json:"transmitted"`
	Output      []Point `json:"output"`

	// CalcTimeMs is the wall-clock cost of the transformation in milliseconds.
	CalcTimeMs float64 `json:"calculation_time_ms"`
}

// ParseBits validates and decodes a '0'/'1' string into numeric bits.
//
// Contract: s must be non-empty and contain only '0' or '1'.
// Errors: ErrEmptyBits, ErrInvalidBit.
// Complexity: O(len(s)).
func ParseBits(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, ErrEmptyBits
	}
	bits := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			bits[i] = 0
		case '1':
			bits[i] = 1
		default:
			return nil, ErrInvalidBit
		}
	}

	return bits, nil
}
