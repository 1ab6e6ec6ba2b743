// Package core - canonical waveform samplers.
//
// AnalogSignal and DigitalSignal produce the inputs shared by every
// transformation family: a sampled sine wave and a two-point-per-bit step
// function. Both are pure and allocate exactly once.
package core

import "math"

// AnalogSignal samples amp·sin(2π·freq·t) over [0, duration) at rate
// samples per second. Sample i sits at X = i/rate.
//
// Contract: freq > 0, amp > 0, duration > 0, rate ≥ 1.
// Errors: ErrNonPositiveFrequency, ErrNonPositiveAmplitude.
// Complexity: O(duration·rate).
func AnalogSignal(freq, amp, duration float64, rate int) ([]Point, error) {
	if freq <= 0 {
		return nil, ErrNonPositiveFrequency
	}
	if amp <= 0 {
		return nil, ErrNonPositiveAmplitude
	}

	total := int(duration * float64(rate))
	signal := make([]Point, total)

	var (
		omega = 2 * math.Pi * freq
		inv   = 1.0 / float64(rate)
	)
	for i := 0; i < total; i++ {
		t := float64(i) * inv
		signal[i] = Point{X: t, Y: amp * math.Sin(omega*t)}
	}

	return signal, nil
}

// DigitalSignal renders bits as a step function: bit i contributes the two
// points (i·bitDuration, level) and ((i+1)·bitDuration, level) with level
// equal to the bit value, so the series plots without further interpolation.
//
// bits must already be validated by ParseBits; bitDuration must be > 0.
func DigitalSignal(bits []byte, bitDuration float64) []Point {
	signal := make([]Point, 0, 2*len(bits))
	for i, b := range bits {
		level := float64(b)
		signal = append(signal,
			Point{X: float64(i) * bitDuration, Y: level},
			Point{X: float64(i+1) * bitDuration, Y: level},
		)
	}

	return signal
}
