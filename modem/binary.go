// Package modem - binary keying schemes (one carrier block per bit).
package modem

import (
	"math"

	"github.com/signalscope/signalscope/core"
)

// ASK amplitudes for mark (bit 1) and space (bit 0).
const (
	askMarkAmplitude  = 1.0
	askSpaceAmplitude = 0.2
)

// modulateASK renders per-bit blocks of amp·sin(2πf_c·t) with the amplitude
// keyed by the bit value. Each block includes both endpoints, so adjacent
// blocks share a time instant.
func modulateASK(bits []byte, opt Options) []core.Point {
	var (
		tx    = make([]core.Point, 0, len(bits)*(opt.SamplesPerBit+1))
		omega = 2 * math.Pi * opt.CarrierFreq
		step  = opt.BitDuration / float64(opt.SamplesPerBit)
	)
	for i, b := range bits {
		amp := askSpaceAmplitude
		if b == 1 {
			amp = askMarkAmplitude
		}
		base := float64(i) * opt.BitDuration
		for j := 0; j <= opt.SamplesPerBit; j++ {
			t := base + float64(j)*step
			tx = append(tx, core.Point{X: t, Y: amp * math.Sin(omega*t)})
		}
	}

	return tx
}

// modulateFSK keys between the two tone frequencies: FSKFreq0 for bit 0,
// FSKFreq1 for bit 1. Amplitude is constant 1.
func modulateFSK(bits []byte, opt Options) []core.Point {
	var (
		tx     = make([]core.Point, 0, len(bits)*(opt.SamplesPerBit+1))
		omega0 = 2 * math.Pi * opt.FSKFreq0
		omega1 = 2 * math.Pi * opt.FSKFreq1
		step   = opt.BitDuration / float64(opt.SamplesPerBit)
	)
	for i, b := range bits {
		omega := omega0
		if b == 1 {
			omega = omega1
		}
		base := float64(i) * opt.BitDuration
		for j := 0; j <= opt.SamplesPerBit; j++ {
			t := base + float64(j)*step
			tx = append(tx, core.Point{X: t, Y: math.Sin(omega * t)})
		}
	}

	return tx
}

// modulatePSK keys the carrier phase: 0 for bit 1, π for bit 0.
func modulatePSK(bits []byte, opt Options) []core.Point {
	var (
		tx    = make([]core.Point, 0, len(bits)*(opt.SamplesPerBit+1))
		omega = 2 * math.Pi * opt.CarrierFreq
		step  = opt.BitDuration / float64(opt.SamplesPerBit)
	)
	for i, b := range bits {
		phase := math.Pi
		if b == 1 {
			phase = 0
		}
		base := float64(i) * opt.BitDuration
		for j := 0; j <= opt.SamplesPerBit; j++ {
			t := base + float64(j)*step
			tx = append(tx, core.Point{X: t, Y: math.Sin(omega*t + phase)})
		}
	}

	return tx
}

// modulateDPSK keys phase differentially: bit 0 flips the accumulated phase
// by π before the bit's block, bit 1 leaves it unchanged. The phase state
// persists across the whole pass.
func modulateDPSK(bits []byte, opt Options) []core.Point {
	var (
		tx    = make([]core.Point, 0, len(bits)*(opt.SamplesPerBit+1))
		omega = 2 * math.Pi * opt.CarrierFreq
		step  = opt.BitDuration / float64(opt.SamplesPerBit)
		phase = 0.0
	)
	for i, b := range bits {
		if b == 0 {
			phase += math.Pi
		}
		base := float64(i) * opt.BitDuration
		for j := 0; j <= opt.SamplesPerBit; j++ {
			t := base + float64(j)*step
			tx = append(tx, core.Point{X: t, Y: math.Sin(omega*t + phase)})
		}
	}

	return tx
}
