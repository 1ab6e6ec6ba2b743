// Package linecode - scheme dispatch and the non-substitution encoders.
//
// Design principles:
//   - Closed tagged-variant dispatch: one case per scheme, exhaustive switch.
//   - Strict sentinels: only errors from types.go and core.
//   - Single pass, minimal carried state, no hidden allocations beyond the
//     preallocated output slices.
package linecode

import (
	"time"

	"github.com/signalscope/signalscope/core"
)

// Encode runs one line-coding scheme over bits and packages the three
// waveforms: the square-wave input, the encoded line signal, and the output
// (identical to the input — no demodulation is simulated).
//
// Contracts:
//   - bits must be a non-empty '0'/'1' string (validated here, once).
//   - opts.BitDuration ≤ 0 falls back to the 1 s default.
//
// Errors: core.ErrEmptyBits, core.ErrInvalidBit, ErrUnknownScheme.
//
// Complexity: O(n) time and memory in the number of bits.
func Encode(bits string, scheme Scheme, opts Options) (core.SignalResult, error) {
	start := time.Now()

	seq, err := core.ParseBits(bits)
	if err != nil {
		return core.SignalResult{}, err
	}

	d := opts.BitDuration
	if d <= 0 {
		d = core.DefaultBitDuration
	}

	var transmitted []core.Point
	switch scheme {
	case NRZL:
		transmitted = encodeNRZL(seq, d)
	case NRZI:
		transmitted = encodeNRZI(seq, d)
	case Manchester:
		transmitted = encodeManchester(seq, d)
	case DiffManchester:
		transmitted = encodeDiffManchester(seq, d)
	case AMI:
		transmitted = encodeAMI(seq, d)
	case Pseudoternary:
		transmitted = encodePseudoternary(seq, d)
	case B8ZS:
		transmitted = encodeB8ZS(seq, d)
	case HDB3:
		transmitted = encodeHDB3(seq, d)
	default:
		return core.SignalResult{}, ErrUnknownScheme
	}

	input := core.DigitalSignal(seq, d)

	return core.SignalResult{
		Input:       input,
		Transmitted: transmitted,
		Output:      input,
		CalcTimeMs:  float64(time.Since(start)) / float64(time.Millisecond),
	}, nil
}

// flat appends the two points of one flat-voltage bit slot [pos, pos+1).
func flat(dst []core.Point, pos int, level, d float64) []core.Point {
	return append(dst,
		core.Point{X: float64(pos) * d, Y: level},
		core.Point{X: float64(pos+1) * d, Y: level},
	)
}

// encodeNRZL: +1 for bit 0, −1 for bit 1. Stateless.
func encodeNRZL(bits []byte, d float64) []core.Point {
	tx := make([]core.Point, 0, 2*len(bits))
	for i, b := range bits {
		level := 1.0
		if b == 1 {
			level = -1.0
		}
		tx = flat(tx, i, level, d)
	}

	return tx
}

// encodeNRZI: the level flips on every 1 bit, holds on 0. Initial level +1.
func encodeNRZI(bits []byte, d float64) []core.Point {
	tx := make([]core.Point, 0, 2*len(bits))
	level := 1.0
	for i, b := range bits {
		if b == 1 {
			level = -level
		}
		tx = flat(tx, i, level, d)
	}

	return tx
}

// encodeManchester: one guaranteed transition per bit at mid-bit.
// Bit 0 is high→low, bit 1 low→high; four points per bit.
func encodeManchester(bits []byte, d float64) []core.Point {
	tx := make([]core.Point, 0, 4*len(bits))
	for i, b := range bits {
		var (
			base = float64(i) * d
			mid  = (float64(i) + 0.5) * d
			end  = float64(i+1) * d
		)
		first, second := 1.0, -1.0
		if b == 1 {
			first, second = -1.0, 1.0
		}
		tx = append(tx,
			core.Point{X: base, Y: first},
			core.Point{X: mid, Y: first},
			core.Point{X: mid, Y: second},
			core.Point{X: end, Y: second},
		)
	}

	return tx
}

// encodeDiffManchester: mid-bit transition always; start-of-bit transition
// iff the bit is 0. (The opposite convention exists in the wild; this is the
// transition-on-zero reading.) Initial level +1.
func encodeDiffManchester(bits []byte, d float64) []core.Point {
	tx := make([]core.Point, 0, 4*len(bits))
	level := 1.0
	for i, b := range bits {
		if b == 0 {
			level = -level
		}

		var (
			base = float64(i) * d
			mid  = (float64(i) + 0.5) * d
			end  = float64(i+1) * d
		)
		tx = append(tx,
			core.Point{X: base, Y: level},
			core.Point{X: mid, Y: level},
		)

		level = -level

		tx = append(tx,
			core.Point{X: mid, Y: level},
			core.Point{X: end, Y: level},
		)
	}

	return tx
}

// encodeAMI: 0 → 0 V; 1 → mark with polarity alternating each mark.
// The polarity prior to the first mark is −1, so the first mark is +1.
func encodeAMI(bits []byte, d float64) []core.Point {
	tx := make([]core.Point, 0, 2*len(bits))
	lastMark := -1.0
	for i, b := range bits {
		var level float64
		if b == 1 {
			lastMark = -lastMark
			level = lastMark
		}
		tx = flat(tx, i, level, d)
	}

	return tx
}

// encodePseudoternary: the AMI mirror — 1 → 0 V, 0 → alternating marks.
func encodePseudoternary(bits []byte, d float64) []core.Point {
	tx := make([]core.Point, 0, 2*len(bits))
	lastSpace := -1.0
	for i, b := range bits {
		var level float64
		if b == 0 {
			lastSpace = -lastSpace
			level = lastSpace
		}
		tx = flat(tx, i, level, d)
	}

	return tx
}
