// Package modem - scheme dispatch.
//
// Design principles:
//   - Closed tagged-variant dispatch, one case per scheme.
//   - Strict sentinels only; the engine never logs.
//   - Deterministic: identical inputs and options yield identical samples.
package modem

import (
	"time"

	"github.com/signalscope/signalscope/core"
)

// Modulate keys bits onto a carrier under the selected scheme and packages
// the three waveforms. Input is the square-wave rendering of the original
// (unpadded) bits; Transmitted is the carrier signal; Output equals Input.
//
// Contracts:
//   - bits must be a non-empty '0'/'1' string (validated here, once).
//   - Symbol schemes zero-pad bits on the right to the symbol width, so
//     Transmitted may span further than Input.
//
// Errors: core.ErrEmptyBits, core.ErrInvalidBit, ErrUnknownScheme.
//
// Complexity: O(n·SamplesPerBit).
func Modulate(bits string, scheme Scheme, opts Options) (core.SignalResult, error) {
	start := time.Now()

	seq, err := core.ParseBits(bits)
	if err != nil {
		return core.SignalResult{}, err
	}
	opt := opts.normalize()

	var transmitted []core.Point
	switch scheme {
	case ASK:
		transmitted = modulateASK(seq, opt)
	case FSK:
		transmitted = modulateFSK(seq, opt)
	case PSK:
		transmitted = modulatePSK(seq, opt)
	case DPSK:
		transmitted = modulateDPSK(seq, opt)
	case QPSK:
		transmitted = modulateQPSK(seq, opt)
	case OQPSK:
		transmitted = modulateOQPSK(seq, opt)
	case MPSK:
		transmitted = modulateMPSK(seq, opt)
	case QAM:
		transmitted = modulateQAM(seq, opt)
	case MFSK:
		transmitted = modulateMFSK(seq, opt)
	default:
		return core.SignalResult{}, ErrUnknownScheme
	}

	input := core.DigitalSignal(seq, opt.BitDuration)

	return core.SignalResult{
		Input:       input,
		Transmitted: transmitted,
		Output:      input,
		CalcTimeMs:  float64(time.Since(start)) / float64(time.Millisecond),
	}, nil
}

// pad returns bits right-padded with zeros to a multiple of width.
func pad(bits []byte, width int) []byte {
	rem := len(bits) % width
	if rem == 0 {
		return bits
	}
	padded := make([]byte, len(bits)+width-rem)
	copy(padded, bits)

	return padded
}

// symbolValue packs bits[i:i+width] big-endian into an integer symbol.
func symbolValue(bits []byte, i, width int) int {
	v := 0
	for j := 0; j < width; j++ {
		v = v<<1 | int(bits[i+j])
	}

	return v
}
