// Package modem - multi-bit symbol schemes and their constellations.
//
// Every scheme here zero-pads the bit string on the right to a multiple of
// its symbol width, maps each symbol through a fixed constellation table,
// and renders the symbol as one continuous carrier block spanning
// width×BitDuration seconds.
package modem

import (
	"math"

	"github.com/signalscope/signalscope/core"
)

// mfskFrequencies are the four 4-FSK tones, indexed by the natural symbol
// value. They bracket the binary FSK pair (3/7 Hz) on the same axis.
var mfskFrequencies = [4]float64{2, 4, 6, 8}

// qamLevels are the Gray-ordered 16-QAM rail amplitudes, normalized to unit
// peak: index by grayToIndex(two bits).
var qamLevels = [4]float64{-1, -1.0 / 3, 1.0 / 3, 1}

// grayToIndex converts a Gray-coded value to its ring position, so adjacent
// constellation points differ in exactly one bit.
func grayToIndex(g int) int {
	idx := 0
	for ; g > 0; g >>= 1 {
		idx ^= g
	}

	return idx
}

// renderSymbols is the shared sample loop of the co-aligned symbol schemes:
// symbol k spans [k·width·BitDuration, (k+1)·width·BitDuration] and renders
// width×SamplesPerBit+1 points via the scheme's wave function.
func renderSymbols(bits []byte, width int, opt Options, wave func(sym int, t float64) float64) []core.Point {
	var (
		padded     = pad(bits, width)
		perSymbol  = width * opt.SamplesPerBit
		symbolSpan = float64(width) * opt.BitDuration
		step       = opt.BitDuration / float64(opt.SamplesPerBit)
		tx         = make([]core.Point, 0, len(padded)/width*(perSymbol+1))
	)
	for k := 0; k < len(padded); k += width {
		sym := symbolValue(padded, k, width)
		base := float64(k/width) * symbolSpan
		for j := 0; j <= perSymbol; j++ {
			t := base + float64(j)*step
			tx = append(tx, core.Point{X: t, Y: wave(sym, t)})
		}
	}

	return tx
}

// modulateQPSK maps 2-bit symbols to Gray-coded quadrant phases
// (π/4, 3π/4, 5π/4, 7π/4).
func modulateQPSK(bits []byte, opt Options) []core.Point {
	omega := 2 * math.Pi * opt.CarrierFreq

	return renderSymbols(bits, 2, opt, func(sym int, t float64) float64 {
		phase := math.Pi/4 + float64(grayToIndex(sym))*math.Pi/2

		return math.Sin(omega*t + phase)
	})
}

// modulateMPSK maps 3-bit symbols to Gray-ordered 8-PSK octant phases.
func modulateMPSK(bits []byte, opt Options) []core.Point {
	omega := 2 * math.Pi * opt.CarrierFreq

	return renderSymbols(bits, 3, opt, func(sym int, t float64) float64 {
		phase := float64(grayToIndex(sym)) * math.Pi / 4

		return math.Sin(omega*t + phase)
	})
}

// modulateQAM maps 4-bit symbols onto the Gray-coded 4×4 16-QAM grid: the
// high bit pair selects the in-phase rail, the low pair the quadrature rail.
func modulateQAM(bits []byte, opt Options) []core.Point {
	omega := 2 * math.Pi * opt.CarrierFreq

	return renderSymbols(bits, 4, opt, func(sym int, t float64) float64 {
		i := qamLevels[grayToIndex(sym>>2)]
		q := qamLevels[grayToIndex(sym&0x3)]

		return i*math.Cos(omega*t) - q*math.Sin(omega*t)
	})
}

// modulateMFSK maps 2-bit symbols to one of the four 4-FSK tones.
func modulateMFSK(bits []byte, opt Options) []core.Point {
	return renderSymbols(bits, 2, opt, func(sym int, t float64) float64 {
		return math.Sin(2 * math.Pi * mfskFrequencies[sym] * t)
	})
}

// modulateOQPSK renders offset QPSK: the in-phase stream switches at symbol
// boundaries while the quadrature stream is delayed by half a symbol, so the
// two never switch together and phase jumps stay within 90°. Because the
// streams are not co-aligned in time, the sample loop tracks their symbol
// indices independently instead of rendering per-symbol blocks.
func modulateOQPSK(bits []byte, opt Options) []core.Point {
	const width = 2

	var (
		padded   = pad(bits, width)
		n        = len(padded) / width
		symSpan  = float64(width) * opt.BitDuration
		halfSpan = symSpan / 2
		omega    = 2 * math.Pi * opt.CarrierFreq
		step     = opt.BitDuration / float64(opt.SamplesPerBit)
		total    = n * width * opt.SamplesPerBit
		invSqrt2 = 1 / math.Sqrt2
	)

	// Antipodal levels per stream: even bits drive I, odd bits drive Q.
	iLevel := make([]float64, n)
	qLevel := make([]float64, n)
	for k := 0; k < n; k++ {
		iLevel[k] = 2*float64(padded[2*k]) - 1
		qLevel[k] = 2*float64(padded[2*k+1]) - 1
	}

	tx := make([]core.Point, 0, total+1)
	for j := 0; j <= total; j++ {
		t := float64(j) * step

		iIdx := int(t / symSpan)
		if iIdx >= n {
			iIdx = n - 1
		}

		// Quadrature lags by half a symbol; before the first switch it
		// holds the first symbol's level.
		qIdx := 0
		if t >= halfSpan {
			qIdx = int((t - halfSpan) / symSpan)
			if qIdx >= n {
				qIdx = n - 1
			}
		}

		y := invSqrt2 * (iLevel[iIdx]*math.Cos(omega*t) - qLevel[qIdx]*math.Sin(omega*t))
		tx = append(tx, core.Point{X: t, Y: y})
	}

	return tx
}
