// Package modem - scheme enumeration, options, and sentinel errors.
package modem

import (
	"errors"
	"strings"
)

// ErrUnknownScheme is returned when a selector does not name a supported
// keying scheme.
var ErrUnknownScheme = errors.New("modem: unknown scheme")

// Scheme selects one keying algorithm. The zero value is ASK.
type Scheme int

const (
	// ASK keys the carrier amplitude (1.0 / 0.2 for bit 1 / 0).
	ASK Scheme = iota

	// FSK keys between two tone frequencies (bit 0 → low, bit 1 → high).
	FSK

	// PSK keys the carrier phase (0 for bit 1, π for bit 0).
	PSK

	// DPSK keys phase differentially: bit 0 flips the accumulated phase by π.
	DPSK

	// QPSK maps 2-bit symbols to Gray-coded phase quadrants.
	QPSK

	// OQPSK is QPSK with the quadrature stream delayed by half a symbol.
	OQPSK

	// MPSK maps 3-bit symbols to Gray-ordered 8-PSK phases.
	MPSK

	// QAM maps 4-bit symbols to a Gray-coded 16-QAM I/Q grid.
	QAM

	// MFSK maps 2-bit symbols to one of four tone frequencies.
	MFSK
)

// String returns the canonical scheme name.
func (s Scheme) String() string {
	switch s {
	case ASK:
		return "ASK"
	case FSK:
		return "FSK"
	case PSK:
		return "PSK"
	case DPSK:
		return "DPSK"
	case QPSK:
		return "QPSK"
	case OQPSK:
		return "OQPSK"
	case MPSK:
		return "8-PSK"
	case QAM:
		return "16-QAM"
	case MFSK:
		return "4-FSK"
	default:
		return "UNKNOWN"
	}
}

// BitsPerSymbol returns the symbol width in bits (1 for binary schemes).
func (s Scheme) BitsPerSymbol() int {
	switch s {
	case QPSK, OQPSK, MFSK:
		return 2
	case MPSK:
		return 3
	case QAM:
		return 4
	default:
		return 1
	}
}

// ParseScheme resolves a selector string (case-insensitive) to a Scheme.
// Historical aliases from the two project snapshots are accepted:
// BFSK≡FSK, BPSK≡PSK, 8PSK≡MPSK, 16QAM≡QAM, 4FSK≡MFSK.
// Errors: ErrUnknownScheme.
func ParseScheme(name string) (Scheme, error) {
	switch strings.ReplaceAll(strings.ToUpper(name), "-", "") {
	case "ASK":
		return ASK, nil
	case "FSK", "BFSK":
		return FSK, nil
	case "PSK", "BPSK":
		return PSK, nil
	case "DPSK":
		return DPSK, nil
	case "QPSK":
		return QPSK, nil
	case "OQPSK":
		return OQPSK, nil
	case "MPSK", "8PSK":
		return MPSK, nil
	case "QAM", "16QAM", "QAM16":
		return QAM, nil
	case "MFSK", "4FSK":
		return MFSK, nil
	default:
		return 0, ErrUnknownScheme
	}
}

// Options configures the keying pass. Zero or negative fields fall back to
// the canonical defaults, so Options{} behaves like DefaultOptions().
//   - BitDuration:   seconds spanned by one bit (default 1).
//   - SamplesPerBit: carrier samples rendered per bit (default 100).
//   - CarrierFreq:   carrier frequency in Hz for ASK/PSK/DPSK and the
//     symbol schemes (default 5).
//   - FSKFreq0/1:    tone frequencies for binary FSK (defaults 3 and 7).
type Options struct {
	BitDuration   float64
	SamplesPerBit int
	CarrierFreq   float64
	FSKFreq0      float64
	FSKFreq1      float64
}

// DefaultOptions returns the canonical configuration.
func DefaultOptions() Options {
	return Options{
		BitDuration:   1.0,
		SamplesPerBit: 100,
		CarrierFreq:   5.0,
		FSKFreq0:      3.0,
		FSKFreq1:      7.0,
	}
}

// normalize fills unset fields with the canonical defaults.
func (o Options) normalize() Options {
	def := DefaultOptions()
	if o.BitDuration <= 0 {
		o.BitDuration = def.BitDuration
	}
	if o.SamplesPerBit <= 0 {
		o.SamplesPerBit = def.SamplesPerBit
	}
	if o.CarrierFreq <= 0 {
		o.CarrierFreq = def.CarrierFreq
	}
	if o.FSKFreq0 <= 0 {
		o.FSKFreq0 = def.FSKFreq0
	}
	if o.FSKFreq1 <= 0 {
		o.FSKFreq1 = def.FSKFreq1
	}

	return o
}
