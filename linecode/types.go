// Package linecode - scheme enumeration, options, and sentinel errors.
package linecode

import (
	"errors"
	"strings"
)

// ErrUnknownScheme is returned when a selector does not name a supported
// line-coding scheme.
var ErrUnknownScheme = errors.New("linecode: unknown scheme")

// Scheme selects one of the eight line-coding algorithms.
// The zero value is NRZL.
type Scheme int

const (
	// NRZL encodes bit 0 as +1 V and bit 1 as −1 V (stateless).
	NRZL Scheme = iota

	// NRZI flips the level on every 1 bit and holds it on 0.
	NRZI

	// Manchester transitions at mid-bit: 0 is high→low, 1 is low→high.
	Manchester

	// DiffManchester always transitions at mid-bit and additionally at the
	// start of the bit iff the bit is 0.
	DiffManchester

	// AMI encodes 0 as 0 V and 1 as alternating ±1 V marks.
	AMI

	// Pseudoternary mirrors AMI: 1 is 0 V, 0 alternates polarity.
	Pseudoternary

	// B8ZS is AMI with bipolar-violation substitution of 8-zero runs.
	B8ZS

	// HDB3 is AMI with bipolar-violation substitution of 4-zero runs.
	HDB3
)

// String returns the canonical scheme name.
func (s Scheme) String() string {
	switch s {
	case NRZL:
		return "NRZ-L"
	case NRZI:
		return "NRZ-I"
	case Manchester:
		return "MANCHESTER"
	case DiffManchester:
		return "DIFF-MANCHESTER"
	case AMI:
		return "AMI"
	case Pseudoternary:
		return "PSEUDOTERNARY"
	case B8ZS:
		return "B8ZS"
	case HDB3:
		return "HDB3"
	default:
		return "UNKNOWN"
	}
}

// ParseScheme resolves a selector string (case-insensitive, '-' and '_'
// interchangeable) to a Scheme. Errors: ErrUnknownScheme.
func ParseScheme(name string) (Scheme, error) {
	switch strings.ReplaceAll(strings.ToUpper(name), "-", "_") {
	case "NRZ_L", "NRZL":
		return NRZL, nil
	case "NRZ_I", "NRZI":
		return NRZI, nil
	case "MANCHESTER":
		return Manchester, nil
	case "DIFF_MANCHESTER", "DIFFERENTIAL_MANCHESTER":
		return DiffManchester, nil
	case "AMI":
		return AMI, nil
	case "PSEUDOTERNARY":
		return Pseudoternary, nil
	case "B8ZS":
		return B8ZS, nil
	case "HDB3":
		return HDB3, nil
	default:
		return 0, ErrUnknownScheme
	}
}

// Options configures the line-coding pass.
//   - BitDuration: seconds spanned by one bit on the time axis (default 1).
type Options struct {
	BitDuration float64
}

// DefaultOptions returns the canonical configuration (1 s per bit).
func DefaultOptions() Options {
	return Options{BitDuration: 1.0}
}
