// Package analogmod - scheme enumeration, dispatch, and the three modulators.
package analogmod

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/signalscope/signalscope/core"
)

// ErrUnknownScheme is returned when a selector does not name AM, FM, or PM.
var ErrUnknownScheme = errors.New("analogmod: unknown scheme")

// Modulation constants of the family.
const (
	// carrierRatio pins the carrier at carrierRatio× the message frequency.
	carrierRatio = 5.0

	// amModulationIndex scales the AM envelope swing.
	amModulationIndex = 0.8

	// fmDeviationRatio sets Δf as a fraction of the carrier frequency.
	fmDeviationRatio = 0.5

	// pmPhaseDeviation is the peak PM phase swing in radians.
	pmPhaseDeviation = math.Pi / 2
)

// Scheme selects the analog modulation algorithm. The zero value is AM.
type Scheme int

const (
	// AM modulates the carrier amplitude by the message value.
	AM Scheme = iota

	// FM modulates the instantaneous frequency (literal phase formula).
	FM

	// PM modulates the carrier phase by the message value.
	PM
)

// String returns the canonical scheme name.
func (s Scheme) String() string {
	switch s {
	case AM:
		return "AM"
	case FM:
		return "FM"
	case PM:
		return "PM"
	default:
		return "UNKNOWN"
	}
}

// ParseScheme resolves a selector string (case-insensitive) to a Scheme.
// Errors: ErrUnknownScheme.
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToUpper(name) {
	case "AM":
		return AM, nil
	case "FM":
		return FM, nil
	case "PM":
		return PM, nil
	default:
		return 0, ErrUnknownScheme
	}
}

// Modulate modulates a unit-amplitude carrier at 5× the message frequency by
// the sampled message amp·sin(2π·freq·t) and packages the three waveforms.
// Output equals Input (no demodulation is simulated).
//
// Contracts: freq > 0, amp > 0, scheme one of AM/FM/PM.
// Errors: core.ErrNonPositiveFrequency, core.ErrNonPositiveAmplitude,
// ErrUnknownScheme.
// Complexity: O(duration·rate).
func Modulate(freq, amp float64, scheme Scheme) (core.SignalResult, error) {
	start := time.Now()

	input, err := core.AnalogSignal(freq, amp, core.DefaultDuration, core.AnalogModulationRate)
	if err != nil {
		return core.SignalResult{}, err
	}

	var (
		carrierFreq  = freq * carrierRatio
		omegaCarrier = 2 * math.Pi * carrierFreq
		invAmp       = 1.0 / amp
		transmitted  = make([]core.Point, len(input))
	)

	switch scheme {
	case AM:
		for i, p := range input {
			msg := p.Y * invAmp
			transmitted[i] = core.Point{
				X: p.X,
				Y: (1 + amModulationIndex*msg) * math.Sin(omegaCarrier*p.X),
			}
		}
	case FM:
		// Literal phase term (not the FM integral); see the package doc.
		var (
			omegaDev = 2 * math.Pi * fmDeviationRatio * carrierFreq
			invFreq  = 1.0 / freq
		)
		for i, p := range input {
			msg := p.Y * invAmp
			phase := omegaCarrier*p.X + omegaDev*msg*p.X*invFreq
			transmitted[i] = core.Point{X: p.X, Y: math.Sin(phase)}
		}
	case PM:
		for i, p := range input {
			msg := p.Y * invAmp
			transmitted[i] = core.Point{
				X: p.X,
				Y: math.Sin(omegaCarrier*p.X + pmPhaseDeviation*msg),
			}
		}
	default:
		return core.SignalResult{}, ErrUnknownScheme
	}

	return core.SignalResult{
		Input:       input,
		Transmitted: transmitted,
		Output:      input,
		CalcTimeMs:  float64(time.Since(start)) / float64(time.Millisecond),
	}, nil
}
