// Package convert - request routing across the transformation families.
//
// Design principles:
//   - Closed dispatch: one case per family, exhaustive.
//   - Strict sentinels: routing errors from this file, engine errors
//     forwarded untouched so errors.Is keeps working across the boundary.
//   - No logging: failure surfaces only through the returned error.
package convert

import (
	"errors"
	"strings"

	"github.com/signalscope/signalscope/analogmod"
	"github.com/signalscope/signalscope/core"
	"github.com/signalscope/signalscope/linecode"
	"github.com/signalscope/signalscope/modem"
	"github.com/signalscope/signalscope/sampling"
)

// Family identifiers accepted in Request.Family.
const (
	// FamilyLineCoding is digital→digital line coding.
	FamilyLineCoding = "digital-digital"

	// FamilyDigitalModulation is digital→analog carrier keying.
	FamilyDigitalModulation = "digital-analog"

	// FamilyAnalogSampling is analog→digital sampling/quantization.
	FamilyAnalogSampling = "analog-digital"

	// FamilyAnalogModulation is analog→analog carrier modulation.
	FamilyAnalogModulation = "analog-analog"
)

// Sentinel errors of the dispatch layer.
var (
	// ErrUnknownFamily indicates Request.Family names no engine.
	ErrUnknownFamily = errors.New("convert: unknown family")

	// ErrMissingConfig indicates an analog-digital request carrying neither
	// a PCM nor a Delta configuration.
	ErrMissingConfig = errors.New("convert: analog-digital request needs a pcm or delta config")
)

// Request is one transformation call, shaped for transparent JSON transport.
//
// Bits is consumed by the digital-input families; Frequency/Amplitude by the
// analog-input families. Exactly one of PCM or Delta selects the
// analog-digital scheme (PCM wins if both are set, mirroring the reference
// service's oneof precedence).
type Request struct {
	Family    string  `json:"family"`
	Scheme    string  `json:"scheme,omitempty"`
	Bits      string  `json:"bits,omitempty"`
	Frequency float64 `json:"frequency,omitempty"`
	Amplitude float64 `json:"amplitude,omitempty"`

	PCM   *sampling.PCMConfig   `json:"pcm,omitempty"`
	Delta *sampling.DeltaConfig `json:"delta,omitempty"`
}

// Do validates the selector, routes the request to its engine, and returns
// the engine's result as-is.
//
// Errors: ErrUnknownFamily, ErrMissingConfig, the family ParseScheme
// sentinels, and the engines' parameter/input sentinels.
func Do(req Request) (core.SignalResult, error) {
	switch strings.ToLower(strings.TrimSpace(req.Family)) {
	case FamilyLineCoding:
		scheme, err := linecode.ParseScheme(req.Scheme)
		if err != nil {
			return core.SignalResult{}, err
		}

		return linecode.Encode(req.Bits, scheme, linecode.DefaultOptions())

	case FamilyDigitalModulation:
		scheme, err := modem.ParseScheme(req.Scheme)
		if err != nil {
			return core.SignalResult{}, err
		}

		return modem.Modulate(req.Bits, scheme, modem.DefaultOptions())

	case FamilyAnalogSampling:
		switch {
		case req.PCM != nil:
			return sampling.PCM(req.Frequency, req.Amplitude, *req.PCM)
		case req.Delta != nil:
			return sampling.Delta(req.Frequency, req.Amplitude, *req.Delta)
		default:
			return core.SignalResult{}, ErrMissingConfig
		}

	case FamilyAnalogModulation:
		scheme, err := analogmod.ParseScheme(req.Scheme)
		if err != nil {
			return core.SignalResult{}, err
		}

		return analogmod.Modulate(req.Frequency, req.Amplitude, scheme)

	default:
		return core.SignalResult{}, ErrUnknownFamily
	}
}
