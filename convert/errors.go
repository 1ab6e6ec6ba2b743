// Package convert - error taxonomy classification for transport callers.
package convert

import (
	"errors"

	"github.com/signalscope/signalscope/analogmod"
	"github.com/signalscope/signalscope/core"
	"github.com/signalscope/signalscope/linecode"
	"github.com/signalscope/signalscope/modem"
	"github.com/signalscope/signalscope/sampling"
)

// Kind is the transport-facing error taxonomy: transports map it onto their
// own status vocabulary (HTTP codes, RPC status) without inspecting package
// sentinels themselves.
type Kind int

const (
	// KindUnknown covers errors outside the engine taxonomy.
	KindUnknown Kind = iota

	// KindInvalidParameter covers non-positive frequency/amplitude/rate and
	// out-of-range quantization levels or delta ratio.
	KindInvalidParameter

	// KindInvalidInput covers empty or malformed bit strings and requests
	// missing a required configuration.
	KindInvalidInput

	// KindUnsupportedScheme covers selector values no engine implements.
	KindUnsupportedScheme
)

// Classify maps an error returned by Do (or any engine) to its Kind.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, core.ErrNonPositiveFrequency),
		errors.Is(err, core.ErrNonPositiveAmplitude),
		errors.Is(err, sampling.ErrNonPositiveRate),
		errors.Is(err, sampling.ErrQuantizationLevels),
		errors.Is(err, sampling.ErrDeltaStepRatio):
		return KindInvalidParameter
	case errors.Is(err, core.ErrEmptyBits),
		errors.Is(err, core.ErrInvalidBit),
		errors.Is(err, ErrMissingConfig):
		return KindInvalidInput
	case errors.Is(err, linecode.ErrUnknownScheme),
		errors.Is(err, modem.ErrUnknownScheme),
		errors.Is(err, analogmod.ErrUnknownScheme),
		errors.Is(err, ErrUnknownFamily):
		return KindUnsupportedScheme
	default:
		return KindUnknown
	}
}
