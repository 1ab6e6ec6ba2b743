package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalscope/signalscope/convert"
	"github.com/signalscope/signalscope/core"
	"github.com/signalscope/signalscope/linecode"
	"github.com/signalscope/signalscope/sampling"
)

// TestDo_RoutesAllFamilies sends one valid request per family and checks a
// non-empty three-waveform result comes back.
func TestDo_RoutesAllFamilies(t *testing.T) {
	reqs := []convert.Request{
		{Family: convert.FamilyLineCoding, Scheme: "AMI", Bits: "10110"},
		{Family: convert.FamilyDigitalModulation, Scheme: "QPSK", Bits: "1101"},
		{
			Family: convert.FamilyAnalogSampling, Frequency: 2, Amplitude: 1,
			PCM: &sampling.PCMConfig{SamplingRate: 10, QuantizationLevels: 16},
		},
		{
			Family: convert.FamilyAnalogSampling, Frequency: 2, Amplitude: 1,
			Delta: &sampling.DeltaConfig{SamplingRate: 40, DeltaStepRatio: 0.1},
		},
		{Family: convert.FamilyAnalogModulation, Scheme: "FM", Frequency: 2, Amplitude: 1},
	}

	for _, req := range reqs {
		res, err := convert.Do(req)
		require.NoError(t, err, "family %s scheme %s", req.Family, req.Scheme)
		assert.NotEmpty(t, res.Input, "family %s", req.Family)
		assert.NotEmpty(t, res.Transmitted, "family %s", req.Family)
		assert.NotEmpty(t, res.Output, "family %s", req.Family)
	}
}

// TestDo_MatchesDirectCall: the dispatcher adds nothing — routing through it
// yields the same waveforms as calling the family package directly.
func TestDo_MatchesDirectCall(t *testing.T) {
	viaDispatch, err := convert.Do(convert.Request{
		Family: convert.FamilyLineCoding, Scheme: "B8ZS", Bits: "100000000",
	})
	require.NoError(t, err)

	direct, err := linecode.Encode("100000000", linecode.B8ZS, linecode.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, direct.Transmitted, viaDispatch.Transmitted)
}

// TestDo_FamilyNormalization: family matching is case- and space-tolerant.
func TestDo_FamilyNormalization(t *testing.T) {
	_, err := convert.Do(convert.Request{Family: " Digital-Digital ", Scheme: "NRZ-L", Bits: "1"})
	assert.NoError(t, err)
}

// TestDo_RoutingErrors verifies the dispatch sentinels.
func TestDo_RoutingErrors(t *testing.T) {
	_, err := convert.Do(convert.Request{Family: "digital-quantum", Scheme: "NRZ-L", Bits: "1"})
	assert.ErrorIs(t, err, convert.ErrUnknownFamily)

	_, err = convert.Do(convert.Request{Family: convert.FamilyAnalogSampling, Frequency: 2, Amplitude: 1})
	assert.ErrorIs(t, err, convert.ErrMissingConfig)

	_, err = convert.Do(convert.Request{Family: convert.FamilyLineCoding, Scheme: "9B10B", Bits: "1"})
	assert.ErrorIs(t, err, linecode.ErrUnknownScheme)
}

// TestDo_ForwardsEngineSentinels: engine errors pass through unwrapped.
func TestDo_ForwardsEngineSentinels(t *testing.T) {
	_, err := convert.Do(convert.Request{Family: convert.FamilyLineCoding, Scheme: "AMI", Bits: ""})
	assert.ErrorIs(t, err, core.ErrEmptyBits)

	_, err = convert.Do(convert.Request{
		Family: convert.FamilyAnalogSampling, Frequency: -1, Amplitude: 1,
		PCM: &sampling.PCMConfig{SamplingRate: 10, QuantizationLevels: 4},
	})
	assert.ErrorIs(t, err, core.ErrNonPositiveFrequency)
}

// TestClassify maps representative sentinels onto the taxonomy kinds.
func TestClassify(t *testing.T) {
	cases := []struct {
		req  convert.Request
		want convert.Kind
	}{
		{
			convert.Request{Family: convert.FamilyAnalogModulation, Scheme: "AM", Frequency: 0, Amplitude: 1},
			convert.KindInvalidParameter,
		},
		{
			convert.Request{
				Family: convert.FamilyAnalogSampling, Frequency: 2, Amplitude: 1,
				PCM: &sampling.PCMConfig{SamplingRate: 10, QuantizationLevels: 1},
			},
			convert.KindInvalidParameter,
		},
		{
			convert.Request{Family: convert.FamilyLineCoding, Scheme: "AMI", Bits: "10a"},
			convert.KindInvalidInput,
		},
		{
			convert.Request{Family: convert.FamilyAnalogSampling, Frequency: 2, Amplitude: 1},
			convert.KindInvalidInput,
		},
		{
			convert.Request{Family: convert.FamilyDigitalModulation, Scheme: "OFDM", Bits: "1"},
			convert.KindUnsupportedScheme,
		},
		{
			convert.Request{Family: "nope"},
			convert.KindUnsupportedScheme,
		},
	}

	for _, c := range cases {
		_, err := convert.Do(c.req)
		require.Error(t, err)
		assert.Equal(t, c.want, convert.Classify(err), "request %+v", c.req)
	}

	assert.Equal(t, convert.KindUnknown, convert.Classify(nil))
}
