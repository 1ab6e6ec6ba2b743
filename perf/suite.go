package perf

import (
	"strings"

	"github.com/signalscope/signalscope/analogmod"
	"github.com/signalscope/signalscope/core"
	"github.com/signalscope/signalscope/linecode"
	"github.com/signalscope/signalscope/modem"
	"github.com/signalscope/signalscope/sampling"
)

// Suite returns the canonical scenario set: at least one scheme per
// conversion family, sized so a single run stays in the sub-millisecond
// range on ordinary hardware.
func Suite() []Scenario {
	bits64 := strings.Repeat("10110000", 8)

	return []Scenario{
		{
			Name: "line/b8zs/64bit",
			Run: func() (core.SignalResult, error) {
				return linecode.Encode(bits64, linecode.B8ZS, linecode.DefaultOptions())
			},
		},
		{
			Name: "line/hdb3/64bit",
			Run: func() (core.SignalResult, error) {
				return linecode.Encode(bits64, linecode.HDB3, linecode.DefaultOptions())
			},
		},
		{
			Name: "modem/qpsk/64bit",
			Run: func() (core.SignalResult, error) {
				return modem.Modulate(bits64, modem.QPSK, modem.Options{})
			},
		},
		{
			Name: "modem/qam16/64bit",
			Run: func() (core.SignalResult, error) {
				return modem.Modulate(bits64, modem.QAM, modem.Options{})
			},
		},
		{
			Name: "sampling/pcm/16lvl",
			Run: func() (core.SignalResult, error) {
				return sampling.PCM(2, 1, sampling.PCMConfig{SamplingRate: 10, QuantizationLevels: 16})
			},
		},
		{
			Name: "sampling/delta/r01",
			Run: func() (core.SignalResult, error) {
				return sampling.Delta(2, 1, sampling.DeltaConfig{SamplingRate: 100, DeltaStepRatio: 0.1})
			},
		},
		{
			Name: "analog/am/5hz",
			Run: func() (core.SignalResult, error) {
				return analogmod.Modulate(5, 1, analogmod.AM)
			},
		},
		{
			Name: "analog/fm/5hz",
			Run: func() (core.SignalResult, error) {
				return analogmod.Modulate(5, 1, analogmod.FM)
			},
		},
	}
}
