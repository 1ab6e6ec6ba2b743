// Package sampling - pulse-code modulation.
package sampling

import (
	"math"
	"time"

	"github.com/signalscope/signalscope/core"
)

// PCM samples the canonical sine input at cfg.SamplingRate, quantizes each
// sample to the nearest of cfg.QuantizationLevels levels, and reconstructs
// the waveform from the levels.
//
// Transmitted carries the raw quantization index (an integer in
// [0, QuantizationLevels−1]); Output carries the reconstruction mapped back
// to [−amp, +amp]. Sample instants run from t = 0 through the input's final
// timestamp inclusive.
//
// Errors: ErrNonPositiveRate, ErrQuantizationLevels,
// core.ErrNonPositiveFrequency, core.ErrNonPositiveAmplitude.
func PCM(freq, amp float64, cfg PCMConfig) (core.SignalResult, error) {
	start := time.Now()

	if cfg.SamplingRate <= 0 {
		return core.SignalResult{}, ErrNonPositiveRate
	}
	if cfg.QuantizationLevels < 2 {
		return core.SignalResult{}, ErrQuantizationLevels
	}

	input, err := core.AnalogSignal(freq, amp, core.DefaultDuration, core.AnalogSamplingRate)
	if err != nil {
		return core.SignalResult{}, err
	}

	var (
		interval   = 1.0 / cfg.SamplingRate
		end        = input[len(input)-1].X
		quantRange = float64(cfg.QuantizationLevels - 1)
		invAmp     = 1.0 / amp

		transmitted []core.Point
		output      []core.Point
	)

	for i := 0; ; i++ {
		t := float64(i) * interval
		if t > end {
			break
		}
		t = instantRound(t)

		var (
			value         = core.ValueAt(input, t)
			normalized    = (value*invAmp + 1) * 0.5
			quantized     = math.Round(normalized * quantRange)
			reconstructed = (quantized/quantRange*2 - 1) * amp
		)
		transmitted = append(transmitted, core.Point{X: t, Y: quantized})
		output = append(output, core.Point{X: t, Y: reconstructed})
	}

	return core.SignalResult{
		Input:       input,
		Transmitted: transmitted,
		Output:      output,
		CalcTimeMs:  float64(time.Since(start)) / float64(time.Millisecond),
	}, nil
}
