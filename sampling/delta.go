// Package sampling - delta modulation.
package sampling

import (
	"time"

	"github.com/signalscope/signalscope/core"
)

// stepLead is how far before each sample instant the previous staircase
// level is held, so the step renders as a near-vertical jump.
const stepLead = 0.001

// clampSpan bounds the running approximation to ±clampSpan·amp, limiting
// slope-overload drift.
const clampSpan = 1.5

// Delta delta-encodes the canonical sine input: at every sample instant one
// bit is emitted (1 when the input exceeds the running approximation), then
// the approximation moves by ±amp·cfg.DeltaStepRatio.
//
// Transmitted carries the bit stream; Output renders the approximation as a
// staircase — before each step the previous level is held to t−1 ms, and the
// final level extends to the input's end time.
//
// Errors: ErrNonPositiveRate, ErrDeltaStepRatio,
// core.ErrNonPositiveFrequency, core.ErrNonPositiveAmplitude.
func Delta(freq, amp float64, cfg DeltaConfig) (core.SignalResult, error) {
	start := time.Now()

	if cfg.SamplingRate <= 0 {
		return core.SignalResult{}, ErrNonPositiveRate
	}
	if cfg.DeltaStepRatio <= 0 || cfg.DeltaStepRatio > 1 {
		return core.SignalResult{}, ErrDeltaStepRatio
	}

	input, err := core.AnalogSignal(freq, amp, core.DefaultDuration, core.AnalogSamplingRate)
	if err != nil {
		return core.SignalResult{}, err
	}

	var (
		delta    = amp * cfg.DeltaStepRatio
		interval = 1.0 / cfg.SamplingRate
		end      = input[len(input)-1].X
		low      = -clampSpan * amp
		high     = clampSpan * amp

		approximation float64
		transmitted   []core.Point
		output        = []core.Point{{X: 0, Y: 0}}
	)

	for i := 0; ; i++ {
		t := float64(i) * interval
		if t > end {
			break
		}
		t = instantRound(t)

		var bit float64
		if core.ValueAt(input, t) > approximation {
			bit = 1
		}
		transmitted = append(transmitted, core.Point{X: t, Y: bit})

		if bit == 1 {
			approximation += delta
		} else {
			approximation -= delta
		}
		if approximation < low {
			approximation = low
		}
		if approximation > high {
			approximation = high
		}

		// Hold the previous level almost to the instant, then step. The
		// hold point is dropped when it would land before the previous
		// point (the very first instant), keeping the series ascending.
		if prev := output[len(output)-1]; t-stepLead > prev.X {
			output = append(output, core.Point{X: t - stepLead, Y: prev.Y})
		}
		output = append(output, core.Point{X: t, Y: approximation})
	}

	// Extend the last level to the input's end.
	output = append(output, core.Point{X: end, Y: output[len(output)-1].Y})

	return core.SignalResult{
		Input:       input,
		Transmitted: transmitted,
		Output:      output,
		CalcTimeMs:  float64(time.Since(start)) / float64(time.Millisecond),
	}, nil
}
