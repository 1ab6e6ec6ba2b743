// Package sampling implements the analog→digital transformation family:
// an analog waveform is resampled at a configured rate and either quantized
// (PCM) or delta-encoded (DM), then reconstructed for comparison against the
// original.
//
// 🚀 Both schemes share one skeleton:
//
//   - the canonical 2 s / 100 samples-per-second sine input (core.AnalogSignal)
//   - sample instants t = i/SamplingRate, rounded to 1 µs to stop floating
//     drift, walked while t does not pass the input's final timestamp
//   - values at arbitrary instants via core.ValueAt (binary search + linear
//     interpolation, O(log n) per query)
//
// PCM normalizes each sample to [0,1] by the known amplitude, rounds to the
// nearest of QuantizationLevels integer levels (Transmitted carries the raw
// level index), and inverse-maps the level back to [−amp, +amp] (Output).
//
// Delta modulation tracks a running approximation: each sample emits bit 1
// when the input exceeds the approximation (else 0), then moves the
// approximation by ±amp·DeltaStepRatio, clamped to ±1.5·amp to bound
// slope-overload drift. Output renders the approximation staircase.
//
// ⚙️ Usage:
//
//	res, err := sampling.PCM(2, 1, sampling.PCMConfig{SamplingRate: 10, QuantizationLevels: 16})
//	res, err = sampling.Delta(2, 1, sampling.DeltaConfig{SamplingRate: 40, DeltaStepRatio: 0.1})
//
// Complexity: O(d·r + s·log(d·r)) for input density d·r and s sample instants.
package sampling
