// Package quality measures how faithfully a reconstructed waveform tracks
// its reference. It serves the analog→digital family, whose Output series
// (PCM reconstruction, delta-modulation staircase) live on a different time
// grid than the original signal.
//
// 🚀 Metrics:
//
//   - RMSE / MaxAbs — pointwise error after resampling the reference at the
//     candidate's instants (core.ValueAt)
//   - WarpDistance — dynamic-time-warping distance over the level values,
//     tolerant of the small time offsets a staircase introduces; rolling
//     two-row storage, optional Sakoe–Chiba window and slope penalty
//
// ⚙️ Usage:
//
//	res, _ := sampling.PCM(2, 1, sampling.PCMConfig{SamplingRate: 50, QuantizationLevels: 256})
//	rmse, err := quality.RMSE(res.Input, res.Output)
//
// Complexity: RMSE/MaxAbs O(m·log n); WarpDistance O(n·m) time,
// O(min(n,m)) memory.
package quality
