// Package core provides the shared primitives of the signal transformation
// engine: time-indexed points, the three-waveform result envelope, bit-string
// parsing, the canonical waveform samplers, and time-domain interpolation.
//
// 🚀 What lives here?
//
//   - Point / SignalResult — the data model every family produces
//   - ParseBits — boundary validation of '0'/'1' strings (validated once,
//     never re-validated inside the engines)
//   - AnalogSignal / DigitalSignal — the canonical sine and square-wave
//     inputs shared by all four transformation families
//   - ValueAt — O(log n) linear interpolation of a sorted series at an
//     arbitrary time instant
//
// ✨ Guarantees:
//
//   - Deterministic: identical inputs always produce identical points.
//   - Pure: no global state, no logging, no side effects; every call
//     allocates a fresh result owned exclusively by the caller.
//   - Ordered: every produced series is ascending in X; duplicate X values
//     appear only at voltage transitions (vertical jumps).
//
// Errors are strict sentinels (ErrEmptyBits, ErrInvalidBit,
// ErrNonPositiveFrequency, ErrNonPositiveAmplitude); see types.go.
package core
