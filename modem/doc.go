// Package modem implements the digital→analog transformation family: bits
// (or multi-bit symbols) keyed onto a sinusoidal carrier.
//
// 🚀 Binary schemes — one carrier block per bit, 100 samples/bit:
//
//   - ASK  — amplitude keying: 1.0 for bit 1, 0.2 for bit 0, 5 Hz carrier
//   - FSK  — frequency keying: 3 Hz for bit 0, 7 Hz for bit 1 (alias BFSK)
//   - PSK  — phase keying: 0 for bit 1, π for bit 0, 5 Hz carrier (alias BPSK)
//   - DPSK — differential PSK: bit 0 flips the running phase by π, bit 1
//     holds it; phase state persists across bits
//
// 🚀 Symbol schemes — the bit string is right-padded with zeros to a
// multiple of the symbol width, and each symbol spans width×BitDuration:
//
//   - QPSK  — 2 bits → Gray-coded phase quadrant
//   - OQPSK — QPSK with the quadrature stream offset by half a symbol,
//     capping phase jumps at 90°
//   - MPSK  — 8-PSK, 3 bits → Gray-ordered phase octant
//   - QAM   — 16-QAM, 4 bits → Gray-coded 4×4 I/Q grid
//   - MFSK  — 4-FSK, 2 bits → one of four tone frequencies
//
// Constellation tables are fixed per scheme; carrier frequency, tone pair,
// bit duration, and sample density come from Options so alternate grids stay
// testable. No demodulation is simulated: Output always equals Input.
//
// ⚙️ Usage:
//
//	res, err := modem.Modulate("1101", modem.QPSK, modem.DefaultOptions())
//
// Complexity: O(n·SamplesPerBit) time and memory in the number of bits.
package modem
