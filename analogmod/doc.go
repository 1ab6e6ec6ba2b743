// Package analogmod implements the analog→analog transformation family:
// a sinusoidal message signal modulates a fixed carrier's amplitude,
// frequency, or phase.
//
// The carrier frequency is pinned at 5× the message frequency with unit
// amplitude, and every sample of the canonical 2 s / 200 samples-per-second
// message input maps to one transmitted sample:
//
//   - AM — s(t) = (1 + 0.8·m/A)·sin(2π·f_c·t)
//   - FM — s(t) = sin(2π·f_c·t + 2π·Δf·(m/A)·t/f_m), Δf = 0.5·f_c
//   - PM — s(t) = sin(2π·f_c·t + (π/2)·m/A)
//
// The FM phase term is a deliberate educational simplification, not the
// textbook integral of the message; it is kept literal for behavioral parity
// with the reference visuals.
//
// No demodulation is simulated: Output always equals Input.
//
// ⚙️ Usage:
//
//	res, err := analogmod.Modulate(2, 1, analogmod.FM)
//
// Complexity: O(duration·rate) time and memory.
package analogmod
