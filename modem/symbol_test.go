package modem_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalscope/signalscope/modem"
)

// TestQPSK_GrayPhases verifies the quadrant phase of each 2-bit symbol:
// 00→π/4, 01→3π/4, 11→5π/4, 10→7π/4 (adjacent symbols differ in one bit).
func TestQPSK_GrayPhases(t *testing.T) {
	phases := map[string]float64{
		"00": math.Pi / 4,
		"01": 3 * math.Pi / 4,
		"11": 5 * math.Pi / 4,
		"10": 7 * math.Pi / 4,
	}
	for bits, phase := range phases {
		res, err := modem.Modulate(bits, modem.QPSK, modem.DefaultOptions())
		require.NoError(t, err)
		require.Len(t, res.Transmitted, 201, "one symbol = 2×100+1 points")

		for _, p := range res.Transmitted {
			assert.InDelta(t, math.Sin(2*math.Pi*5*p.X+phase), p.Y, 1e-12, "bits %s", bits)
		}
	}
}

// TestQPSK_Padding: an odd-length bit string is right-padded with a zero,
// so "1" keys the same symbol as "10".
func TestQPSK_Padding(t *testing.T) {
	short, err := modem.Modulate("1", modem.QPSK, modem.DefaultOptions())
	require.NoError(t, err)

	full, err := modem.Modulate("10", modem.QPSK, modem.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, full.Transmitted, short.Transmitted)
	// Input stays unpadded: one bit, two points.
	assert.Len(t, short.Input, 2)
}

// TestMPSK_OctantPhases: 3-bit symbols cover the eight Gray-ordered octants.
func TestMPSK_OctantPhases(t *testing.T) {
	cases := map[string]float64{
		"000": 0,
		"001": math.Pi / 4,
		"011": 2 * math.Pi / 4,
		"010": 3 * math.Pi / 4,
		"110": 4 * math.Pi / 4,
		"111": 5 * math.Pi / 4,
		"101": 6 * math.Pi / 4,
		"100": 7 * math.Pi / 4,
	}
	for bits, phase := range cases {
		res, err := modem.Modulate(bits, modem.MPSK, modem.DefaultOptions())
		require.NoError(t, err)
		require.Len(t, res.Transmitted, 301, "one symbol = 3×100+1 points")

		for _, p := range res.Transmitted {
			assert.InDelta(t, math.Sin(2*math.Pi*5*p.X+phase), p.Y, 1e-12, "bits %s", bits)
		}
	}
}

// TestQAM_CornerSymbols anchors the Gray-coded 4×4 grid at t=0, where the
// waveform equals the in-phase rail: 00xx→−1, 01xx→−1/3, 11xx→+1/3, 10xx→+1.
func TestQAM_CornerSymbols(t *testing.T) {
	cases := map[string]float64{
		"0000": -1,
		"0100": -1.0 / 3,
		"1100": 1.0 / 3,
		"1000": 1,
	}
	for bits, iRail := range cases {
		res, err := modem.Modulate(bits, modem.QAM, modem.DefaultOptions())
		require.NoError(t, err)
		require.Len(t, res.Transmitted, 401, "one symbol = 4×100+1 points")

		assert.InDelta(t, iRail, res.Transmitted[0].Y, 1e-12, "bits %s at t=0", bits)
	}
}

// TestQAM_QuadratureRail: at t=0 the quadrature term vanishes, so symbols
// differing only in the low bit pair coincide there but diverge later.
func TestQAM_QuadratureRail(t *testing.T) {
	a, err := modem.Modulate("0000", modem.QAM, modem.DefaultOptions())
	require.NoError(t, err)

	b, err := modem.Modulate("0010", modem.QAM, modem.DefaultOptions())
	require.NoError(t, err)

	assert.InDelta(t, a.Transmitted[0].Y, b.Transmitted[0].Y, 1e-12)
	assert.NotEqual(t, a.Transmitted[25].Y, b.Transmitted[25].Y)
}

// TestMFSK_ToneLadder: 2-bit symbols select the 2/4/6/8 Hz tones.
func TestMFSK_ToneLadder(t *testing.T) {
	tones := map[string]float64{"00": 2, "01": 4, "10": 6, "11": 8}
	for bits, freq := range tones {
		res, err := modem.Modulate(bits, modem.MFSK, modem.DefaultOptions())
		require.NoError(t, err)

		for _, p := range res.Transmitted {
			assert.InDelta(t, math.Sin(2*math.Pi*freq*p.X), p.Y, 1e-12, "bits %s", bits)
		}
	}
}

// TestOQPSK_ContinuousSeries: OQPSK renders one continuous series (no
// per-symbol endpoint duplication) of n·2·SamplesPerBit+1 points.
func TestOQPSK_ContinuousSeries(t *testing.T) {
	res, err := modem.Modulate("1100", modem.OQPSK, modem.DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, res.Transmitted, 2*2*100+1)

	for i := 1; i < len(res.Transmitted); i++ {
		assert.Greater(t, res.Transmitted[i].X, res.Transmitted[i-1].X,
			"strictly increasing time axis")
	}
}

// TestOQPSK_QuadratureDelay: before the half-symbol offset the waveform
// follows the first symbol on both rails; at t=0 only the in-phase rail
// contributes.
func TestOQPSK_QuadratureDelay(t *testing.T) {
	res, err := modem.Modulate("10", modem.OQPSK, modem.DefaultOptions())
	require.NoError(t, err)

	// Bits 1,0 → I=+1, Q=−1. At t=0: y = (1·cos0 − (−1)·sin0)/√2 = 1/√2.
	assert.InDelta(t, 1/math.Sqrt2, res.Transmitted[0].Y, 1e-12)

	// The whole first symbol uses I[0] and Q[0]; verify a mid-run sample.
	p := res.Transmitted[50] // t = 0.5 s, inside the first half-symbol
	want := (math.Cos(2*math.Pi*5*p.X) + math.Sin(2*math.Pi*5*p.X)) / math.Sqrt2
	assert.InDelta(t, want, p.Y, 1e-12)
}

// TestParseScheme_Aliases resolves the historical alias set.
func TestParseScheme_Aliases(t *testing.T) {
	cases := map[string]modem.Scheme{
		"ask":    modem.ASK,
		"FSK":    modem.FSK,
		"BFSK":   modem.FSK,
		"psk":    modem.PSK,
		"BPSK":   modem.PSK,
		"dpsk":   modem.DPSK,
		"QPSK":   modem.QPSK,
		"oqpsk":  modem.OQPSK,
		"MPSK":   modem.MPSK,
		"8-PSK":  modem.MPSK,
		"QAM":    modem.QAM,
		"16-QAM": modem.QAM,
		"MFSK":   modem.MFSK,
		"4-FSK":  modem.MFSK,
	}
	for name, want := range cases {
		got, err := modem.ParseScheme(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := modem.ParseScheme("OFDM")
	assert.ErrorIs(t, err, modem.ErrUnknownScheme)
}
