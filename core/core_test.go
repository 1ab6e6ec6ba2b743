package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalscope/signalscope/core"
)

// TestParseBits_Valid decodes a mixed bit string into numeric bits.
func TestParseBits_Valid(t *testing.T) {
	bits, err := core.ParseBits("10110")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0, 1, 1, 0}, bits)
}

// TestParseBits_Empty verifies the empty-input sentinel.
func TestParseBits_Empty(t *testing.T) {
	_, err := core.ParseBits("")
	assert.ErrorIs(t, err, core.ErrEmptyBits)
}

// TestParseBits_InvalidCharacter verifies the invalid-character sentinel.
func TestParseBits_InvalidCharacter(t *testing.T) {
	for _, s := range []string{"102", "abc", "1 0", "0b1"} {
		_, err := core.ParseBits(s)
		assert.ErrorIs(t, err, core.ErrInvalidBit, "input %q", s)
	}
}

// TestAnalogSignal_Shape checks sample count, grid spacing, and amplitude.
func TestAnalogSignal_Shape(t *testing.T) {
	sig, err := core.AnalogSignal(2, 1, core.DefaultDuration, core.AnalogSamplingRate)
	require.NoError(t, err)
	require.Len(t, sig, 200)

	assert.Equal(t, 0.0, sig[0].X, "first sample at t=0")
	assert.InDelta(t, 0.01, sig[1].X-sig[0].X, 1e-12, "grid step 1/rate")

	for _, p := range sig {
		assert.InDelta(t, math.Sin(2*math.Pi*2*p.X), p.Y, 1e-12)
		assert.LessOrEqual(t, math.Abs(p.Y), 1.0)
	}
}

// TestAnalogSignal_Invalid verifies parameter sentinels.
func TestAnalogSignal_Invalid(t *testing.T) {
	_, err := core.AnalogSignal(0, 1, 2, 100)
	assert.ErrorIs(t, err, core.ErrNonPositiveFrequency)

	_, err = core.AnalogSignal(1, -2, 2, 100)
	assert.ErrorIs(t, err, core.ErrNonPositiveAmplitude)
}

// TestDigitalSignal_StepFunction checks the two-points-per-bit rendering.
func TestDigitalSignal_StepFunction(t *testing.T) {
	sig := core.DigitalSignal([]byte{1, 0, 1}, 1.0)
	require.Len(t, sig, 6)

	want := []core.Point{
		{X: 0, Y: 1}, {X: 1, Y: 1},
		{X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 2, Y: 1}, {X: 3, Y: 1},
	}
	assert.Equal(t, want, sig)
}

// TestValueAt_EndpointsAndMidpoint verifies the exactness property: for any
// adjacent pair (t1,y1),(t2,y2), querying t1 yields y1, t2 yields y2, and
// the midpoint yields the mean.
func TestValueAt_EndpointsAndMidpoint(t *testing.T) {
	sig := []core.Point{{X: 0, Y: 0}, {X: 1, Y: 4}, {X: 3, Y: -2}}

	assert.Equal(t, 0.0, core.ValueAt(sig, 0))
	assert.Equal(t, 4.0, core.ValueAt(sig, 1))
	assert.Equal(t, -2.0, core.ValueAt(sig, 3))
	assert.InDelta(t, 2.0, core.ValueAt(sig, 0.5), 1e-12)
	assert.InDelta(t, 1.0, core.ValueAt(sig, 2), 1e-12)
}

// TestValueAt_BoundaryClamp verifies clamping outside the time range.
func TestValueAt_BoundaryClamp(t *testing.T) {
	sig := []core.Point{{X: 1, Y: 5}, {X: 2, Y: 7}}

	assert.Equal(t, 5.0, core.ValueAt(sig, -10))
	assert.Equal(t, 7.0, core.ValueAt(sig, 99))
}

// TestValueAt_DuplicateX resolves vertical jumps to the earlier point.
func TestValueAt_DuplicateX(t *testing.T) {
	sig := []core.Point{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: -1}, {X: 2, Y: -1}}

	assert.Equal(t, 1.0, core.ValueAt(sig, 1))
	assert.InDelta(t, -1.0, core.ValueAt(sig, 1.5), 1e-12)
}

// TestValueAt_Empty yields zero for an empty series.
func TestValueAt_Empty(t *testing.T) {
	assert.Equal(t, 0.0, core.ValueAt(nil, 1))
}
