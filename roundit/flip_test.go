package roundit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelc100/chop/rng"
	"github.com/michaelc100/chop/roundit"
)

// TestBitFlip_Disabled verifies the injector is a pure copy when Flip is
// unset, for any FlipProb and Bits (even nonsensical ones: they are only
// validated once injection is enabled).
func TestBitFlip_Disabled(t *testing.T) {
	ys := []float64{5, -3, 0, 127}

	opts := roundit.DefaultOptions()
	opts.Flip = false
	opts.FlipProb = 7 // ignored while Flip is off
	opts.Bits = -1    // ignored while Flip is off

	got, err := roundit.BitFlip(ys, opts)
	require.NoError(t, err)
	assert.Equal(t, ys, got)

	// The result is a fresh slice, not an alias of the input.
	got[0] = 99
	assert.Equal(t, 5.0, ys[0])
}

// TestBitFlip_ProbZero verifies p=0 selects no element.
func TestBitFlip_ProbZero(t *testing.T) {
	ys := []float64{1, 2, 3, -4, 0}

	opts := roundit.DefaultOptions()
	opts.Flip = true
	opts.FlipProb = 0
	opts.Bits = 8
	opts.Rand = rng.FromSeed(4)

	got, err := roundit.BitFlip(ys, opts)
	require.NoError(t, err)
	assert.Equal(t, ys, got)
}

// TestBitFlip_ProbOne verifies p=1 perturbs every element: a XOR with a
// nonzero mask always changes the magnitude.
func TestBitFlip_ProbOne(t *testing.T) {
	ys := []float64{5, 6, -3, 0, 100}

	opts := roundit.DefaultOptions()
	opts.Flip = true
	opts.FlipProb = 1
	opts.Bits = 8
	opts.Rand = rng.FromSeed(42)

	got, err := roundit.BitFlip(ys, opts)
	require.NoError(t, err)
	require.Len(t, got, len(ys))
	for i := range ys {
		assert.NotEqual(t, ys[i], got[i], "p=1 must perturb element %d", i)
		assert.Equal(t, math.Trunc(got[i]), got[i], "flip keeps values integral")
	}
}

// TestBitFlip_SignConvention verifies the original sign is reapplied with
// zero treated as positive: negative inputs stay negative, zero becomes a
// positive perturbed magnitude.
func TestBitFlip_SignConvention(t *testing.T) {
	opts := roundit.DefaultOptions()
	opts.Flip = true
	opts.FlipProb = 1
	opts.Bits = 6
	opts.Rand = rng.FromSeed(9)

	got, err := roundit.BitFlip([]float64{-5, -1, 0, 7}, opts)
	require.NoError(t, err)
	assert.Negative(t, got[0])
	assert.Negative(t, got[1])
	assert.Positive(t, got[2], "zero flips to a positive magnitude, never a negative one")
	assert.Positive(t, got[3])
}

// TestBitFlip_BitRange verifies flips land on bit positions 0..t-2 of the
// magnitude: with t=2 only bit 0 is eligible, so the magnitude changes by
// exactly one.
func TestBitFlip_BitRange(t *testing.T) {
	ys := []float64{2, 3, -6, 1}

	opts := roundit.DefaultOptions()
	opts.Flip = true
	opts.FlipProb = 1
	opts.Bits = 2
	opts.Rand = rng.FromSeed(6)

	got, err := roundit.BitFlip(ys, opts)
	require.NoError(t, err)
	for i := range ys {
		diff := math.Abs(math.Abs(got[i]) - math.Abs(ys[i]))
		assert.Equal(t, 1.0, diff, "t=2 flips only the lowest eligible bit (element %d)", i)
	}
}

// TestBitFlip_MagnitudesStayInWidth checks that flipping magnitudes already
// within t bits cannot escape the t-bit range.
func TestBitFlip_MagnitudesStayInWidth(t *testing.T) {
	const bits = 4 // magnitudes in [0, 15]
	ys := []float64{0, 1, 7, 15, -15, -8}

	opts := roundit.DefaultOptions()
	opts.Flip = true
	opts.FlipProb = 1
	opts.Bits = bits
	opts.Rand = rng.FromSeed(31)

	got, err := roundit.BitFlip(ys, opts)
	require.NoError(t, err)
	for i, y := range got {
		assert.LessOrEqual(t, math.Abs(y), 15.0, "element %d escaped the declared width", i)
	}
}

// TestBitFlip_ConfigErrors checks the fail-fast sentinels for fault
// injection.
func TestBitFlip_ConfigErrors(t *testing.T) {
	base := func() roundit.Options {
		opts := roundit.DefaultOptions()
		opts.Flip = true
		opts.Bits = 8
		opts.Rand = rng.FromSeed(1)

		return opts
	}

	opts := base()
	opts.Bits = 0
	_, err := roundit.BitFlip([]float64{1}, opts)
	assert.ErrorIs(t, err, roundit.ErrBadBitWidth, "missing bit-width must fail fast")

	opts = base()
	opts.Bits = 1
	_, err = roundit.BitFlip([]float64{1}, opts)
	assert.ErrorIs(t, err, roundit.ErrBadBitWidth, "t=1 leaves no flippable position")

	opts = base()
	opts.FlipProb = -0.1
	_, err = roundit.BitFlip([]float64{1}, opts)
	assert.ErrorIs(t, err, roundit.ErrBadProbability)

	opts = base()
	opts.FlipProb = 1.5
	_, err = roundit.BitFlip([]float64{1}, opts)
	assert.ErrorIs(t, err, roundit.ErrBadProbability)

	opts = base()
	opts.Rand = nil
	_, err = roundit.BitFlip([]float64{1}, opts)
	assert.ErrorIs(t, err, roundit.ErrNilSource)
}

// TestRound_FlipPipeline verifies Round composes the injector after the
// rounding engine: rounding with Flip set equals rounding without it
// followed by BitFlip on the same stream. NearestEven consumes no draws, so
// the two streams stay aligned.
func TestRound_FlipPipeline(t *testing.T) {
	xs := []float64{4.2, -7.5, 0.4, 12, -0.5}

	flipOpts := roundit.DefaultOptions()
	flipOpts.Flip = true
	flipOpts.FlipProb = 0.6
	flipOpts.Bits = 5
	flipOpts.Rand = rng.FromSeed(77)

	composed, err := roundit.Round(xs, flipOpts)
	require.NoError(t, err)

	rounded, err := roundit.Round(xs, roundit.DefaultOptions())
	require.NoError(t, err)

	flipOpts.Rand = rng.FromSeed(77)
	staged, err := roundit.BitFlip(rounded, flipOpts)
	require.NoError(t, err)

	assert.Equal(t, staged, composed)
}

// TestBitFlip_Empty verifies the empty input round-trips.
func TestBitFlip_Empty(t *testing.T) {
	opts := roundit.DefaultOptions()
	opts.Flip = true
	opts.Bits = 4
	opts.Rand = rng.FromSeed(2)

	got, err := roundit.BitFlip([]float64{}, opts)
	require.NoError(t, err)
	assert.Empty(t, got)
}
