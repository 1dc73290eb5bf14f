package roundit

import "math"

// BitFlip — probabilistic single-bit fault injection
//
// Description:
//
//	BitFlip perturbs integer-valued elements of ys by flipping one random bit
//	of their magnitude, emulating hardware bit errors in a t-bit significand.
//	It returns a fresh slice; ys is never mutated. When opts.Flip is false
//	the result is simply a copy of ys, for any FlipProb and Bits.
//
// Algorithm Outline:
//  1. Validate options (probability, bit-width, random source); fail fast.
//  2. For each element draw u ~ Uniform(0,1); the element is selected iff
//     u ≤ FlipProb (independent Bernoulli trials, not a fixed fraction).
//  3. For each selected element draw a bit index b uniformly from {1..t−1}
//     (only selected elements consume this second draw), XOR the magnitude
//     with 2^(b−1), and reapply the original sign with zero as positive.
//     Bit 0 of the significand range is never flipped.
//
// Precondition:
//
//	Magnitudes must fit in t bits. The injector does not validate range: a
//	caller that feeds magnitudes ≥ 2^t gets an out-of-range result rather
//	than a silently masked one. Rounding first with a format whose
//	significand matches Bits keeps the precondition true by construction.
//
// Complexity:
//
//	Time O(n), Memory O(n) for the result slice.
//
// Errors:
//   - ErrBadProbability — FlipProb outside [0, 1].
//   - ErrBadBitWidth    — Bits < 2 (no flippable position).
//   - ErrNilSource      — nil Rand with Flip set.
func BitFlip(ys []float64, opts Options) ([]float64, error) {
	// BitFlip inherits the full option contract so that inject(Round(x)) and
	// Round-with-Flip agree; Mode participates in validation but not in the
	// flipping itself.
	if err := validate(&opts); err != nil {
		return nil, err
	}

	out := make([]float64, len(ys))
	copy(out, ys)
	if opts.Flip {
		flipInPlace(out, opts)
	}

	return out, nil
}

// flipInPlace applies the fault-injection step to pre-validated, rounded
// values. Magnitudes are exact integers by contract, so the uint64
// conversion below is lossless within the declared bit-width.
func flipInPlace(ys []float64, opts Options) {
	if opts.FlipProb == 0 {
		// Nothing can be selected; skip the draws entirely.
		return
	}

	width := opts.Bits - 1 // eligible positions: 1..t-1
	var (
		b   int
		mag uint64
	)
	for i, y := range ys {
		if opts.Rand.Float64() > opts.FlipProb {
			continue
		}
		b = opts.Rand.Intn(width) + 1
		mag = uint64(math.Abs(y))
		mag ^= 1 << uint(b-1)
		ys[i] = signOf(y) * float64(mag)
	}
}
