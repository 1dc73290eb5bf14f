package roundit

import "math"

// Round — configurable integer rounding
//
// Description:
//
//	Round maps each element of xs to an exact integer value (still carried in
//	float64) according to opts.Mode, then, when opts.Flip is set, perturbs a
//	random subset of the results by flipping one bit of their magnitude
//	(see flip.go). The input slice is never mutated.
//
// Algorithm Outline:
//  1. Validate the options; fail fast with a sentinel, producing no output.
//  2. Dispatch on the closed Mode enumeration, one pure function per policy.
//  3. Deterministic modes transform each element independently.
//  4. Stochastic modes draw one Uniform(0,1) sample per non-integer element,
//     in traversal order; exact integers are copied through and consume no
//     draw. With opts.Accum set, both the fractional part and the draw are
//     quantized before the comparison.
//  5. If opts.Flip, apply the bit-fault injector to the rounded values.
//
// Sign convention:
//
//	Rounding and flipping operate on magnitudes; the original sign is then
//	reapplied, with zero treated as positive. A zero input therefore maps to
//	zero in every non-stochastic mode and is copied through unchanged by the
//	stochastic ones.
//
// Complexity:
//
//	Time O(n), Memory O(n) for the result slice.
//
// Errors:
//   - ErrBadMode        — opts.Mode outside the six policies.
//   - ErrBadProbability — Flip set with FlipProb outside [0, 1].
//   - ErrBadBitWidth    — Flip set with Bits < 2.
//   - ErrNilSource      — stochastic mode or Flip with a nil Rand.
func Round(xs []float64, opts Options) ([]float64, error) {
	if err := validate(&opts); err != nil {
		return nil, err
	}

	out := make([]float64, len(xs))
	switch opts.Mode {
	case NearestEven:
		for i, x := range xs {
			out[i] = signOf(x) * nearestEven(math.Abs(x))
		}
	case TowardPositive:
		for i, x := range xs {
			out[i] = math.Ceil(x)
		}
	case TowardNegative:
		for i, x := range xs {
			out[i] = math.Floor(x)
		}
	case TowardZero:
		// The zero/negative branch is per element, never a whole-array test.
		for i, x := range xs {
			if x >= 0 {
				out[i] = math.Floor(x)
			} else {
				out[i] = math.Ceil(x)
			}
		}
	case StochasticProp:
		stochastic(xs, out, opts, false)
	case StochasticEqual:
		stochastic(xs, out, opts, true)
	}

	if opts.Flip {
		flipInPlace(out, opts)
	}

	return out, nil
}

// RoundScalar rounds a single value under the same contract as Round.
func RoundScalar(x float64, opts Options) (float64, error) {
	ys, err := Round([]float64{x}, opts)
	if err != nil {
		return 0, err
	}

	return ys[0], nil
}

// nearestEven rounds a non-negative magnitude to the nearest integer,
// sending exact halves to the even neighbor. Magnitudes in (0,1) with
// fractional part 0.5 are clamped at zero rather than rounding below it.
func nearestEven(y float64) float64 {
	f := math.Floor(y)
	frac := y - f

	var r float64
	switch {
	case frac > 0.5:
		r = f + 1
	case frac < 0.5:
		r = f
	default:
		// Exact tie: pick the even of floor and floor+1.
		if math.Mod(f, 2) == 0 {
			r = f
		} else {
			r = f + 1
		}
	}
	if r < 0 {
		r = 0
	}

	return r
}

// stochastic rounds magnitudes up or down at random. With equal=false the
// up-probability equals the fractional part (unbiased, distance-weighted);
// with equal=true the threshold is the constant ½. Exact integers are copied
// through unchanged and never consume a draw, so the number of draws equals
// the count of non-integer elements. Seeded runs depend on that count.
func stochastic(xs, out []float64, opts Options, equal bool) {
	var (
		y, f, frac float64
		r, thr     float64
		m          float64
	)
	for i, x := range xs {
		y = math.Abs(x)
		f = math.Floor(y)
		frac = y - f
		if frac == 0 {
			out[i] = x

			continue
		}

		r = opts.Rand.Float64()
		thr = 0.5
		if !equal {
			thr = frac
		}
		if opts.Accum != nil {
			// Finite-precision accumulation: quantize the draw, and for the
			// distance-weighted law also the fraction, before comparing.
			// The constant ½ threshold is exactly representable and stays
			// as-is.
			r = opts.Accum.Quantize(r)
			if !equal {
				thr = opts.Accum.Quantize(frac)
			}
		}

		if r <= thr {
			m = f + 1
		} else {
			m = f
		}
		out[i] = signOf(x) * m
	}
}

// signOf returns ±1 with zero treated as positive. Note that -0.0 < 0 is
// false in IEEE arithmetic, so negative zero also maps to +1.
func signOf(x float64) float64 {
	if x < 0 {
		return -1
	}

	return 1
}
