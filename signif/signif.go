package signif

import (
	"math"

	"github.com/michaelc100/chop/roundit"
)

// Quantizer rounds values to a fixed finite floating-point format.
// Construct with New; the zero value is not usable.
//
// Quantizer is a pure function of its configuration apart from the optional
// random source consumed by stochastic modes. It implements roundit.Quantizer
// and can therefore serve as the Accum collaborator of the rounding engine.
type Quantizer struct {
	format    Format
	ropts     roundit.Options
	maxFinite float64
}

// New builds a Quantizer for format f.
//
// Defaults: rounding mode roundit.NearestEven, no random source.
// Override via WithMode / WithRand.
//
// Errors:
//   - ErrBadFormat  — SignifBits < 1 or ExpMax < ExpMin.
//   - ErrBadMode    — configured mode outside the six roundit policies.
//   - ErrNilSource  — stochastic mode configured without a source.
//
// Complexity: O(1).
func New(f Format, opts ...Option) (*Quantizer, error) {
	if f.SignifBits < 1 || f.ExpMax < f.ExpMin {
		return nil, ErrBadFormat
	}

	q := &Quantizer{format: f, ropts: roundit.DefaultOptions()}
	for _, opt := range opts {
		opt(q)
	}

	if q.ropts.Mode < roundit.NearestEven || q.ropts.Mode > roundit.StochasticEqual {
		return nil, ErrBadMode
	}
	stochastic := q.ropts.Mode == roundit.StochasticProp || q.ropts.Mode == roundit.StochasticEqual
	if stochastic && q.ropts.Rand == nil {
		return nil, ErrNilSource
	}

	// Largest finite magnitude: (2 − 2^(1−t)) · 2^ExpMax.
	q.maxFinite = (2 - math.Ldexp(1, 1-f.SignifBits)) * math.Ldexp(1, f.ExpMax)

	return q, nil
}

// Format returns the target format descriptor.
func (q *Quantizer) Format() Format { return q.format }

// Quantize rounds x to the nearest member of the target format under the
// configured policy. NaN, ±Inf and zero are returned unchanged.
//
// Implementation:
//  1. Locate x's binary exponent e (|x| = m·2^e, m ∈ [1,2)).
//  2. Pick the grid: normal numbers are scaled by 2^(t−1−e) so the
//     significand occupies exactly t bits; values below 2^ExpMin use the
//     subnormal grid 2^(ExpMin−t+1), or the flush grid 2^ExpMin when the
//     format has no subnormals.
//  3. Integer-round the scaled value with the configured roundit policy
//     (sign-aware, so directed modes keep their direction).
//  4. Unscale. Magnitudes beyond the largest finite value overflow to ±Inf,
//     except where the rounding direction forbids growing the magnitude, in
//     which case the result clamps at ±MaxFinite.
//
// Complexity: O(1).
func (q *Quantizer) Quantize(x float64) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	t := q.format.SignifBits
	_, exp := math.Frexp(math.Abs(x)) // |x| = frac·2^exp, frac ∈ [0.5, 1)
	e := exp - 1

	// Shift instead of multiplying by 2^sh: the scale factor itself can
	// overflow float64 for extreme exponents, Ldexp cannot.
	var sh int
	switch {
	case e >= q.format.ExpMin:
		sh = t - 1 - e
	case q.format.Subnormals:
		sh = t - 1 - q.format.ExpMin
	default:
		sh = -q.format.ExpMin
	}

	// Options were validated in New; RoundScalar cannot fail here.
	m, _ := roundit.RoundScalar(math.Ldexp(x, sh), q.ropts)
	y := math.Ldexp(m, -sh)

	if math.Abs(y) > q.maxFinite {
		y = q.overflow(y)
	}

	return y
}

// QuantizeSlice quantizes every element of xs into a fresh slice of the same
// length. The input is never mutated.
//
// Complexity: O(n).
func (q *Quantizer) QuantizeSlice(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = q.Quantize(x)
	}

	return out
}

// MaxFinite returns the largest finite magnitude representable in the format.
func (q *Quantizer) MaxFinite() float64 { return q.maxFinite }

// overflow resolves a rounded magnitude beyond MaxFinite. Directed modes
// clamp where their direction cannot legally grow the magnitude; everything
// else overflows to infinity with the original sign.
func (q *Quantizer) overflow(y float64) float64 {
	switch q.ropts.Mode {
	case roundit.TowardZero:
		if y > 0 {
			return q.maxFinite
		}

		return -q.maxFinite
	case roundit.TowardNegative:
		if y > 0 {
			return q.maxFinite
		}

		return math.Inf(-1)
	case roundit.TowardPositive:
		if y < 0 {
			return -q.maxFinite
		}

		return math.Inf(1)
	default:
		if y > 0 {
			return math.Inf(1)
		}

		return math.Inf(-1)
	}
}
