// Package roundit defines core types, options, and sentinel errors
// for the roundit subpackage of github.com/michaelc100/chop.
package roundit

import (
	"errors"
	"math"
)

// Sentinel errors returned by the rounding engine and bit-fault injector.
var (
	// ErrBadMode indicates Options.Mode is outside the six supported policies.
	ErrBadMode = errors.New("roundit: rounding mode out of range")

	// ErrBadProbability indicates Options.FlipProb is not within [0, 1].
	ErrBadProbability = errors.New("roundit: flip probability must be in [0, 1]")

	// ErrBadBitWidth indicates fault injection was enabled without a usable
	// bit-width. Flips land on bit positions 1..t-1, so t must be at least 2.
	ErrBadBitWidth = errors.New("roundit: fault injection requires bit-width t >= 2")

	// ErrNilSource indicates a stochastic mode or fault injection was requested
	// without a random source.
	ErrNilSource = errors.New("roundit: stochastic rounding and fault injection require a random source")
)

// Mode selects the rounding policy applied to each element.
//
// The numbering matches the conventional 1..6 selector of low-precision
// emulation toolchains; the zero value is treated as NearestEven so that a
// zero Options struct behaves like DefaultOptions.
type Mode int

const (
	// NearestEven rounds to the nearest integer; exact halves go to the even
	// neighbor (banker's rounding).
	NearestEven Mode = iota + 1

	// TowardPositive rounds toward +∞ (ceiling).
	TowardPositive

	// TowardNegative rounds toward −∞ (floor).
	TowardNegative

	// TowardZero truncates: floor for x ≥ 0, ceiling for x < 0.
	TowardZero

	// StochasticProp rounds the magnitude up with probability equal to its
	// fractional part, giving an unbiased (distance-weighted) result.
	StochasticProp

	// StochasticEqual rounds the magnitude up or down with probability ½,
	// independent of the distance to either neighbor.
	StochasticEqual
)

// Source supplies the uniform random draws consumed by stochastic rounding
// and fault injection. *math/rand.Rand satisfies it; so do the deterministic
// sources from the rng subpackage. Seeding policy is owned by the caller.
type Source interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// Intn returns a uniform draw in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// Quantizer rounds a value to a finite target precision. It is consumed as a
// pure, shape-preserving black box when Options.Accum is set; its internal
// rounding policy is out of scope here. signif.Quantizer implements it.
type Quantizer interface {
	Quantize(x float64) float64
}

// Options configures the rounding engine and the bit-fault injector.
//
// Mode     – rounding policy (default NearestEven; zero value is normalized).
// Flip     – enable bit-fault injection on the rounded magnitudes.
// FlipProb – per-element probability of a flip when Flip is set.
//
//	Must be in [0, 1]. Default 0.5.
//
// Bits     – significand bit-width t bounding the magnitude range [0, 2^t−1].
//
//	Required (≥ 2) when Flip is set; ignored otherwise.
//
// Accum    – when non-nil, stochastic fractions and random draws are passed
//
//	through this quantizer before comparison, emulating a
//	finite-precision accumulator. nil means full working precision.
//
// Rand     – explicit random source. Required for StochasticProp,
//
//	StochasticEqual and Flip; unused by the deterministic modes.
type Options struct {
	Mode     Mode      // Which of the six rounding policies to apply
	Flip     bool      // Whether to inject random bit faults after rounding
	FlipProb float64   // Per-element Bernoulli probability of a fault
	Bits     int       // Assumed magnitude bit-width t for fault positions
	Accum    Quantizer // Optional finite-precision accumulation format
	Rand     Source    // Explicit random source; no global RNG is ever used
}

// DefaultOptions returns an Options struct initialized with the documented
// defaults. Use this as a starting point and override fields as needed.
//
// Defaults:
//   - Mode:     NearestEven (ties-to-even).
//   - Flip:     false (injector is a no-op).
//   - FlipProb: 0.5.
//   - Bits:     0 (must be set explicitly before enabling Flip).
//   - Accum:    nil (full working precision).
//   - Rand:     nil (must be set explicitly for stochastic modes or Flip).
func DefaultOptions() Options {
	return Options{
		Mode:     NearestEven,
		Flip:     false,
		FlipProb: 0.5,
		Bits:     0,
		Accum:    nil,
		Rand:     nil,
	}
}

// validate normalizes the zero-value Mode and checks the configuration,
// returning the first applicable sentinel. It never produces partial output:
// entry points call it before touching the input.
func validate(o *Options) error {
	if o.Mode == 0 {
		// Absent field takes its default.
		o.Mode = NearestEven
	}
	if o.Mode < NearestEven || o.Mode > StochasticEqual {
		return ErrBadMode
	}
	if o.Flip {
		if math.IsNaN(o.FlipProb) || o.FlipProb < 0 || o.FlipProb > 1 {
			return ErrBadProbability
		}
		if o.Bits < 2 {
			return ErrBadBitWidth
		}
	}
	stochastic := o.Mode == StochasticProp || o.Mode == StochasticEqual
	if (stochastic || o.Flip) && o.Rand == nil {
		return ErrNilSource
	}

	return nil
}
