// Package signif defines formats, options, and sentinel errors
// for the signif subpackage of github.com/michaelc100/chop.
package signif

import (
	"errors"

	"github.com/michaelc100/chop/roundit"
)

// Sentinel errors for quantizer construction.
var (
	// ErrBadFormat indicates a nonsensical format descriptor
	// (SignifBits < 1 or ExpMax < ExpMin).
	ErrBadFormat = errors.New("signif: format must have SignifBits >= 1 and ExpMax >= ExpMin")

	// ErrBadMode indicates the configured rounding mode is out of range.
	ErrBadMode = errors.New("signif: rounding mode out of range")

	// ErrNilSource indicates a stochastic rounding mode was configured
	// without a random source.
	ErrNilSource = errors.New("signif: stochastic mode requires a random source")
)

// Format describes a finite floating-point target: values of the form
// ±m × 2^e with an integer significand m of SignifBits bits (1 ≤ m < 2^t,
// normalized so the leading bit is implicit) and exponent ExpMin ≤ e ≤ ExpMax.
//
// SignifBits – number of significand bits t, implicit leading bit included.
// ExpMin     – smallest normal exponent (e.g. −14 for binary16).
// ExpMax     – largest normal exponent (e.g. 15 for binary16).
// Subnormals – when true, values below 2^ExpMin round on the subnormal grid
//
//	with spacing 2^(ExpMin−t+1) (gradual underflow); when false,
//	they round on the coarse grid {0, ±2^ExpMin} (flush-to-zero).
type Format struct {
	SignifBits int
	ExpMin     int
	ExpMax     int
	Subnormals bool
}

// Preset formats. Parameters follow the corresponding interchange formats;
// Float8E4M3 uses the OCP FP8 convention with its asymmetric exponent range.
var (
	// Binary16 is IEEE 754 half precision: 11-bit significand, e ∈ [−14, 15].
	Binary16 = Format{SignifBits: 11, ExpMin: -14, ExpMax: 15, Subnormals: true}

	// BFloat16 is the truncated-single brain float: 8-bit significand,
	// e ∈ [−126, 127].
	BFloat16 = Format{SignifBits: 8, ExpMin: -126, ExpMax: 127, Subnormals: true}

	// Binary32 is IEEE 754 single precision: 24-bit significand,
	// e ∈ [−126, 127].
	Binary32 = Format{SignifBits: 24, ExpMin: -126, ExpMax: 127, Subnormals: true}

	// Binary64 is IEEE 754 double precision: 53-bit significand,
	// e ∈ [−1022, 1023]. Quantizing float64 to Binary64 is the identity;
	// the preset exists for symmetry and for format-sweep experiments.
	Binary64 = Format{SignifBits: 53, ExpMin: -1022, ExpMax: 1023, Subnormals: true}

	// Float8E4M3 is 8-bit FP8 with a 4-bit significand, e ∈ [−6, 8] (bias 7).
	// The OCP encoding reserves its top mantissa pattern for NaN; that
	// reservation is not modeled here, so the max finite magnitude is 480
	// rather than 448.
	Float8E4M3 = Format{SignifBits: 4, ExpMin: -6, ExpMax: 8, Subnormals: true}

	// Float8E5M2 is 8-bit FP8 with a 3-bit significand, e ∈ [−14, 15]
	// (bias 15, max finite 57344).
	Float8E5M2 = Format{SignifBits: 3, ExpMin: -14, ExpMax: 15, Subnormals: true}
)

// Option configures a Quantizer at construction time.
type Option func(*Quantizer)

// WithMode selects the rounding policy applied to significands.
// Default: roundit.NearestEven.
func WithMode(m roundit.Mode) Option {
	return func(q *Quantizer) { q.ropts.Mode = m }
}

// WithRand supplies the random source consumed by the stochastic policies.
// Required for roundit.StochasticProp and roundit.StochasticEqual; unused by
// the deterministic ones.
func WithRand(src roundit.Source) Option {
	return func(q *Quantizer) { q.ropts.Rand = src }
}
