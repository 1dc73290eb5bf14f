// Package roundit rounds real-valued arrays to integer-valued arrays under a
// configurable policy, optionally followed by probabilistic single-bit faults
// on the rounded magnitudes.
//
// 🚀 What is roundit?
//
//	The elementwise building block for emulating low-precision arithmetic:
//	  • NearestEven     — round to nearest, ties to the even integer
//	  • TowardPositive  — ceiling
//	  • TowardNegative  — floor
//	  • TowardZero      — truncation
//	  • StochasticProp  — round up with probability equal to the fraction
//	  • StochasticEqual — round up or down with probability ½
//
// ✨ Key features:
//   - pure elementwise transform: input is never mutated, shape is preserved
//   - exact integers pass through stochastic modes untouched (and consume
//     no random draw — draw count equals the non-integer element count)
//   - sign of nonzero inputs is always preserved; zero maps to zero
//   - optional bit-fault injection: per-element Bernoulli(p) selection, one
//     random bit of the magnitude flipped within a declared t-bit width
//   - finite-precision accumulation: plug a Quantizer into Options.Accum and
//     stochastic fractions and draws are quantized before comparison
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/michaelc100/chop/rng"
//	  "github.com/michaelc100/chop/roundit"
//	)
//
//	opts := roundit.DefaultOptions()
//	opts.Mode = roundit.StochasticProp
//	opts.Rand = rng.FromSeed(42)
//
//	ys, err := roundit.Round([]float64{1.25, -0.5, 3}, opts)
//
// Determinism:
//
//	All randomness flows through the explicit Options.Rand source; a fixed
//	seed reproduces results exactly. Draws are made in array traversal order.
//
// Performance:
//
//   - Time:   O(n) per call
//   - Memory: O(n) for the output slice; no hidden allocations
//
// See examples in example_test.go for detailed walkthroughs.
package roundit
