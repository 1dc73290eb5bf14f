// Package signif quantizes real values to a finite floating-point format:
// a t-bit significand within a bounded exponent range, with optional
// gradual underflow.
//
// 🚀 What is signif?
//
//	The “chopping” half of low-precision emulation. Where roundit maps reals
//	to integers, signif maps reals to the nearest member of a reduced-
//	precision format such as binary16 or bfloat16, using any of the roundit
//	rounding policies for the significand.
//
// ✨ Key features:
//   - format presets: Binary16, BFloat16, Binary32, Binary64, Float8E4M3,
//     Float8E5M2 — or any custom (SignifBits, ExpMin, ExpMax) triple
//   - all six roundit policies, including stochastic rounding
//   - subnormal support (gradual underflow) or flush-to-zero
//   - overflow policy per rounding direction: directed modes clamp at the
//     largest finite magnitude where the direction forbids overflowing,
//     otherwise the result is ±Inf
//   - implements roundit.Quantizer, closing the loop for finite-precision
//     accumulation of stochastic-rounding intermediates
//
// ⚙️ Usage:
//
//	import "github.com/michaelc100/chop/signif"
//
//	q, err := signif.New(signif.Binary16)
//	if err != nil { ... }
//	y := q.Quantize(0.1) // 0.0999755859375, the nearest half-precision value
//
//	// Emulate a bfloat16 accumulator inside stochastic rounding:
//	acc, _ := signif.New(signif.BFloat16)
//	opts := roundit.DefaultOptions()
//	opts.Mode = roundit.StochasticProp
//	opts.Accum = acc
//	opts.Rand = rng.FromSeed(7)
//
// NaN, ±Inf and zero pass through every quantizer unchanged.
//
// Performance:
//
//   - Time:   O(1) per value, O(n) per slice
//   - Memory: O(1) per value; QuantizeSlice allocates only its result
//
// See examples in example_test.go for detailed walkthroughs.
package signif
