// Package chop is your toolbox for emulating finite-precision arithmetic —
// from configurable integer rounding to target-format significand
// quantization and bit-level fault injection.
//
// 🚀 What is chop?
//
//	A small, deterministic library that brings together:
//		• Integer rounding: six policies, from ties-to-even to stochastic
//		• Fault injection: probabilistic single-bit flips within a bit-width
//		• Significand quantization: binary16, bfloat16, fp8 and custom formats
//		• Reproducible randomness: seedable sources, derivable substreams
//
// ✨ Why choose chop?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – pure functions, sentinel errors, no global state
//   - Pure Go – no cgo, no hidden deps
//   - Reproducible – every random draw flows through an explicit source
//
// Under the hood, everything is organized under three subpackages:
//
//	roundit/ — the rounding engine and bit-fault injector
//	signif/  — significand quantizers for finite floating-point formats
//	rng/     — deterministic random sources and substream derivation
//
// Quick sketch of the pipeline:
//
//	[]float64 ──round──▶ integers ──flip?──▶ []float64
//
// Rounding intermediates can themselves be quantized to a finite
// accumulation format by plugging a signif.Quantizer into roundit.Options,
// modeling hardware whose stochastic-rounding comparators work in reduced
// precision.
//
// Dive into README-style docs in each subpackage and the runnable scenarios
// under examples/ for full walkthroughs.
//
//	go get github.com/michaelc100/chop
package chop
