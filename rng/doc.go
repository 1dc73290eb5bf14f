// Package rng centralizes deterministic random generation for the chop
// library.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single source factory; no time-based sources hidden
//     anywhere, no process-wide generator state.
//   - Safety: no panics, no logging; pure constructors.
//   - Reproducibility: stochastic rounding and fault injection consume draws
//     through explicit sources, so pinning a seed pins the whole run.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one source across
//     goroutines. Use Derive to create independent streams for parallel
//     chunks; results then stay reproducible regardless of execution order,
//     because each chunk's draws are attributable to its own stream.
//
// ⚙️ Usage:
//
//	src := rng.FromSeed(42)
//	opts := roundit.DefaultOptions()
//	opts.Mode = roundit.StochasticProp
//	opts.Rand = src
package rng
