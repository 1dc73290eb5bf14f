package signif_test

import (
	"testing"

	"github.com/michaelc100/chop/rng"
	"github.com/michaelc100/chop/roundit"
	"github.com/michaelc100/chop/signif"
)

// BenchmarkQuantizeSlice_Binary16 measures deterministic half-precision
// quantization of a mixed-magnitude slice.
func BenchmarkQuantizeSlice_Binary16(b *testing.B) {
	q, err := signif.New(signif.Binary16)
	if err != nil {
		b.Fatal(err)
	}

	xs := make([]float64, 4096)
	for i := range xs {
		xs[i] = float64(i%311)*0.173 - 26.0
	}

	b.ReportAllocs()
	b.SetBytes(int64(8 * len(xs)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = q.QuantizeSlice(xs)
	}
}

// BenchmarkQuantizeSlice_StochasticBF16 measures stochastic bfloat16
// quantization, one uniform draw per non-representable element.
func BenchmarkQuantizeSlice_StochasticBF16(b *testing.B) {
	q, err := signif.New(signif.BFloat16,
		signif.WithMode(roundit.StochasticProp),
		signif.WithRand(rng.FromSeed(1)),
	)
	if err != nil {
		b.Fatal(err)
	}

	xs := make([]float64, 4096)
	for i := range xs {
		xs[i] = float64(i%311)*0.173 - 26.0
	}

	b.ReportAllocs()
	b.SetBytes(int64(8 * len(xs)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = q.QuantizeSlice(xs)
	}
}
