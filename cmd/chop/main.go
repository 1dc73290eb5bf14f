// Command chop applies the library's rounding and quantization operators to
// numbers given on the command line.
//
// Usage:
//
//	chop round --mode stochastic --seed 42 1.25 -0.5 3
//	chop round --flip --bits 8 --prob 1 -- 5 6 7
//	chop quantize --format binary16 0.1 3.14159
//
// One result is printed per line, in input order. Configuration errors are
// reported before any output is produced.
package main

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/michaelc100/chop/rng"
	"github.com/michaelc100/chop/roundit"
	"github.com/michaelc100/chop/signif"
)

var cli struct {
	Round    RoundCmd    `cmd:"" help:"Round numbers to integers under a selectable policy."`
	Quantize QuantizeCmd `cmd:"" help:"Quantize numbers to a finite floating-point format."`
}

// modeByName maps CLI spellings to roundit policies.
var modeByName = map[string]roundit.Mode{
	"nearest":    roundit.NearestEven,
	"up":         roundit.TowardPositive,
	"down":       roundit.TowardNegative,
	"zero":       roundit.TowardZero,
	"stochastic": roundit.StochasticProp,
	"equal":      roundit.StochasticEqual,
}

// formatByName maps CLI spellings to signif presets.
var formatByName = map[string]signif.Format{
	"binary16": signif.Binary16,
	"bfloat16": signif.BFloat16,
	"binary32": signif.Binary32,
	"binary64": signif.Binary64,
	"fp8e4m3":  signif.Float8E4M3,
	"fp8e5m2":  signif.Float8E5M2,
}

// RoundCmd rounds its arguments to integer values.
type RoundCmd struct {
	Mode  string  `help:"Rounding policy." enum:"nearest,up,down,zero,stochastic,equal" default:"nearest"`
	Seed  int64   `help:"Seed for stochastic draws (0 = fixed default seed)."`
	Flip  bool    `help:"Inject random bit faults after rounding."`
	Bits  int     `help:"Magnitude bit-width t bounding fault positions (required with --flip)."`
	Prob  float64 `help:"Per-element fault probability." default:"0.5"`
	Accum string  `help:"Quantize stochastic intermediates to this format." enum:"none,binary16,bfloat16,binary32,binary64,fp8e4m3,fp8e5m2" default:"none"`

	Numbers []float64 `arg:"" help:"Values to round."`
}

func (c *RoundCmd) Run() error {
	opts := roundit.DefaultOptions()
	opts.Mode = modeByName[c.Mode]
	opts.Flip = c.Flip
	opts.FlipProb = c.Prob
	opts.Bits = c.Bits
	opts.Rand = rng.FromSeed(c.Seed)

	if c.Accum != "none" {
		acc, err := signif.New(formatByName[c.Accum])
		if err != nil {
			return err
		}
		opts.Accum = acc
	}

	ys, err := roundit.Round(c.Numbers, opts)
	if err != nil {
		return err
	}
	printAll(ys)

	return nil
}

// QuantizeCmd rounds its arguments to a reduced-precision format.
type QuantizeCmd struct {
	Format string `help:"Target format." enum:"binary16,bfloat16,binary32,binary64,fp8e4m3,fp8e5m2" default:"binary16"`
	Mode   string `help:"Rounding policy for the significand." enum:"nearest,up,down,zero,stochastic,equal" default:"nearest"`
	Seed   int64  `help:"Seed for stochastic draws (0 = fixed default seed)."`

	Numbers []float64 `arg:"" help:"Values to quantize."`
}

func (c *QuantizeCmd) Run() error {
	q, err := signif.New(
		formatByName[c.Format],
		signif.WithMode(modeByName[c.Mode]),
		signif.WithRand(rng.FromSeed(c.Seed)),
	)
	if err != nil {
		return err
	}
	printAll(q.QuantizeSlice(c.Numbers))

	return nil
}

func printAll(ys []float64) {
	for _, y := range ys {
		fmt.Println(strconv.FormatFloat(y, 'g', -1, 64))
	}
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("chop"),
		kong.Description("Finite-precision arithmetic emulation: integer rounding, bit faults, format quantization."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
