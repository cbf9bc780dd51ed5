package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/giltladder"
	"github.com/etnz/giltladder/renderer"
	"github.com/google/subcommands"
)

// portfolioFlags holds the flags shared by the ladder and summary
// subcommands. Defaults come from GLC_* variables (see LoadEnv).
type portfolioFlags struct {
	sipp    float64
	isa     float64
	target  float64
	other   float64
	years   int
	start   int
	yield   float64
	slope   float64
	premium float64
	buffer  float64
}

func (p *portfolioFlags) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&p.sipp, "sipp", envFloat("GLC_SIPP", 0), "Current SIPP value in GBP")
	f.Float64Var(&p.isa, "isa", envFloat("GLC_ISA", 0), "Current ISA value in GBP")
	f.Float64Var(&p.target, "target", envFloat("GLC_TARGET", 0), "Target annual income in GBP")
	f.Float64Var(&p.other, "other", envFloat("GLC_OTHER_INCOME", 0), "Other annual pension income in GBP")
	f.IntVar(&p.years, "years", envInt("GLC_YEARS", 5), "Number of rungs in the ladder")
	f.IntVar(&p.start, "start", envInt("GLC_START", time.Now().Year()), "Year the ladder starts; rungs mature from the following year")
	f.Float64Var(&p.yield, "yield", envFloat("GLC_YIELD", 4.5), "Assumed gross yield of the first rung, in percent")
	f.Float64Var(&p.slope, "slope", envFloat("GLC_SLOPE", 0), "Yield increase per extra year of maturity, in percent")
	f.Float64Var(&p.premium, "isa-premium", envFloat("GLC_ISA_PREMIUM", 0), "Extra yield on ISA rungs, in percent")
	f.Float64Var(&p.buffer, "buffer", envFloat("GLC_BUFFER", 0), "Share of each account kept in cash, in percent")
}

func (p *portfolioFlags) build() (giltladder.PortfolioInput, giltladder.LadderSpec) {
	input := giltladder.PortfolioInput{
		SIPPValue:          giltladder.GBP(p.sipp),
		ISAValue:           giltladder.GBP(p.isa),
		TargetAnnualIncome: giltladder.GBP(p.target),
		OtherPensionIncome: giltladder.GBP(p.other),
		LadderYears:        p.years,
		StartYear:          p.start,
	}
	var curve giltladder.YieldCurve
	if p.slope != 0 {
		curve = giltladder.Sloped(giltladder.Percent(p.yield), giltladder.Percent(p.slope))
	} else {
		curve = giltladder.Flat(giltladder.Percent(p.yield))
	}
	spec := giltladder.LadderSpec{
		Curve:           curve,
		Tax:             giltladder.UKTax2024(),
		ISAYieldPremium: giltladder.Percent(p.premium),
		CashBuffer:      giltladder.Percent(p.buffer),
	}
	return input, spec
}

// exitStatus maps engine errors to exit codes: bad parameters are usage
// errors, anything else is a failure.
func exitStatus(err error) subcommands.ExitStatus {
	var invalid *giltladder.InvalidInputError
	var conf *giltladder.ConfigurationError
	if errors.As(err, &invalid) || errors.As(err, &conf) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// ladderCmd holds the flags for the 'ladder' subcommand.
type ladderCmd struct {
	portfolioFlags
	gilts   bool
	jsonOut bool
}

func (*ladderCmd) Name() string     { return "ladder" }
func (*ladderCmd) Synopsis() string { return "allocate the portfolio into a gilt ladder" }
func (*ladderCmd) Usage() string {
	return `glc ladder -sipp <gbp> -isa <gbp> -target <gbp> [-years <n>] [-yield <pct>]

  Splits the portfolio into equal rungs of staggered maturities, ISA
  first, and projects annual income and estimated tax drag.
`
}

func (c *ladderCmd) SetFlags(f *flag.FlagSet) {
	c.portfolioFlags.SetFlags(f)
	f.BoolVar(&c.gilts, "gilts", false, "Also suggest a reference gilt per rung")
	f.BoolVar(&c.jsonOut, "json", false, "Print the raw result as JSON instead of markdown")
}

func (c *ladderCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	input, spec := c.build()
	result, err := giltladder.ComputeLadder(input, spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing ladder: %v\n", err)
		return exitStatus(err)
	}

	if c.jsonOut {
		b, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(b))
		return subcommands.ExitSuccess
	}

	md := renderer.LadderMarkdown(result)
	if c.gilts {
		md += "\n" + renderer.GiltsMarkdown(giltladder.RecommendGilts(result.Rungs))
	}
	printMarkdown(md)

	return subcommands.ExitSuccess
}
