package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/giltladder"
	"github.com/google/subcommands"
)

// ytmCmd holds the flags for the 'ytm' subcommand.
type ytmCmd struct {
	price  float64
	face   float64
	coupon float64
	years  float64
}

func (*ytmCmd) Name() string     { return "ytm" }
func (*ytmCmd) Synopsis() string { return "approximate the yield to maturity of a gilt" }
func (*ytmCmd) Usage() string {
	return `glc ytm -price <gbp> -coupon <pct> -years <n> [-face <gbp>]

  Approximates the gross redemption yield of a gilt bought at the given
  price, redeeming at face value.
`
}

func (c *ytmCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.price, "price", 0, "Clean purchase price in GBP")
	f.Float64Var(&c.face, "face", 100, "Face value in GBP")
	f.Float64Var(&c.coupon, "coupon", 0, "Annual coupon, in percent of face value")
	f.Float64Var(&c.years, "years", 0, "Years to maturity")
}

func (c *ytmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ytm, err := giltladder.YieldToMaturity(
		giltladder.GBP(c.price),
		giltladder.GBP(c.face),
		giltladder.Percent(c.coupon),
		c.years,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing yield: %v\n", err)
		return exitStatus(err)
	}

	fmt.Printf("Approximate yield to maturity: %s\n", ytm)

	return subcommands.ExitSuccess
}
