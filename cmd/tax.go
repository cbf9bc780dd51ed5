package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/giltladder"
	"github.com/etnz/giltladder/renderer"
	"github.com/google/subcommands"
)

// taxCmd holds the flags for the 'tax' subcommand.
type taxCmd struct {
	income float64
}

func (*taxCmd) Name() string     { return "tax" }
func (*taxCmd) Synopsis() string { return "estimate UK income tax on a gross income" }
func (*taxCmd) Usage() string {
	return `glc tax -income <gbp>

  Applies the 2024/25 UK income tax schedule to a gross annual income.
`
}

func (c *taxCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.income, "income", 0, "Gross annual income in GBP")
}

func (c *taxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.income < 0 {
		fmt.Fprintln(os.Stderr, "Error: -income must not be negative")
		return subcommands.ExitUsageError
	}

	a := giltladder.UKTax2024().Assess(giltladder.GBP(c.income))
	printMarkdown(renderer.TaxMarkdown(a))

	return subcommands.ExitSuccess
}
