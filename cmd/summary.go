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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	portfolioFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the ladder income and tax summary" }
func (*summaryCmd) Usage() string {
	return `glc summary -sipp <gbp> -isa <gbp> -target <gbp> [-other <gbp>]

  Computes the ladder and displays gross, tax, net and net-versus-target
  income figures.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.portfolioFlags.SetFlags(f)
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	input, spec := c.build()
	result, err := giltladder.ComputeLadder(input, spec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing ladder: %v\n", err)
		return exitStatus(err)
	}

	printMarkdown(renderer.SummaryMarkdown(giltladder.NewIncomeSummary(result, input)))

	return subcommands.ExitSuccess
}
