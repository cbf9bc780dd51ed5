package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/giltladder"
	"github.com/etnz/giltladder/renderer"
	"github.com/google/subcommands"
)

// giltsCmd holds the flags for the 'gilts' subcommand.
type giltsCmd struct {
	years int
	start int
}

func (*giltsCmd) Name() string     { return "gilts" }
func (*giltsCmd) Synopsis() string { return "list reference gilts for a ladder" }
func (*giltsCmd) Usage() string {
	return `glc gilts [-years <n>] [-start <year>]

  Lists one reference UK Treasury gilt per rung maturity.
`
}

func (c *giltsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.years, "years", envInt("GLC_YEARS", 5), "Number of rungs in the ladder")
	f.IntVar(&c.start, "start", envInt("GLC_START", time.Now().Year()), "Year the ladder starts")
}

func (c *giltsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.years < 1 {
		fmt.Fprintln(os.Stderr, "Error: -years must be at least 1")
		return subcommands.ExitUsageError
	}

	gilts := make([]giltladder.ReferenceGilt, 0, c.years)
	for year := c.start + 1; year <= c.start+c.years; year++ {
		gilts = append(gilts, giltladder.GiltFor(year))
	}
	printMarkdown(renderer.GiltsMarkdown(gilts))

	return subcommands.ExitSuccess
}
