// Command glc is the gilt ladder calculator CLI.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/giltladder/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()
	cmd.LoadEnv()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion handles shell completion requests and exits when invoked
// as a completer. Install with 'COMP_INSTALL=1 glc'.
func completion() {
	money := predict.Nothing
	years := predict.Set{"1", "3", "5", "10"}

	portfolio := map[string]complete.Predictor{
		"sipp":        money,
		"isa":         money,
		"target":      money,
		"other":       money,
		"years":       years,
		"start":       predict.Nothing,
		"yield":       predict.Nothing,
		"slope":       predict.Nothing,
		"isa-premium": predict.Nothing,
		"buffer":      predict.Nothing,
	}
	ladder := map[string]complete.Predictor{
		"gilts": predict.Nothing,
		"json":  predict.Nothing,
	}
	for k, v := range portfolio {
		ladder[k] = v
	}

	glc := &complete.Command{
		Sub: map[string]*complete.Command{
			"ladder":  {Flags: ladder},
			"summary": {Flags: portfolio},
			"tax":     {Flags: map[string]complete.Predictor{"income": money}},
			"ytm": {Flags: map[string]complete.Predictor{
				"price":  money,
				"face":   money,
				"coupon": predict.Nothing,
				"years":  predict.Nothing,
			}},
			"gilts":  {Flags: map[string]complete.Predictor{"years": years, "start": predict.Nothing}},
			"topic":  {Args: predict.Set{"readme", "ladder", "tax", "gilts", "guidance", "*"}},
			"assist": {},
		},
	}
	glc.Complete("glc")
}
