package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/giltladder/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive AI assistant session" }
func (*assistCmd) Usage() string {
	return `glc assist [<initial prompt> ...]

  Starts an interactive chat with a retirement income assistant that can
  compute ladders, assess tax and research the gilt market. Requires a
  GEMINI_API_KEY environment variable (a .env file is honored).
`
}

func (*assistCmd) SetFlags(f *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating AI client: %v\n", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, agent.NewPlanner(), agent.NewStrategist())

	var prompts []string
	if len(f.Args()) > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}
	if err := a.Run(ctx, client, prompts...); err != nil {
		fmt.Fprintf(os.Stderr, "Error during assist session: %v\n", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
