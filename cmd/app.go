// Package cmd implements the glc CLI application.
package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Commands lists the subcommands in registration order. A main package
// registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&ladderCmd{},
	&summaryCmd{},
	&taxCmd{},
	&ytmCmd{},
	&giltsCmd{},
	&topicCmd{},
	&assistCmd{},
}

// LoadEnv loads flag defaults from a .env file when one exists. Values
// are read back through GLC_* environment variables in SetFlags.
func LoadEnv() {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded flag defaults from .env")
	}
}

// envFloat returns the value of an environment variable as a float64,
// or def when unset or unparsable.
func envFloat(key string, def float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("warning: ignoring %s=%q: %v", key, s, err)
		return def
	}
	return v
}

// envInt returns the value of an environment variable as an int, or def.
func envInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("warning: ignoring %s=%q: %v", key, s, err)
		return def
	}
	return v
}

// printMarkdown renders markdown for the terminal and prints it.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
