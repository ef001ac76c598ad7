// Package cmd implements the CLI application to parse, validate and
// collect personal financial data.
package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok
// to keep command state in the command structs themselves.

// Commands lists all subcommands in help order. A main package calls
// Register on each and Execute on the user-selected one.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&checkCmd{},
		&amountCmd{},
		&topicCmd{},
		&assistCmd{},
	}
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when rendering fails (e.g. no usable terminal profile).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
