// Package agent implements the financial data collector: a conversational
// assistant that gathers the essential financial fields from the user,
// validates them through the intake pipeline, and assembles the financial
// state object.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent runs the interactive collection session.
type Agent struct {
	w         io.Writer
	r         *bufio.Reader
	Collector *Expert
}

// New creates a new Agent around the collector expert. It takes an
// io.Writer for the agent's output (e.g., os.Stdout) and an io.Reader for
// user input (e.g., os.Stdin).
func New(w io.Writer, r io.Reader) *Agent {
	return &Agent{
		w:         w,
		r:         bufio.NewReader(r),
		Collector: NewCollector(),
	}
}

const prompt = "collect> "

// Run starts the interactive REPL session. Initial prompts, if any, are
// played before reading from the user.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if err := a.Collector.Start(ctx, client); err != nil {
		return err
	}

	fmt.Fprintln(a.w, "Welcome to fsi financial data collection. Type 'bye' to exit.")

	// Open the conversation: the collector greets and asks first.
	content, err := a.Collector.Ask(ctx, &genai.Part{Text: "Hello"})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.w, content.Parts[0].Text)

	// REPL loop
	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		content, err := a.Collector.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content.Parts[0].Text)
	}
}
