// Package agent provides an interactive assistant that answers questions
// about the coin collection by calling into the live ledger.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent runs the chat session between the user and the curator.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Curator *Expert
}

// New creates an Agent writing its output to w and reading user input
// from r.
func New(w io.Writer, r io.Reader, curator *Expert) *Agent {
	return &Agent{
		w:       w,
		r:       bufio.NewReader(r),
		Curator: curator,
	}
}

const prompt = "coinc> "

// Run starts the interactive session. Initial prompts are consumed before
// reading from the user, so a session can be scripted.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if err := a.Curator.Start(ctx, client); err != nil {
		return err
	}

	fmt.Fprintln(a.w, "Welcome to the coin collection assistant. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string
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
					return nil
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		content, err := a.Curator.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content.Parts[0].Text)
	}
}
