package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/coinledger"
	"github.com/etnz/coinledger/renderer"
	"github.com/google/subcommands"
)

// diffCmd holds the flags for the 'diff' subcommand.
type diffCmd struct {
	from string
	to   string
}

func (*diffCmd) Name() string     { return "diff" }
func (*diffCmd) Synopsis() string { return "display the completion change between two dates" }
func (*diffCmd) Usage() string {
	return `coinc diff -from <date> [-to <date>]

  Compares the completion of the collection between two dates, overall and
  group by group. The end date defaults to today.
`
}

func (c *diffCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start date of the comparison.")
	f.StringVar(&c.to, "to", "today", "End date of the comparison.")
}

func (c *diffCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" {
		fmt.Fprintf(os.Stderr, "Flag -from is required.\n")
		return subcommands.ExitUsageError
	}
	from, err := coinledger.ParseDate(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -from: %v\n", err)
		return subcommands.ExitUsageError
	}
	to, err := coinledger.ParseDate(c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -to: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	diff := coinledger.NewDiff(
		coinledger.NewSummary(ledger, from),
		coinledger.NewSummary(ledger, to),
	)
	printMarkdown(renderer.DiffMarkdown(diff))
	return subcommands.ExitSuccess
}
