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

// deltaCmd holds the flags for the 'delta' subcommand.
type deltaCmd struct {
	from string
	to   string
}

func (*deltaCmd) Name() string     { return "delta" }
func (*deltaCmd) Synopsis() string { return "list the coins gained over a period" }
func (*deltaCmd) Usage() string {
	return `coinc delta -from <date> [-to <date>]

  Lists the individual coins collected over the period, plus the coins
  currently staged for collection. The end date defaults to today.
`
}

func (c *deltaCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start date of the period.")
	f.StringVar(&c.to, "to", "today", "End date of the period.")
}

func (c *deltaCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.DeltaMarkdown(coinledger.NewDelta(ledger, from, to)))
	return subcommands.ExitSuccess
}
