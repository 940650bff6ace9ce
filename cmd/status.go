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

// statusCmd holds the flags for the 'status' subcommand.
type statusCmd struct {
	on string
}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "display the collection completion summary" }
func (*statusCmd) Usage() string {
	return `coinc status [-on <date>]

  Displays the completion of the collection, overall and by country, year
  and value. With -on, reconstructs the collection as of that date.
`
}

func (c *statusCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.on, "on", "", "Date for the summary. See 'coinc topic dates'.")
}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var on coinledger.Date
	if c.on != "" {
		var err error
		on, err = coinledger.ParseDate(c.on)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	if ledger.Len() == 0 {
		fmt.Fprintf(os.Stderr, "The snapshot is empty, run 'coinc reload' first.\n")
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(coinledger.NewSummary(ledger, on)))
	return subcommands.ExitSuccess
}
