package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/coinledger/renderer"
	"github.com/google/subcommands"
)

// seriesCmd holds the flags for the 'series' subcommand.
type seriesCmd struct {
	country string
}

func (*seriesCmd) Name() string     { return "series" }
func (*seriesCmd) Synopsis() string { return "display the denomination grid of one country" }
func (*seriesCmd) Usage() string {
	return `coinc series -country <name>

  Displays the full denomination grid of one country, one row per value
  and one column per minting year.
`
}

func (c *seriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.country, "country", "", "Lowercase english country name, like 'germany'.")
}

func (c *seriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.country == "" {
		fmt.Fprintf(os.Stderr, "Flag -country is required.\n")
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SeriesMarkdown(ledger, c.country))
	return subcommands.ExitSuccess
}
