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

// stageCmd holds the flags for the 'stage' subcommand.
type stageCmd struct {
	filterFlags
	by string
}

func (*stageCmd) Name() string     { return "stage" }
func (*stageCmd) Synopsis() string { return "mark one coin as found, pending collection" }
func (*stageCmd) Usage() string {
	return `coinc stage -by <collector> [filters]

  Marks the single coin matching the filters as found by the collector,
  pending its physical collection. The filters must match exactly one coin.
`
}

func (c *stageCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
	f.StringVar(&c.by, "by", "", "Name of the collector who found the coin.")
}

func (c *stageCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.by == "" {
		fmt.Fprintf(os.Stderr, "Flag -by is required.\n")
		return subcommands.ExitUsageError
	}
	filters, err := c.Filters()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if len(filters) == 0 {
		fmt.Fprintf(os.Stderr, "At least one filter is required to identify the coin.\n")
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	next, staged, err := ledger.Stage(c.by, filters...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error staging: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := coinledger.SaveSnapshot(*snapshotFile, next); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("⏳ %s is now staged by %s\n", staged.Label(), c.by)
	fmt.Println(renderer.GainText(coinledger.NewGain(next, staged)))
	return subcommands.ExitSuccess
}
