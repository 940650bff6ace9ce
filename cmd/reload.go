package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/coinledger"
	"github.com/google/subcommands"
)

// reloadCmd holds the flags for the 'reload' subcommand.
type reloadCmd struct{}

func (*reloadCmd) Name() string     { return "reload" }
func (*reloadCmd) Synopsis() string { return "fetch the workbook and update the snapshot" }
func (*reloadCmd) Usage() string {
	return `coinc reload -workbook-url <url>

  Fetches the collection workbook, reconciles it with the snapshot and
  saves the result. The snapshot is left untouched on any failure.
`
}

func (c *reloadCmd) SetFlags(f *flag.FlagSet) {}

func (c *reloadCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	keeper, err := NewKeeper()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := keeper.Bootstrap(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error reloading: %v\n", err)
		return subcommands.ExitFailure
	}

	summary := coinledger.NewSummary(keeper.Current(), coinledger.Date{})
	fmt.Printf("✅ Snapshot updated: %d coins, %s complete.\n",
		keeper.Current().Len(), summary.Overall.Ratio())
	return subcommands.ExitSuccess
}
