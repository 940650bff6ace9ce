package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/subcommands"
)

// serveCmd holds the flags for the 'serve' subcommand.
type serveCmd struct {
	every time.Duration
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "keep the snapshot in sync with the workbook" }
func (*serveCmd) Usage() string {
	return `coinc serve -workbook-url <url> [-every <duration>]

  Runs until interrupted, fetching the workbook periodically and updating
  the snapshot. A failed reload keeps the last good state and is retried.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.every, "every", time.Hour, "Reload period.")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	keeper, err := NewKeeper()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := keeper.Bootstrap(ctx); err != nil {
		// Keep serving the snapshot state, the next tick will retry.
		log.Printf("bootstrap: %v", err)
	}
	log.Printf("serving %d coins, reloading every %s", keeper.Current().Len(), c.every)

	keeper.Run(ctx, c.every)
	log.Println("stopped")
	return subcommands.ExitSuccess
}
