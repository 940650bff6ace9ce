// Package cmd implements the CLI application to manage a coin collection.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/coinledger"
	"github.com/google/subcommands"
)

// Commands lists the subcommands a main package should register.
var Commands = []subcommands.Command{
	&statusCmd{},
	&diffCmd{},
	&deltaCmd{},
	&lookupCmd{},
	&seriesCmd{},
	&stageCmd{},
	&reloadCmd{},
	&serveCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var workbookURL = flag.String("workbook-url", "", "URL of the collection workbook (xlsx)")
var snapshotFile = flag.String("snapshot-file", "collection.csv", "Path to the collection snapshot file")

// LoadLedger loads the ledger from the app snapshot file. A missing file
// yields an empty ledger.
func LoadLedger() (*coinledger.Ledger, error) {
	return coinledger.LoadSnapshot(*snapshotFile)
}

// NewKeeper builds the keeper fetching from the app workbook URL and
// persisting to the app snapshot file.
func NewKeeper() (*coinledger.Keeper, error) {
	if *workbookURL == "" {
		return nil, fmt.Errorf("flag -workbook-url is required")
	}
	fetcher := &coinledger.Fetcher{URL: *workbookURL}
	return coinledger.NewKeeper(fetcher.Fetch, *snapshotFile), nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer is not available.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
