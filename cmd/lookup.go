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

// filterFlags is the common set of coin selection flags.
type filterFlags struct {
	country string
	year    int
	value   string
	source  string
	name    string
	special bool
}

func (c *filterFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.country, "country", "", "Lowercase english country name, like 'germany'.")
	f.IntVar(&c.year, "year", 0, "Minting year.")
	f.StringVar(&c.value, "value", "", "Denomination, like '50 cent' or '2 euro'.")
	f.StringVar(&c.source, "source", "", "Mint mark, like 'a' or 'j'.")
	f.StringVar(&c.name, "name", "", "Part of a commemorative coin's name.")
	f.BoolVar(&c.special, "special", false, "Commemorative coins only.")
}

// Filters turns the set flags into ledger predicates.
func (c *filterFlags) Filters() ([]func(coinledger.Coin) bool, error) {
	var filters []func(coinledger.Coin) bool
	if c.country != "" {
		filters = append(filters, coinledger.ByCountry(c.country))
	}
	if c.year != 0 {
		filters = append(filters, coinledger.ByYear(c.year))
	}
	if c.value != "" {
		value, err := coinledger.ParseDenomination(c.value)
		if err != nil {
			return nil, err
		}
		filters = append(filters, coinledger.ByValue(value))
	}
	if c.source != "" {
		filters = append(filters, coinledger.BySource(c.source))
	}
	if c.name != "" {
		filters = append(filters, coinledger.ByName(c.name))
	}
	if c.special {
		filters = append(filters, coinledger.BySpecial(true))
	}
	return filters, nil
}

// lookupCmd holds the flags for the 'lookup' subcommand.
type lookupCmd struct {
	filterFlags
}

func (*lookupCmd) Name() string     { return "lookup" }
func (*lookupCmd) Synopsis() string { return "find coins and display their status" }
func (*lookupCmd) Usage() string {
	return `coinc lookup [-country <name>] [-year <year>] [-value <value>] [-source <mint>] [-name <text>] [-special]

  Finds the coins matching all given filters and displays their status,
  mint counts and provenance.
`
}

func (c *lookupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filters, err := c.Filters()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	var coins []coinledger.Coin
	for coin := range ledger.Coins(filters...) {
		coins = append(coins, coin)
	}
	printMarkdown(renderer.LookupMarkdown(coins))
	return subcommands.ExitSuccess
}
