package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/coinledger/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion().Complete("coinc")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command tree for shell completion.
func completion() *complete.Command {
	dates := predict.Set{"today"}
	filters := map[string]complete.Predictor{
		"country": predict.Something,
		"year":    predict.Something,
		"value":   predict.Set{"1 cent", "2 cent", "5 cent", "10 cent", "20 cent", "50 cent", "1 euro", "2 euro"},
		"source":  predict.Set{"a", "d", "f", "g", "j"},
		"name":    predict.Something,
		"special": predict.Nothing,
	}
	stage := map[string]complete.Predictor{"by": predict.Something}
	for k, v := range filters {
		stage[k] = v
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"workbook-url":  predict.Something,
			"snapshot-file": predict.Files("*.csv"),
		},
		Sub: map[string]*complete.Command{
			"status": {Flags: map[string]complete.Predictor{"on": dates}},
			"diff":   {Flags: map[string]complete.Predictor{"from": dates, "to": dates}},
			"delta":  {Flags: map[string]complete.Predictor{"from": dates, "to": dates}},
			"lookup": {Flags: filters},
			"series": {Flags: map[string]complete.Predictor{"country": predict.Something}},
			"stage":  {Flags: stage},
			"reload": {},
			"serve":  {Flags: map[string]complete.Predictor{"every": predict.Something}},
			"assist": {},
			"topic":  {Args: predict.Set{"dates", "statuses", "staging", "reports"}},
		},
	}
}
