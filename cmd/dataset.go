package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/compound"
	"github.com/etnz/compound/renderer"
	"github.com/google/subcommands"
)

// datasetCmd holds the flags shared by every dataset subcommand.
type datasetCmd struct {
	years   int
	initial float64
	asJSON  bool
}

func (c *datasetCmd) setFlags(f *flag.FlagSet) {
	f.IntVar(&c.years, "years", compound.DefaultYears, "lookback horizon in years")
	f.Float64Var(&c.initial, "initial", 10000, "initial amount in USD projected through the series, 0 to disable")
	f.BoolVar(&c.asJSON, "json", false, "print the raw series as JSON")
}

// run fetches one dataset and prints it, as JSON or as a rendered
// table.
func (c *datasetCmd) run(title string, fetch func(s *compound.Service, years int) compound.GrowthSeries) subcommands.ExitStatus {
	s, err := service()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	series := fetch(s, c.years)

	if c.asJSON {
		b, err := json.Marshal(series)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding series: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(b))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.GrowthMarkdown(title, series, compound.M(c.initial, "USD")))
	return subcommands.ExitSuccess
}
