package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/compound"
	"github.com/etnz/compound/renderer"
	"github.com/google/subcommands"
)

// allCmd holds the flags for the 'all' subcommand.
type allCmd struct {
	years  int
	asJSON bool
}

func (*allCmd) Name() string     { return "all" }
func (*allCmd) Synopsis() string { return "display every dataset side by side" }
func (*allCmd) Usage() string {
	return `cgs all [-years <n>] [-json]

  Fetches the four datasets concurrently and displays them in a single
  table, one column per dataset.
`
}

func (c *allCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.years, "years", compound.DefaultYears, "lookback horizon in years")
	f.BoolVar(&c.asJSON, "json", false, "print the raw series as JSON")
}

func (c *allCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s, err := service()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	datasets := s.Datasets(c.years)

	if c.asJSON {
		b, err := json.Marshal(datasets)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding datasets: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(b))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.DatasetsMarkdown(datasets))
	return subcommands.ExitSuccess
}
