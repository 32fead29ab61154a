package cmd

import (
	"context"
	"flag"

	"github.com/etnz/compound"
	"github.com/google/subcommands"
)

// sp500Cmd holds the flags for the 'sp500' subcommand.
type sp500Cmd struct {
	dataset datasetCmd
}

func (*sp500Cmd) Name() string     { return "sp500" }
func (*sp500Cmd) Synopsis() string { return "display the compounded growth of the S&P 500 index" }
func (*sp500Cmd) Usage() string {
	return `cgs sp500 [-years <n>] [-initial <amount>] [-json]

  Displays the compounded growth of the S&P 500 index, one growth factor
  per calendar year, starting at 1.0.
`
}

func (c *sp500Cmd) SetFlags(f *flag.FlagSet) { c.dataset.setFlags(f) }

func (c *sp500Cmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return c.dataset.run("S&P 500", func(s *compound.Service, years int) compound.GrowthSeries {
		return s.SP500(years)
	})
}
