package cmd

import (
	"context"
	"flag"

	"github.com/etnz/compound"
	"github.com/google/subcommands"
)

// globalCmd holds the flags for the 'global' subcommand.
type globalCmd struct {
	dataset datasetCmd
}

func (*globalCmd) Name() string { return "global" }
func (*globalCmd) Synopsis() string {
	return "display the compounded growth of the global stock market"
}
func (*globalCmd) Usage() string {
	return `cgs global [-years <n>] [-initial <amount>] [-json]

  Displays the compounded growth of the world stock market, proxied by
  the VT ETF, one growth factor per calendar year.
`
}

func (c *globalCmd) SetFlags(f *flag.FlagSet) { c.dataset.setFlags(f) }

func (c *globalCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return c.dataset.run("Global Market", func(s *compound.Service, years int) compound.GrowthSeries {
		return s.GlobalMarket(years)
	})
}
