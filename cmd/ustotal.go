package cmd

import (
	"context"
	"flag"

	"github.com/etnz/compound"
	"github.com/google/subcommands"
)

// usTotalCmd holds the flags for the 'ustotal' subcommand.
type usTotalCmd struct {
	dataset datasetCmd
}

func (*usTotalCmd) Name() string { return "ustotal" }
func (*usTotalCmd) Synopsis() string {
	return "display the compounded growth of the US total stock market"
}
func (*usTotalCmd) Usage() string {
	return `cgs ustotal [-years <n>] [-initial <amount>] [-json]

  Displays the compounded growth of the US total stock market, proxied
  by the VTI ETF, one growth factor per calendar year.
`
}

func (c *usTotalCmd) SetFlags(f *flag.FlagSet) { c.dataset.setFlags(f) }

func (c *usTotalCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return c.dataset.run("US Total Market", func(s *compound.Service, years int) compound.GrowthSeries {
		return s.USTotalMarket(years)
	})
}
