package cmd

import (
	"context"
	"flag"

	"github.com/etnz/compound"
	"github.com/google/subcommands"
)

// inflationCmd holds the flags for the 'inflation' subcommand.
type inflationCmd struct {
	dataset datasetCmd
}

func (*inflationCmd) Name() string { return "inflation" }
func (*inflationCmd) Synopsis() string {
	return "display compounded US inflation"
}
func (*inflationCmd) Usage() string {
	return `cgs inflation [-years <n>] [-initial <amount>] [-json]

  Displays compounded US inflation derived from the CPIAUCSL index, one
  growth factor per calendar year. Live data needs a FRED API key, see
  'cgs topic fallback'.
`
}

func (c *inflationCmd) SetFlags(f *flag.FlagSet) { c.dataset.setFlags(f) }

func (c *inflationCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return c.dataset.run("US Inflation", func(s *compound.Service, years int) compound.GrowthSeries {
		return s.Inflation(years)
	})
}
