// Package cmd implements the CLI application serving the growth datasets.
package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/compound"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&sp500Cmd{}, "datasets")
	c.Register(&usTotalCmd{}, "datasets")
	c.Register(&globalCmd{}, "datasets")
	c.Register(&inflationCmd{}, "datasets")
	c.Register(&allCmd{}, "datasets")

	c.Register(&topicCmd{}, "documentation")

	c.Register(&assistCmd{}, "assistant")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var fredAPIKey = flag.String("fred-api-key", "", "FRED API key for live inflation data (defaults to $FRED_API_KEY)")

// service builds the dataset service from the environment, with the
// command line taking precedence.
func service() (*compound.Service, error) {
	cfg, err := compound.FromEnv()
	if err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}
	if *fredAPIKey != "" {
		cfg.FredAPIKey = *fredAPIKey
	}
	return compound.NewService(cfg), nil
}
