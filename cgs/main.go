package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/compound/cmd"
	"github.com/etnz/compound/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	datasetFlags := map[string]complete.Predictor{
		"years":   predict.Something,
		"initial": predict.Something,
		"json":    predict.Nothing,
	}
	topics, _ := docs.GetAllTopics()

	cmp := &complete.Command{
		Sub: map[string]*complete.Command{
			"sp500":     {Flags: datasetFlags},
			"ustotal":   {Flags: datasetFlags},
			"global":    {Flags: datasetFlags},
			"inflation": {Flags: datasetFlags},
			"all": {Flags: map[string]complete.Predictor{
				"years": predict.Something,
				"json":  predict.Nothing,
			}},
			"topic":  {Args: predict.Set(topics)},
			"assist": {},
		},
		Flags: map[string]complete.Predictor{
			"fred-api-key": predict.Something,
		},
	}
	// Complete must run before flags are parsed: it exits the process
	// when the shell invokes it for completion.
	cmp.Complete("cgs")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
