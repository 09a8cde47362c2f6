package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/mvbarbosa/patrimonio/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion; a no-op unless invoked by the completion hooks.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"simulate": {Flags: map[string]complete.Predictor{
				"s":      predict.Files("*.json"),
				"stress": predict.Nothing,
				"json":   predict.Nothing,
			}},
			"succession": {Flags: map[string]complete.Predictor{
				"s":    predict.Files("*.json"),
				"json": predict.Nothing,
			}},
			"track": {Flags: map[string]complete.Predictor{
				"s":    predict.Files("*.json"),
				"t":    predict.Files("*.json"),
				"json": predict.Nothing,
			}},
			"topic": {},
		},
	}
	completion.Complete("psim")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
