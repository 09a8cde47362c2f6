package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/mvbarbosa/patrimonio"
	"github.com/mvbarbosa/patrimonio/renderer"
)

// trackCmd holds the flags for the 'track' subcommand.
type trackCmd struct {
	scenarioFile string
	trackingFile string
	asJSON       bool
}

func (*trackCmd) Name() string     { return "track" }
func (*trackCmd) Synopsis() string { return "reconcile the plan against reported monthly results" }
func (*trackCmd) Usage() string {
	return `psim track -s <scenario.json> -t <tracking.json> [-json]

  Fold the reported monthly history into today's real and plan-implied
  wealth and print the re-anchored forward projections.
`
}

func (c *trackCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scenarioFile, "s", "scenario.json", "Scenario file (JSON)")
	f.StringVar(&c.trackingFile, "t", "tracking.json", "Tracking history file (JSON)")
	f.BoolVar(&c.asJSON, "json", false, "Emit the raw result as JSON instead of a report")
}

func (c *trackCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	scenario, err := DecodeScenarioFile(c.scenarioFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	records, err := DecodeTrackingFile(c.trackingFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	res, err := patrimonio.Reconcile(scenario, records)
	if errors.Is(err, patrimonio.ErrNoTrackingData) {
		fmt.Fprintln(os.Stderr, "No tracking records yet; nothing to reconcile.")
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	renderer.Tracking(&b, res)
	printMarkdown(b.String())

	return subcommands.ExitSuccess
}
