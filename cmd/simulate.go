package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/mvbarbosa/patrimonio"
	"github.com/mvbarbosa/patrimonio/renderer"
)

// simulateCmd holds the flags for the 'simulate' subcommand.
type simulateCmd struct {
	scenarioFile string
	stress       bool
	asJSON       bool
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "project a scenario's wealth and retirement KPIs" }
func (*simulateCmd) Usage() string {
	return `psim simulate -s <scenario.json> [-stress] [-json]

  Run the monthly-stepped wealth projection for a scenario and print the
  KPI, series and succession report.
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scenarioFile, "s", "scenario.json", "Scenario file (JSON)")
	f.BoolVar(&c.stress, "stress", false, "Apply the adverse stress scenario")
	f.BoolVar(&c.asJSON, "json", false, "Emit the raw result as JSON instead of a report")
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	scenario, err := DecodeScenarioFile(c.scenarioFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	res := patrimonio.Run(scenario, c.stress)

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
	renderer.Simulation(&b, scenario, res)
	printMarkdown(b.String())

	return subcommands.ExitSuccess
}
