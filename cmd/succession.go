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

// successionCmd holds the flags for the 'succession' subcommand.
type successionCmd struct {
	scenarioFile string
	asJSON       bool
}

func (*successionCmd) Name() string     { return "succession" }
func (*successionCmd) Synopsis() string { return "estimate estate transfer costs and liquidity gap" }
func (*successionCmd) Usage() string {
	return `psim succession -s <scenario.json> [-json]

  Estimate the transfer-tax, legal and administrative costs of passing the
  estate on, and the liquidity shortfall heirs would face.
`
}

func (c *successionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scenarioFile, "s", "scenario.json", "Scenario file (JSON)")
	f.BoolVar(&c.asJSON, "json", false, "Emit the raw result as JSON instead of a report")
}

func (c *successionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	scenario, err := DecodeScenarioFile(c.scenarioFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	res := patrimonio.Run(scenario, false)

	if c.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res.Succession); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	renderer.Succession(&b, res.Succession)
	printMarkdown(b.String())

	return subcommands.ExitSuccess
}
