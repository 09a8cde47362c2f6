// Package cmd implements the CLI application around the planning engine.
package cmd

import (
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mvbarbosa/patrimonio"
)

// Commands is the list of subcommands registered by the psim binary.
var Commands = []subcommands.Command{
	&simulateCmd{},
	&successionCmd{},
	&trackCmd{},
	&topicCmd{},
}

// DecodeScenarioFile loads a scenario from its permissive JSON file form.
func DecodeScenarioFile(path string) (patrimonio.ScenarioInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return patrimonio.ScenarioInput{}, fmt.Errorf("opening scenario %q: %w", path, err)
	}
	defer f.Close()
	return patrimonio.DecodeScenario(f)
}

// DecodeTrackingFile loads the reported monthly history from a JSON file.
func DecodeTrackingFile(path string) ([]patrimonio.TrackingRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening tracking history %q: %w", path, err)
	}
	defer f.Close()
	return patrimonio.DecodeTracking(f)
}
