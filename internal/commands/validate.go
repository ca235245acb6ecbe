package commands

import (
	"fmt"

	"github.com/tomatolog/goap/internal/validation"
)

// ValidateCommand validates a scenario file without running the planner.
type ValidateCommand struct {
	ScenarioFile string `arg:"" name:"scenario" help:"Scenario file to validate" type:"path"`
}

// Run executes the validate command.
func (cmd *ValidateCommand) Run() error {
	fmt.Printf("Validating scenario file: %s\n\n", cmd.ScenarioFile)

	result := validation.ValidateScenarioFile(cmd.ScenarioFile)
	validation.PrintValidationResult(result)

	if !result.IsValid() {
		return fmt.Errorf("validation failed")
	}
	return nil
}
