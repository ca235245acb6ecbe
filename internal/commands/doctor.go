package commands

import (
	"fmt"

	"github.com/tomatolog/goap/internal/config"
	"github.com/tomatolog/goap/internal/validation"
)

// DoctorCommand runs diagnostics on the CLI's own config and, optionally, a
// scenario file.
type DoctorCommand struct {
	Config       string `name:"config" help:"CLI config file path" type:"path"`
	ScenarioFile string `arg:"" optional:"" name:"scenario" help:"Scenario file to check as well" type:"path"`
}

// Run executes the doctor command.
func (cmd *DoctorCommand) Run() error {
	fmt.Println("Running goapc diagnostics...")
	fmt.Println()

	allOK := true

	cfg, err := config.LoadConfig(cmd.Config)
	if err != nil {
		fmt.Printf("config: %v\n", err)
		allOK = false
	} else {
		result := validation.ValidateConfig(cfg)
		if result.IsValid() {
			fmt.Println("config: valid")
		} else {
			fmt.Println("config: has errors")
			for _, e := range result.Errors {
				fmt.Printf("  - %s\n", e.Error())
			}
			allOK = false
		}
		for _, w := range result.Warnings {
			fmt.Printf("warning: %s: %s\n", w.Field, w.Message)
		}

		if cfg.Telemetry.PushgatewayURL == "" && cfg.Telemetry.InfluxURL == "" {
			fmt.Println("telemetry: disabled (no backend configured)")
		} else {
			fmt.Println("telemetry: configured")
		}
	}

	if cmd.ScenarioFile != "" {
		result := validation.ValidateScenarioFile(cmd.ScenarioFile)
		if result.IsValid() {
			fmt.Printf("scenario %s: valid\n", cmd.ScenarioFile)
		} else {
			fmt.Printf("scenario %s: has errors\n", cmd.ScenarioFile)
			for _, e := range result.Errors {
				fmt.Printf("  - %s\n", e.Error())
			}
			allOK = false
		}
	}

	fmt.Println()
	if allOK {
		fmt.Println("All checks passed")
		return nil
	}
	return fmt.Errorf("one or more checks failed")
}
