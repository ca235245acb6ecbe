package commands

import (
	"fmt"
	"os"

	"github.com/tomatolog/goap/internal/config"
	"github.com/tomatolog/goap/internal/scenario"
)

// ConfigCommand manages the CLI's own config file.
type ConfigCommand struct {
	Init ConfigInitCommand `cmd:"" help:"Create a new config file"`
}

// ConfigInitCommand writes an example config file.
type ConfigInitCommand struct {
	Output string `name:"output" help:"Output path for config file" default:"goapc.yaml"`
	Force  bool   `name:"force" help:"Overwrite existing file"`
}

// Run executes the config init command.
func (cmd *ConfigInitCommand) Run() error {
	if _, err := os.Stat(cmd.Output); err == nil && !cmd.Force {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", cmd.Output)
	}

	if err := os.WriteFile(cmd.Output, []byte(config.ExampleConfig()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file: %s\n", cmd.Output)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Edit the config file to set telemetry endpoints, if any")
	fmt.Println("  2. Run 'goapc doctor' to verify it")
	fmt.Println("  3. Run 'goapc plan <scenario.yaml>' to search for a plan")

	return nil
}

// ScenarioCommand manages scenario files.
type ScenarioCommand struct {
	Init ScenarioInitCommand `cmd:"" help:"Create a new example scenario file"`
}

// ScenarioInitCommand writes an example scenario file.
type ScenarioInitCommand struct {
	Output string `name:"output" help:"Output path for scenario file" default:"scenario.yaml"`
	Force  bool   `name:"force" help:"Overwrite existing file"`
}

// Run executes the scenario init command.
func (cmd *ScenarioInitCommand) Run() error {
	if _, err := os.Stat(cmd.Output); err == nil && !cmd.Force {
		return fmt.Errorf("scenario file already exists: %s (use --force to overwrite)", cmd.Output)
	}

	if err := scenario.Save(cmd.Output, scenario.ExampleScenario()); err != nil {
		return err
	}

	fmt.Printf("Created scenario file: %s\n", cmd.Output)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Edit the universe/start/goal/actions to describe your problem")
	fmt.Println("  2. Run 'goapc validate <scenario.yaml>' to check it")
	fmt.Println("  3. Run 'goapc plan <scenario.yaml>' to search for a plan")

	return nil
}
