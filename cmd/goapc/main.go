package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/tomatolog/goap/internal/commands"
)

var CLI struct {
	Plan     commands.PlanCommand     `cmd:"" help:"Search for a plan and print it" default:"withargs"`
	Validate commands.ValidateCommand `cmd:"" help:"Validate a scenario file"`
	Doctor   commands.DoctorCommand   `cmd:"" help:"Run diagnostics on config and scenario files"`
	Debug    commands.DebugCommand    `cmd:"" help:"Launch the interactive debug console"`
	Config   commands.ConfigCommand   `cmd:"" help:"Manage the CLI config file"`
	Scenario commands.ScenarioCommand `cmd:"" help:"Manage scenario files"`
}

const banner = `
  __ _  ___   __ _ _ __   ___
 / _' |/ _ \ / _' | '_ \ / __|
| (_| | (_) | (_| | |_) | (__
 \__, |\___/ \__,_| .__/ \___|
 |___/            |_|

Goal-Oriented Action Planning, deterministic A* over symbolic states
`

func main() {
	log.SetLevel(log.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("goapc"),
		kong.Description("goapc - symbolic GOAP planner\n\nSearch a declared action catalog for the cheapest plan from a start state to a goal."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: false,
			Summary: true,
		}),
	)

	if ctx.Command() == "" {
		fmt.Println(banner)
		fmt.Println("Quick start:")
		fmt.Println("  $ goapc scenario init            # Create an example scenario file")
		fmt.Println("  $ goapc validate scenario.yaml    # Check a scenario file")
		fmt.Println("  $ goapc plan scenario.yaml         # Search for a plan")
		fmt.Println("  $ goapc debug scenario.yaml        # Run and inspect a plan interactively")
		fmt.Println()
		fmt.Println("Run 'goapc --help' for all commands")
		os.Exit(0)
	}

	if err := ctx.Run(); err != nil {
		log.Error("command failed", "error", err)
		os.Exit(1)
	}
}
