package commands

import (
	"io"
	"os"
	"strings"

	"github.com/tomatolog/goap/internal/debugconsole"
)

// DebugCommand launches the interactive debug console, optionally
// preloading a scenario file with an initial "load" command.
type DebugCommand struct {
	ScenarioFile string `arg:"" optional:"" name:"scenario" help:"Scenario file to preload" type:"path"`
}

// Run executes the debug command.
func (cmd *DebugCommand) Run() error {
	in := io.Reader(os.Stdin)
	if cmd.ScenarioFile != "" {
		in = io.MultiReader(strings.NewReader("load "+cmd.ScenarioFile+"\n"), os.Stdin)
	}

	c := debugconsole.New(in, os.Stdout)
	return c.Run()
}
