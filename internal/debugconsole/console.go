// Package debugconsole provides an interactive REPL for loading a
// scenario, running the planner against it, and inspecting the resulting
// plan and search statistics. It is styled with lipgloss the way the
// teacher's cmd tools style their terminal output, and tags each session
// with a uuid so a transcript can be correlated with a telemetry record.
package debugconsole

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/tomatolog/goap/internal/planner"
	"github.com/tomatolog/goap/internal/scenario"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	stepStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	costStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	okStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
)

// Console is one interactive debugging session. Each Console has a unique
// ID so its output can be cross-referenced with a telemetry.RunRecord.
type Console struct {
	ID string

	out      io.Writer
	in       *bufio.Scanner
	scenario *scenario.Scenario
	plan     planner.Plan
	status   planner.Status
	stats    planner.Stats
	havePlan bool
}

// New builds a Console reading commands from in and writing output to out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		ID:  uuid.NewString(),
		out: out,
		in:  bufio.NewScanner(in),
	}
}

// Run drives the REPL loop until the input stream closes or "quit" is
// entered. It returns the error (if any) from the last command executed.
func (c *Console) Run() error {
	fmt.Fprintln(c.out, headerStyle.Render(fmt.Sprintf("goap debug console [%s]", c.ID)))
	fmt.Fprintln(c.out, labelStyle.Render("commands: load <path> | run | steps | stats | quit"))

	var lastErr error
	for {
		fmt.Fprint(c.out, "> ")
		if !c.in.Scan() {
			return lastErr
		}
		line := strings.TrimSpace(c.in.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		cmd := fields[0]

		switch cmd {
		case "quit", "exit":
			return lastErr
		case "load":
			if len(fields) != 2 {
				lastErr = c.reportErr(fmt.Errorf("usage: load <path>"))
				continue
			}
			lastErr = c.cmdLoad(fields[1])
		case "run":
			lastErr = c.cmdRun()
		case "steps":
			lastErr = c.cmdSteps()
		case "stats":
			lastErr = c.cmdStats()
		default:
			lastErr = c.reportErr(fmt.Errorf("unknown command %q", cmd))
		}
	}
}

func (c *Console) reportErr(err error) error {
	fmt.Fprintln(c.out, errStyle.Render("error: ")+err.Error())
	return err
}

func (c *Console) cmdLoad(path string) error {
	s, err := scenario.Load(path)
	if err != nil {
		return c.reportErr(err)
	}
	c.scenario = s
	c.havePlan = false
	fmt.Fprintln(c.out, okStyle.Render("loaded")+" "+path)
	return nil
}

func (c *Console) cmdRun() error {
	if c.scenario == nil {
		return c.reportErr(fmt.Errorf("no scenario loaded; use: load <path>"))
	}

	p, err := c.scenario.NewPlanner()
	if err != nil {
		return c.reportErr(err)
	}

	plan, status, err := p.Calculate(c.scenario.Options)
	if err != nil {
		return c.reportErr(err)
	}

	c.plan = plan
	c.status = status
	c.stats = p.Stats()
	c.havePlan = true

	statusLine := fmt.Sprintf("status: %s", status)
	if status == planner.StatusFound {
		fmt.Fprintln(c.out, okStyle.Render(statusLine))
	} else {
		fmt.Fprintln(c.out, errStyle.Render(statusLine))
	}
	fmt.Fprintln(c.out, labelStyle.Render(fmt.Sprintf(
		"expansions=%d open=%d closed=%d cost=%s",
		c.stats.Expansions, c.stats.OpenLen, c.stats.ClosedLen, costStyle.Render(fmt.Sprintf("%.1f", plan.Cost())))))
	return nil
}

func (c *Console) cmdSteps() error {
	if !c.havePlan {
		return c.reportErr(fmt.Errorf("no plan; use: run"))
	}
	if len(c.plan.Steps) == 0 {
		fmt.Fprintln(c.out, labelStyle.Render("(empty plan)"))
		return nil
	}
	prev := c.scenario.Start
	for i, step := range c.plan.Steps {
		changed := prev.Diff(step.State)
		fmt.Fprintln(c.out, stepStyle.Render(fmt.Sprintf("%2d. %-20s g=%.1f  changed=%s",
			i+1, step.ActionName, step.G, strings.Join(changed, ","))))
		prev = step.State
	}
	return nil
}

func (c *Console) cmdStats() error {
	if !c.havePlan {
		return c.reportErr(fmt.Errorf("no stats; use: run"))
	}
	fmt.Fprintln(c.out, labelStyle.Render(fmt.Sprintf(
		"expansions=%d open=%d closed=%d status=%s",
		c.stats.Expansions, c.stats.OpenLen, c.stats.ClosedLen, c.status)))
	return nil
}
