package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomatolog/goap/internal/config"
	"github.com/tomatolog/goap/internal/progress"
	"github.com/tomatolog/goap/internal/scenario"
	"github.com/tomatolog/goap/internal/telemetry"
)

// PlanCommand loads a scenario file, runs the planner once, and prints the
// resulting plan.
type PlanCommand struct {
	ScenarioFile string `arg:"" name:"scenario" help:"Scenario file to plan for" type:"path"`
	Config       string `name:"config" help:"CLI config file path" type:"path"`
}

// Run executes the plan command.
func (cmd *PlanCommand) Run() error {
	ind := progress.NewIndicator(true)
	ind.Phase("Loading scenario")

	cfg, err := config.LoadConfig(cmd.Config)
	if err != nil {
		ind.Error("load config", err)
		return err
	}

	s, err := scenario.Load(cmd.ScenarioFile)
	if err != nil {
		ind.Error("load scenario", err)
		return err
	}
	if s.Heuristic == "" {
		s.Heuristic = scenarioHeuristic(cfg.Defaults.Heuristic)
	}
	if s.Options.MaxExpansions == 0 {
		s.Options.MaxExpansions = cfg.Defaults.MaxExpansions
	}
	if s.Options.TimeBudget == 0 {
		s.Options.TimeBudget = time.Duration(cfg.Defaults.TimeBudgetMS) * time.Millisecond
	}
	ind.Success(fmt.Sprintf("loaded %s", cmd.ScenarioFile))

	ind.Phase("Searching")
	p, err := s.NewPlanner()
	if err != nil {
		ind.Error("build planner", err)
		return err
	}

	plan, status, err := p.Calculate(s.Options)
	if err != nil {
		ind.Error("calculate", err)
		return err
	}

	stats := p.Stats()
	ind.Step(fmt.Sprintf("expansions=%d open=%d closed=%d", stats.Expansions, stats.OpenLen, stats.ClosedLen))
	ind.Success(fmt.Sprintf("status=%s cost=%.1f steps=%d", status, plan.Cost(), len(plan.Steps)))

	for i, step := range plan.Steps {
		fmt.Printf("  %2d. %-24s g=%.1f\n", i+1, step.ActionName, step.G)
	}

	if reporter := newReporter(cfg); reporter != nil {
		defer reporter.Close()
		rec := telemetry.RunRecord{
			ScenarioName: cmd.ScenarioFile,
			Heuristic:    string(s.Heuristic),
			Status:       status.String(),
			Expansions:   stats.Expansions,
			Duration:     ind.Elapsed(),
			PlanCost:     plan.Cost(),
		}
		if err := reporter.Record(context.Background(), rec); err != nil {
			log.Warn("telemetry record failed", "error", err)
		}
	}

	ind.Summary(true, "")
	return nil
}
