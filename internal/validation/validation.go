// Package validation checks a scenario file (and the CLI's own config)
// for problems before the planner ever sees them, collecting errors and
// warnings instead of failing on the first one.
package validation

import (
	"fmt"
	"os"

	"github.com/tomatolog/goap/internal/config"
	"github.com/tomatolog/goap/internal/scenario"
)

// ValidationError represents one problem found during validation.
type ValidationError struct {
	Field   string
	Message string
	Fix     string
}

func (e ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Field, e.Message)
	if e.Fix != "" {
		msg += fmt.Sprintf("\n  Fix: %s", e.Fix)
	}
	return msg
}

// ValidationResult accumulates errors and warnings from one validation pass.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// IsValid reports whether no errors were recorded. Warnings don't affect it.
func (v *ValidationResult) IsValid() bool {
	return len(v.Errors) == 0
}

func (v *ValidationResult) AddError(field, message, fix string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message, Fix: fix})
}

func (v *ValidationResult) AddWarning(field, message, fix string) {
	v.Warnings = append(v.Warnings, ValidationError{Field: field, Message: message, Fix: fix})
}

// ValidateConfig checks the CLI's own config for obviously broken settings.
func ValidateConfig(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}

	validHeuristics := map[string]bool{
		"zero": true, "mismatch": true, "domain_aware": true, "rpg_add": true,
	}
	if !validHeuristics[cfg.Defaults.Heuristic] {
		result.AddError("defaults.heuristic",
			fmt.Sprintf("unknown heuristic %q", cfg.Defaults.Heuristic),
			"use one of: zero, mismatch, domain_aware, rpg_add")
	}

	if cfg.Defaults.MaxExpansions < 0 {
		result.AddError("defaults.max_expansions", "cannot be negative",
			"use 0 for unbounded")
	}
	if cfg.Defaults.TimeBudgetMS < 0 {
		result.AddError("defaults.time_budget_ms", "cannot be negative",
			"use 0 for unbounded")
	}

	if cfg.Telemetry.InfluxURL != "" && cfg.Telemetry.InfluxToken == "" {
		result.AddWarning("telemetry.influx_token",
			"influx_url is set but influx_token is empty",
			"set INFLUX_TOKEN or telemetry.influx_token")
	}

	return result
}

// ValidateScenarioFile checks that a scenario file exists, parses, and only
// uses declared keys in its start and goal, surfacing the structured errors
// of loading and planner setup (undeclared start/goal keys, invalid or
// missing costs, invalid effect values) plus warnings for suspicious but
// technically valid files. An action declared without effects is not
// reported.
func ValidateScenarioFile(path string) *ValidationResult {
	result := &ValidationResult{}

	if path == "" {
		result.AddError("scenario_file", "no scenario file provided",
			"provide a YAML scenario file")
		return result
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			result.AddError("scenario_file", fmt.Sprintf("file not found: %s", path),
				"check the file path and try again")
		} else {
			result.AddError("scenario_file", fmt.Sprintf("cannot access file: %v", err),
				"check file permissions")
		}
		return result
	}
	if info.IsDir() {
		result.AddError("scenario_file", fmt.Sprintf("%s is a directory", path),
			"provide a file, not a directory")
		return result
	}
	if info.Size() == 0 {
		result.AddError("scenario_file", "file is empty",
			"add a universe, start, goal and actions section")
		return result
	}

	s, err := scenario.Load(path)
	if err != nil {
		result.AddError("scenario_file", err.Error(), "fix the YAML and retry")
		return result
	}
	if _, err := s.NewPlanner(); err != nil {
		result.AddError("scenario_file", err.Error(),
			"declare every start and goal key under universe")
		return result
	}

	universe := make(map[string]bool, len(s.Keys))
	for _, k := range s.Keys {
		universe[k] = true
	}
	if len(universe) == 0 {
		result.AddWarning("universe", "declares no keys",
			"list every state key the planner may reference under universe")
	}

	if len(s.Catalog.Conditions()) == 0 {
		result.AddWarning("actions", "no actions defined",
			"a plan can only exist if at least one action is declared")
	}

	return result
}

// PrintValidationResult prints a ValidationResult the way the CLI reports
// validate/doctor results to the user.
func PrintValidationResult(result *ValidationResult) {
	if len(result.Errors) > 0 {
		fmt.Println("Validation errors:")
		for _, err := range result.Errors {
			fmt.Printf("  - %s\n", err.Error())
		}
		fmt.Println()
	}

	if len(result.Warnings) > 0 {
		fmt.Println("Warnings:")
		for _, warn := range result.Warnings {
			fmt.Printf("  - %s: %s\n", warn.Field, warn.Message)
			if warn.Fix != "" {
				fmt.Printf("    suggestion: %s\n", warn.Fix)
			}
		}
		fmt.Println()
	}

	if result.IsValid() && len(result.Warnings) == 0 {
		fmt.Println("All validations passed")
	}
}
