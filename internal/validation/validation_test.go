package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tomatolog/goap/internal/config"
	"github.com/tomatolog/goap/internal/scenario"
)

func TestValidateScenarioFileValid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	if err := os.WriteFile(path, []byte(scenario.ExampleScenario()), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	result := ValidateScenarioFile(path)
	if !result.IsValid() {
		t.Fatalf("expected valid scenario, got errors: %v", result.Errors)
	}
}

func TestValidateScenarioFileMissing(t *testing.T) {
	result := ValidateScenarioFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if result.IsValid() {
		t.Fatal("expected an error for a missing file")
	}
}

func TestValidateScenarioFileEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	result := ValidateScenarioFile(path)
	if result.IsValid() {
		t.Fatal("expected an error for an empty file")
	}
}

func TestValidateScenarioFileNegativeCost(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	contents := `
universe: [a]
start: {a: false}
goal: {a: true}
actions:
  - name: flip
    preconditions: {a: false}
    effects: {a: true}
    cost: -1
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	result := ValidateScenarioFile(path)
	if result.IsValid() {
		t.Fatal("expected an error for a negative action cost")
	}
}

func TestValidateConfigRejectsUnknownHeuristic(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Defaults.Heuristic = "bogus"

	result := ValidateConfig(cfg)
	if result.IsValid() {
		t.Fatal("expected an error for an unknown heuristic")
	}
}

func TestValidateConfigDefaultsAreValid(t *testing.T) {
	result := ValidateConfig(config.DefaultConfig())
	if !result.IsValid() {
		t.Fatalf("expected defaults to be valid, got: %v", result.Errors)
	}
}
