package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tomatolog/goap/internal/planner"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadAndRunCookAndEat(t *testing.T) {
	path := writeTemp(t, ExampleScenario())

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	p, err := s.NewPlanner()
	if err != nil {
		t.Fatalf("NewPlanner: %v", err)
	}

	plan, status, err := p.Calculate(s.Options)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if status != planner.StatusFound {
		t.Fatalf("expected StatusFound, got %v", status)
	}
	if plan.Cost() != 2 {
		t.Errorf("expected cost 2, got %v", plan.Cost())
	}
}

func TestLoadRejectsWildcardStart(t *testing.T) {
	path := writeTemp(t, `
universe: [a]
start:
  a: "*"
goal:
  a: true
actions: []
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for wildcard in start state")
	}
}

func TestLoadEnvInterpolation(t *testing.T) {
	os.Setenv("GOAP_TEST_WINDOWS", "2")
	defer os.Unsetenv("GOAP_TEST_WINDOWS")

	path := writeTemp(t, `
universe: [a, windows]
start:
  a: true
  windows: ${GOAP_TEST_WINDOWS}
goal:
  a: true
actions: []
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, _ := s.Start.Get("a"); !got.BoolValue() {
		t.Error("expected a=true")
	}
	if got, _ := s.Start.Get("windows"); got.IntValue() != 2 {
		t.Errorf("expected windows=2 from ${GOAP_TEST_WINDOWS}, got %v", got)
	}
}
