package debugconsole

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tomatolog/goap/internal/scenario"
)

func writeScenario(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	if err := os.WriteFile(path, []byte(scenario.ExampleScenario()), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestConsoleLoadRunSteps(t *testing.T) {
	path := writeScenario(t)

	var out bytes.Buffer
	in := strings.NewReader("load " + path + "\nrun\nsteps\nstats\nquit\n")

	c := New(in, &out)
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "loaded") {
		t.Errorf("expected load confirmation, got: %s", got)
	}
	if !strings.Contains(got, "status: found") {
		t.Errorf("expected a found status, got: %s", got)
	}
	if !strings.Contains(got, "cook") || !strings.Contains(got, "eat") {
		t.Errorf("expected both plan steps listed, got: %s", got)
	}
}

func TestConsoleRunWithoutLoadErrors(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("run\nquit\n")

	c := New(in, &out)
	if err := c.Run(); err == nil {
		t.Fatal("expected an error from run without a loaded scenario")
	}
	if !strings.Contains(out.String(), "no scenario loaded") {
		t.Errorf("expected 'no scenario loaded' message, got: %s", out.String())
	}
}

func TestConsoleUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("bogus\nquit\n")

	c := New(in, &out)
	if err := c.Run(); err == nil {
		t.Fatal("expected an error for an unknown command")
	}
	if !strings.Contains(out.String(), "unknown command") {
		t.Errorf("expected unknown command message, got: %s", out.String())
	}
}

func TestConsoleHasUniqueID(t *testing.T) {
	a := New(strings.NewReader(""), &bytes.Buffer{})
	b := New(strings.NewReader(""), &bytes.Buffer{})
	if a.ID == b.ID {
		t.Error("expected distinct session IDs")
	}
}
