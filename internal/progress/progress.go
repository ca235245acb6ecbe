// Package progress provides a minimal phase/step indicator for the CLI,
// adapted from the teacher's LLM-pipeline progress reporter for planner
// runs instead.
package progress

import (
	"fmt"
	"sync"
	"time"
)

// Indicator reports the phases of a single planner invocation to stdout.
type Indicator struct {
	enabled bool
	mu      sync.Mutex
	phase   string
	start   time.Time
}

// NewIndicator creates a new progress indicator. Disabled indicators are
// silent no-ops, useful when output is piped or tests run headless.
func NewIndicator(enabled bool) *Indicator {
	return &Indicator{enabled: enabled, start: time.Now()}
}

// Phase announces a new phase of the run (e.g. "Loading scenario", "Searching").
func (p *Indicator) Phase(name string) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.phase = name
	fmt.Printf("\n📋 %s\n", name)
}

// Step reports a sub-step within the current phase.
func (p *Indicator) Step(name string) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Printf("  ├─ %s\n", name)
}

// Success marks the current phase complete.
func (p *Indicator) Success(name string) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Printf("  └─ ✓ %s\n", name)
}

// Error reports a failure within the current phase.
func (p *Indicator) Error(name string, err error) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Printf("  └─ ✗ %s: %v\n", name, err)
}

// Elapsed returns time since the indicator was created.
func (p *Indicator) Elapsed() time.Duration {
	return time.Since(p.start)
}

// Summary prints a final one-line outcome.
func (p *Indicator) Summary(success bool, details string) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	symbol := "✓"
	if !success {
		symbol = "✗"
	}

	fmt.Printf("\n%s Complete in %s\n", symbol, formatDuration(time.Since(p.start)))
	if details != "" {
		fmt.Printf("  %s\n", details)
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%ds", minutes, seconds)
}
