// Package scenario loads a planner configuration (universe, start state,
// goal mask, action catalog, heuristic selection, budgets) from a YAML
// file, mirroring the teacher's internal/config package's
// LoadConfig/SaveConfig/ExampleConfig trio and its ${ENV_VAR} interpolation.
package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tomatolog/goap/internal/catalog"
	"github.com/tomatolog/goap/internal/heuristic"
	"github.com/tomatolog/goap/internal/planner"
	"github.com/tomatolog/goap/internal/state"
)

// rawAction is the on-disk shape of one action. Its precondition and effect
// values are kept as the YAML scalars actually present (with "*" as the
// wildcard sentinel) so toValue can decode them into state.Values without
// losing the bool/int/string distinction.
type rawAction struct {
	Name          string                 `yaml:"name"`
	Preconditions map[string]interface{} `yaml:"preconditions"`
	Effects       map[string]interface{} `yaml:"effects"`
	Cost          float64                `yaml:"cost"`
}

// file is the on-disk YAML shape.
type file struct {
	Universe      []string               `yaml:"universe"`
	Start         map[string]interface{} `yaml:"start"`
	Goal          map[string]interface{} `yaml:"goal"`
	Heuristic     string                 `yaml:"heuristic"`
	StrictEffects bool                   `yaml:"strict_effects"`
	MaxExpansions int                    `yaml:"max_expansions"`
	TimeBudgetMS  int                    `yaml:"time_budget_ms"`
	Actions       []rawAction            `yaml:"actions"`
}

// Scenario is a fully decoded planner configuration, ready to be wired
// into a planner.Planner.
type Scenario struct {
	Keys      []string
	Start     state.State
	Goal      state.Mask
	Heuristic heuristic.Name
	Catalog   *catalog.Catalog
	Options   planner.Options
}

// Load reads and decodes a scenario file, expanding ${ENV_VAR} references
// the same way the teacher's config.LoadConfig does.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var f file
	if err := yaml.Unmarshal([]byte(expanded), &f); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}

	return decode(&f)
}

func decode(f *file) (*Scenario, error) {
	start := state.New()
	for k, raw := range f.Start {
		v, err := toValue(raw)
		if err != nil {
			return nil, fmt.Errorf("start.%s: %w", k, err)
		}
		if v.IsWildcard() {
			return nil, fmt.Errorf("start.%s: wildcard is not permitted in a start state", k)
		}
		start.Set(k, v)
	}

	goal := state.NewMask()
	for k, raw := range f.Goal {
		v, err := toValue(raw)
		if err != nil {
			return nil, fmt.Errorf("goal.%s: %w", k, err)
		}
		goal.Set(k, v)
	}

	c := catalog.New(f.StrictEffects)
	for _, a := range f.Actions {
		pre := state.NewMask()
		for k, raw := range a.Preconditions {
			v, err := toValue(raw)
			if err != nil {
				return nil, fmt.Errorf("actions.%s.preconditions.%s: %w", a.Name, k, err)
			}
			pre.Set(k, v)
		}
		c.AddCondition(a.Name, pre)

		eff := state.NewEffect()
		for k, raw := range a.Effects {
			v, err := toValue(raw)
			if err != nil {
				return nil, fmt.Errorf("actions.%s.effects.%s: %w", a.Name, k, err)
			}
			eff[k] = v
		}
		if err := c.AddEffect(a.Name, eff); err != nil {
			return nil, err
		}
		if err := c.SetCost(a.Name, a.Cost); err != nil {
			return nil, err
		}
	}

	// An empty heuristic is left as-is rather than defaulted here: a
	// caller (e.g. the CLI) may apply its own default first, falling back
	// to heuristic.Zero only if neither specifies one.
	return &Scenario{
		Keys:      f.Universe,
		Start:     start,
		Goal:      goal,
		Heuristic: heuristic.Name(f.Heuristic),
		Catalog:   c,
		Options: planner.Options{
			MaxExpansions: f.MaxExpansions,
			TimeBudget:    time.Duration(f.TimeBudgetMS) * time.Millisecond,
		},
	}, nil
}

// toValue converts a YAML-decoded scalar into a state.Value. The literal
// string "*" decodes to the wildcard sentinel.
func toValue(raw interface{}) (state.Value, error) {
	switch v := raw.(type) {
	case bool:
		return state.Bool(v), nil
	case int:
		return state.Int(int64(v)), nil
	case int64:
		return state.Int(v), nil
	case string:
		if v == "*" {
			return state.Wildcard, nil
		}
		return state.String(v), nil
	default:
		return state.Value{}, fmt.Errorf("unsupported value type %T", raw)
	}
}

// NewPlanner builds a planner.Planner wired up from the scenario.
func (s *Scenario) NewPlanner() (*planner.Planner, error) {
	p := planner.New(s.Keys)
	if err := p.SetStartState(s.Start); err != nil {
		return nil, err
	}
	if err := p.SetGoalState(s.Goal); err != nil {
		return nil, err
	}
	p.SetActionList(s.Catalog)
	p.SetHeuristic(s.Heuristic)
	return p, nil
}

// ExampleScenario returns a commented example scenario file, in the style
// of the teacher's config.ExampleConfig.
func ExampleScenario() string {
	return `# GOAP scenario file
# universe: every state key the planner is allowed to reference
universe: [hungry, has_food]

start:
  hungry: true
  has_food: false

# goal: keys omitted here (or set to "*") are treated as wildcards
goal:
  hungry: false

# heuristic: zero | mismatch | domain_aware | rpg_add
heuristic: rpg_add

# 0 means unbounded
max_expansions: 0
time_budget_ms: 0

actions:
  - name: cook
    preconditions: {hungry: true, has_food: false}
    effects: {has_food: true}
    cost: 1
  - name: eat
    preconditions: {hungry: true, has_food: true}
    effects: {hungry: false, has_food: false}
    cost: 1
`
}

// Save writes a scenario's example form to path, creating parent
// directories as needed, mirroring config.SaveConfig.
func Save(path, contents string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create scenario directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return fmt.Errorf("failed to write scenario file: %w", err)
	}
	return nil
}
