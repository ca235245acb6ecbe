// Package catalog implements the action catalog: accumulation and
// validation of named (precondition, effect, cost) actions, per spec §4.2.
package catalog

import (
	"sort"

	"github.com/tomatolog/goap/internal/state"
)

// entry tracks one action's accumulated condition/effect/cost as the
// builder sees add_condition/add_effect/set_cost calls in any order.
type entry struct {
	precondition state.Mask
	effect       state.Effect
	hasEffect    bool
	cost         float64
	hasCost      bool
}

// Catalog accumulates and validates actions. Strict mode restricts effect
// values to booleans only; non-strict permits boolean, integer, and string.
type Catalog struct {
	strict  bool
	entries map[string]*entry
	order   []string // first-seen order, for stable iteration independent of validation
}

// New creates an empty Catalog. When strict is true, AddEffect rejects any
// non-boolean value.
func New(strict bool) *Catalog {
	return &Catalog{
		strict:  strict,
		entries: make(map[string]*entry),
	}
}

func (c *Catalog) get(name string) *entry {
	e, ok := c.entries[name]
	if !ok {
		e = &entry{precondition: state.NewMask()}
		c.entries[name] = e
		c.order = append(c.order, name)
	}
	return e
}

// AddCondition merges mask into the named action's precondition,
// last-write-wins per key. Creates the action entry if it doesn't exist.
func (c *Catalog) AddCondition(name string, mask state.Mask) {
	e := c.get(name)
	e.precondition.Merge(mask)
}

// AddEffect merges effect into the named action's effect, last-write-wins
// per key. Fails with NoMatchingCondition if the action has no
// precondition yet, InvalidEffectValue if any value is the wildcard, and
// InvalidEffectType if any value's type is outside the permitted domain for
// this catalog's strictness.
func (c *Catalog) AddEffect(name string, effect state.Effect) error {
	e, ok := c.entries[name]
	if !ok {
		return errNoMatchingCondition(name)
	}

	for k, v := range effect {
		if v.IsWildcard() {
			return errInvalidEffectValue(name, k)
		}
		if c.strict && v.Kind() != state.KindBool {
			return errInvalidEffectType(name, k, kindName(v.Kind()))
		}
	}

	if !e.hasEffect {
		e.effect = state.NewEffect()
		e.hasEffect = true
	}
	e.effect.Merge(effect)
	return nil
}

// SetCost overwrites the named action's cost. Fails with
// NoMatchingCondition if the action has no precondition, InvalidCost if
// cost is not a finite number strictly greater than zero.
func (c *Catalog) SetCost(name string, cost float64) error {
	e, ok := c.entries[name]
	if !ok {
		return errNoMatchingCondition(name)
	}
	if !validCost(cost) {
		return errInvalidCost(name)
	}
	e.cost = cost
	e.hasCost = true
	return nil
}

// Conditions returns a snapshot of every action's accumulated precondition,
// keyed by action name.
func (c *Catalog) Conditions() map[string]state.Mask {
	out := make(map[string]state.Mask, len(c.entries))
	for name, e := range c.entries {
		out[name] = e.precondition.Clone()
	}
	return out
}

// Effects returns a snapshot of every action's accumulated effect, keyed by
// action name.
func (c *Catalog) Effects() map[string]state.Effect {
	out := make(map[string]state.Effect, len(c.entries))
	for name, e := range c.entries {
		if e.hasEffect {
			out[name] = e.effect.Clone()
		}
	}
	return out
}

// Costs returns a snapshot of every action's cost, keyed by action name.
func (c *Catalog) Costs() map[string]float64 {
	out := make(map[string]float64, len(c.entries))
	for name, e := range c.entries {
		if e.hasCost {
			out[name] = e.cost
		}
	}
	return out
}

// Validate checks that every action with a precondition also has an effect
// and a valid positive finite cost, and returns the fully assembled,
// deep-copied action list sorted ascending by name — fixing the
// neighbor-generation order the planner relies on for determinism.
func (c *Catalog) Validate() ([]Action, error) {
	names := make([]string, len(c.order))
	copy(names, c.order)
	sort.Strings(names)

	actions := make([]Action, 0, len(names))
	for _, name := range names {
		e := c.entries[name]
		if !e.hasEffect {
			return nil, errMissingEffect(name)
		}
		if !e.hasCost {
			return nil, errMissingCost(name)
		}
		if !validCost(e.cost) {
			return nil, errInvalidCost(name)
		}
		actions = append(actions, Action{
			Name:         name,
			Precondition: e.precondition.Clone(),
			Effect:       e.effect.Clone(),
			Cost:         e.cost,
		})
	}
	return actions, nil
}

func kindName(k state.Kind) string {
	switch k {
	case state.KindBool:
		return "boolean"
	case state.KindInt:
		return "integer"
	case state.KindString:
		return "string"
	case state.KindWildcard:
		return "wildcard"
	default:
		return "unknown"
	}
}
