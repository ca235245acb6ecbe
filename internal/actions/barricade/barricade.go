// Package barricade is an action-factory library for a concrete game
// scenario: an agent at a building must gather tools and barricade every
// remaining window. It is an external collaborator of the planner core
// (spec §1, §6) — it only produces a catalog, start state, and goal mask
// that a caller feeds to planner.Planner.
package barricade

import (
	"fmt"

	"github.com/tomatolog/goap/internal/catalog"
	"github.com/tomatolog/goap/internal/state"
)

// Builder assembles the catalog for an N-window barricade scenario.
type Builder struct {
	windows int
}

// NewBuilder creates a Builder for a scenario with the given number of
// windows remaining at the start.
func NewBuilder(windows int) *Builder {
	return &Builder{windows: windows}
}

// Keys returns the full universe of state keys this scenario uses.
func (b *Builder) Keys() []string {
	return []string{
		"hasHammer", "hasPlank", "hasNails", "atBuilding",
		"windowsRemaining", "hasTarget", "nearWindow", "equipped",
	}
}

// StartState returns the scenario's initial world: at the building,
// unequipped, no window targeted.
func (b *Builder) StartState() state.State {
	return state.State{
		"hasHammer":        state.Bool(false),
		"hasPlank":         state.Bool(false),
		"hasNails":         state.Bool(false),
		"atBuilding":       state.Bool(true),
		"windowsRemaining": state.Int(int64(b.windows)),
		"hasTarget":        state.Bool(false),
		"nearWindow":       state.Bool(false),
		"equipped":         state.Bool(false),
	}
}

// Goal returns the scenario's goal: no windows left to barricade.
func (b *Builder) Goal() state.Mask {
	return state.Mask{"windowsRemaining": state.Int(0)}
}

// BuildCatalog constructs the catalog: one ensureResources, one
// walkToWindow, one equipTools, and a findWindow/barricadeWindow pair per
// remaining window.
func (b *Builder) BuildCatalog() *catalog.Catalog {
	c := catalog.New(false)

	c.AddCondition("ensureResources", state.Mask{"atBuilding": state.Bool(true)})
	c.AddEffect("ensureResources", state.Effect{
		"hasHammer": state.Bool(true), "hasPlank": state.Bool(true), "hasNails": state.Bool(true),
	})
	c.SetCost("ensureResources", 1)

	c.AddCondition("walkToWindow", state.Mask{
		"hasTarget": state.Bool(true), "nearWindow": state.Bool(false),
	})
	c.AddEffect("walkToWindow", state.Effect{"nearWindow": state.Bool(true)})
	c.SetCost("walkToWindow", 2)

	c.AddCondition("equipTools", state.Mask{
		"hasHammer": state.Bool(true), "hasPlank": state.Bool(true), "hasNails": state.Bool(true),
		"nearWindow": state.Bool(true), "equipped": state.Bool(false),
	})
	c.AddEffect("equipTools", state.Effect{"equipped": state.Bool(true)})
	c.SetCost("equipTools", 1)

	for i := 1; i <= b.windows; i++ {
		find := fmt.Sprintf("findWindow%d", i)
		c.AddCondition(find, state.Mask{
			"windowsRemaining": state.Int(int64(i)), "hasTarget": state.Bool(false), "hasHammer": state.Bool(true),
		})
		c.AddEffect(find, state.Effect{"hasTarget": state.Bool(true)})
		c.SetCost(find, 2)

		barricadeWindow := fmt.Sprintf("barricadeWindow%d", i)
		c.AddCondition(barricadeWindow, state.Mask{
			"nearWindow": state.Bool(true), "equipped": state.Bool(true), "windowsRemaining": state.Int(int64(i)),
		})
		c.AddEffect(barricadeWindow, state.Effect{
			"windowsRemaining": state.Int(int64(i - 1)), "hasTarget": state.Bool(false), "nearWindow": state.Bool(false),
		})
		c.SetCost(barricadeWindow, 5)
	}

	return c
}
