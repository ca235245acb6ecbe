// Package heuristic implements the pluggable remaining-cost estimators of
// spec §4.3: zero, mismatch, domain_aware, and rpg_add.
package heuristic

import (
	"math"

	"github.com/tomatolog/goap/internal/catalog"
	"github.com/tomatolog/goap/internal/rpg"
	"github.com/tomatolog/goap/internal/state"
)

// Name identifies a heuristic selection.
type Name string

const (
	Zero       Name = "zero"
	Mismatch   Name = "mismatch"
	DomainAware Name = "domain_aware"
	RPGAdd     Name = "rpg_add"
)

// Provider estimates the remaining cost from s to goal. Implementations
// must be pure and deterministic.
type Provider interface {
	Estimate(s state.State) float64
}

// Context carries whatever precomputation a heuristic needs, built once at
// planner start (§4.4 step 3).
type Context struct {
	Goal      state.Mask
	Actions   []catalog.Action
	RPG       *rpg.Graph // built only when needed by rpg_add
	MinCost   float64
	MaxFixes  int
}

// New constructs the named provider against ctx. Returns an error-free zero
// provider for an unrecognized name so callers that validate the name
// earlier never hit this fallback in practice.
func New(name Name, ctx Context) Provider {
	switch name {
	case Mismatch:
		return mismatchHeuristic{goal: ctx.Goal}
	case DomainAware:
		return domainAwareHeuristic{goal: ctx.Goal, maxFixes: ctx.MaxFixes, minCost: ctx.MinCost}
	case RPGAdd:
		return rpgAddHeuristic{goal: ctx.Goal, graph: ctx.RPG}
	case Zero:
		fallthrough
	default:
		return zeroHeuristic{}
	}
}

// BuildContext precomputes whatever the named heuristic needs: max_fixes
// for domain_aware, and the RPG for rpg_add. Built once at planner start.
func BuildContext(name Name, start state.State, goal state.Mask, actions []catalog.Action) Context {
	ctx := Context{Goal: goal, Actions: actions}

	switch name {
	case DomainAware:
		ctx.MaxFixes = maxFixes(goal, actions)
		ctx.MinCost = minCost(actions)
	case RPGAdd:
		ctx.RPG = rpg.Build(start, actions)
	}
	return ctx
}

type zeroHeuristic struct{}

func (zeroHeuristic) Estimate(state.State) float64 { return 0 }

type mismatchHeuristic struct {
	goal state.Mask
}

func (h mismatchHeuristic) Estimate(s state.State) float64 {
	return float64(state.Mismatch(s, h.goal))
}

type domainAwareHeuristic struct {
	goal     state.Mask
	maxFixes int
	minCost  float64
}

func (h domainAwareHeuristic) Estimate(s state.State) float64 {
	mismatches := state.Mismatch(s, h.goal)
	denom := h.maxFixes
	if denom < 1 {
		denom = 1
	}
	estimate := math.Ceil(float64(mismatches) / float64(denom))
	if h.minCost > 0 {
		estimate *= h.minCost
	}
	return estimate
}

// maxFixes precomputes, over the catalog, the maximum number of
// goal-relevant keys any single action's effect sets to the goal's value.
func maxFixes(goal state.Mask, actions []catalog.Action) int {
	best := 0
	for _, a := range actions {
		fixes := 0
		for k, goalVal := range goal {
			if goalVal.IsWildcard() {
				continue
			}
			if effVal, ok := a.Effect[k]; ok && effVal.Equal(goalVal) {
				fixes++
			}
		}
		if fixes > best {
			best = fixes
		}
	}
	return best
}

func minCost(actions []catalog.Action) float64 {
	if len(actions) == 0 {
		return 0
	}
	best := math.Inf(1)
	for _, a := range actions {
		if a.Cost < best {
			best = a.Cost
		}
	}
	return best
}

type rpgAddHeuristic struct {
	goal  state.Mask
	graph *rpg.Graph
}

func (h rpgAddHeuristic) Estimate(s state.State) float64 {
	if h.graph == nil {
		return 0
	}
	total := 0.0
	for k, want := range h.goal {
		if want.IsWildcard() {
			continue
		}
		got, ok := s[k]
		if ok && got.Equal(want) {
			continue
		}
		lvl := h.graph.FirstLevel(k, want)
		if math.IsInf(lvl, 1) {
			return math.Inf(1)
		}
		total += lvl
	}
	return total
}
