package heuristic

import (
	"math"
	"testing"

	"github.com/tomatolog/goap/internal/catalog"
	"github.com/tomatolog/goap/internal/state"
)

func TestZeroHeuristic(t *testing.T) {
	h := New(Zero, Context{})
	if got := h.Estimate(state.State{"a": state.Bool(true)}); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestMismatchHeuristic(t *testing.T) {
	goal := state.Mask{"a": state.Bool(true), "b": state.Bool(true)}
	h := New(Mismatch, Context{Goal: goal})

	got := h.Estimate(state.State{"a": state.Bool(true)})
	if got != 1 {
		t.Errorf("expected mismatch 1, got %v", got)
	}
}

func TestDomainAwareAdmissibleUnderUniformCost(t *testing.T) {
	goal := state.Mask{"a": state.Bool(true), "b": state.Bool(true)}
	actions := []catalog.Action{
		{Name: "fixAB", Precondition: state.Mask{}, Effect: state.Effect{"a": state.Bool(true), "b": state.Bool(true)}, Cost: 1},
	}
	ctx := BuildContext(DomainAware, state.State{}, goal, actions)
	h := New(DomainAware, ctx)

	got := h.Estimate(state.State{})
	if got != 1 {
		t.Errorf("expected ceil(2/2)=1, got %v", got)
	}
}

func TestRPGAddFiniteOnSolvable(t *testing.T) {
	start := state.State{"hungry": state.Bool(true), "has_food": state.Bool(false)}
	goal := state.Mask{"hungry": state.Bool(false)}
	actions := []catalog.Action{
		{Name: "cook", Precondition: state.Mask{"hungry": state.Bool(true), "has_food": state.Bool(false)},
			Effect: state.Effect{"has_food": state.Bool(true)}, Cost: 1},
		{Name: "eat", Precondition: state.Mask{"hungry": state.Bool(true), "has_food": state.Bool(true)},
			Effect: state.Effect{"hungry": state.Bool(false), "has_food": state.Bool(false)}, Cost: 1},
	}
	ctx := BuildContext(RPGAdd, start, goal, actions)
	h := New(RPGAdd, ctx)

	got := h.Estimate(start)
	if math.IsInf(got, 1) {
		t.Error("expected finite estimate for a solvable goal")
	}
}

func TestRPGAddInfiniteOnUnreachable(t *testing.T) {
	start := state.State{"a": state.Bool(true)}
	goal := state.Mask{"z": state.Bool(true)}
	actions := []catalog.Action{
		{Name: "noop", Precondition: state.Mask{"a": state.Bool(true)}, Effect: state.Effect{"a": state.Bool(true)}, Cost: 1},
	}
	ctx := BuildContext(RPGAdd, start, goal, actions)
	h := New(RPGAdd, ctx)

	got := h.Estimate(start)
	if !math.IsInf(got, 1) {
		t.Errorf("expected +Inf, got %v", got)
	}
}
