package planner

import (
	"testing"

	"github.com/tomatolog/goap/internal/catalog"
	"github.com/tomatolog/goap/internal/state"
)

func TestWorldReturnsCheapestPlan(t *testing.T) {
	keys := []string{"a", "z"}

	cheap := catalog.New(false)
	cheap.AddCondition("go", state.Mask{"a": state.Bool(true)})
	cheap.AddEffect("go", state.Effect{"z": state.Bool(true)})
	cheap.SetCost("go", 1)

	expensive := catalog.New(false)
	expensive.AddCondition("go", state.Mask{"a": state.Bool(true)})
	expensive.AddEffect("go", state.Effect{"z": state.Bool(true)})
	expensive.SetCost("go", 5)

	w := NewWorld()
	for _, c := range []*catalog.Catalog{expensive, cheap} {
		p := New(keys)
		if err := p.SetStartState(state.State{"a": state.Bool(true)}); err != nil {
			t.Fatal(err)
		}
		if err := p.SetGoalState(state.Mask{"z": state.Bool(true)}); err != nil {
			t.Fatal(err)
		}
		p.SetActionList(c)
		w.Add(p)
	}

	result, err := w.Calculate(Options{})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if result.Status != StatusFound {
		t.Fatalf("expected StatusFound, got %v", result.Status)
	}
	if result.Index != 1 {
		t.Errorf("expected the cheaper planner (index 1) to win, got index %d", result.Index)
	}
	if result.Plan.Cost() != 1 {
		t.Errorf("expected winning cost 1, got %v", result.Plan.Cost())
	}
}

func TestWorldNoPlanWhenAllInfeasible(t *testing.T) {
	keys := []string{"a", "z"}
	w := NewWorld()

	for i := 0; i < 2; i++ {
		c := catalog.New(false)
		c.AddCondition("noop", state.Mask{"a": state.Bool(true)})
		c.AddEffect("noop", state.Effect{"a": state.Bool(true)})
		c.SetCost("noop", 1)

		p := New(keys)
		if err := p.SetStartState(state.State{"a": state.Bool(true)}); err != nil {
			t.Fatal(err)
		}
		if err := p.SetGoalState(state.Mask{"z": state.Bool(true)}); err != nil {
			t.Fatal(err)
		}
		p.SetActionList(c)
		w.Add(p)
	}

	result, err := w.Calculate(Options{})
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if result.Status != StatusNoPlan {
		t.Fatalf("expected StatusNoPlan, got %v", result.Status)
	}
}
