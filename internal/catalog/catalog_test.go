package catalog

import (
	"testing"

	"github.com/tomatolog/goap/internal/state"
)

func TestCatalogBuildAndValidate(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		c := New(false)
		c.AddCondition("cook", state.Mask{"hungry": state.Bool(true), "has_food": state.Bool(false)})
		if err := c.AddEffect("cook", state.Effect{"has_food": state.Bool(true)}); err != nil {
			t.Fatalf("AddEffect: %v", err)
		}
		if err := c.SetCost("cook", 1); err != nil {
			t.Fatalf("SetCost: %v", err)
		}

		actions, err := c.Validate()
		if err != nil {
			t.Fatalf("Validate: %v", err)
		}
		if len(actions) != 1 || actions[0].Name != "cook" {
			t.Fatalf("unexpected actions: %+v", actions)
		}
	})

	t.Run("last write wins", func(t *testing.T) {
		c := New(false)
		c.AddCondition("a", state.Mask{"x": state.Bool(true)})
		c.AddCondition("a", state.Mask{"x": state.Bool(false), "y": state.Bool(true)})
		conds := c.Conditions()
		if got := conds["a"]["x"]; got.BoolValue() != false {
			t.Errorf("expected last-write-wins to set x=false, got %v", got)
		}
	})

	t.Run("no matching condition", func(t *testing.T) {
		c := New(false)
		err := c.AddEffect("ghost", state.Effect{"x": state.Bool(true)})
		assertKind(t, err, KindNoMatchingCondition)

		err = c.SetCost("ghost", 1)
		assertKind(t, err, KindNoMatchingCondition)
	})

	t.Run("invalid effect value", func(t *testing.T) {
		c := New(false)
		c.AddCondition("a", state.Mask{"x": state.Bool(true)})
		err := c.AddEffect("a", state.Effect{"y": state.Wildcard})
		assertKind(t, err, KindInvalidEffectValue)
	})

	t.Run("strict mode rejects non-boolean effects", func(t *testing.T) {
		c := New(true)
		c.AddCondition("a", state.Mask{"x": state.Bool(true)})
		err := c.AddEffect("a", state.Effect{"y": state.Int(1)})
		assertKind(t, err, KindInvalidEffectType)
	})

	t.Run("invalid cost", func(t *testing.T) {
		c := New(false)
		c.AddCondition("a", state.Mask{"x": state.Bool(true)})
		if err := c.SetCost("a", 0); err == nil {
			t.Fatal("expected error for zero cost")
		}
		if err := c.SetCost("a", -1); err == nil {
			t.Fatal("expected error for negative cost")
		}
	})

	t.Run("missing effect at validate", func(t *testing.T) {
		c := New(false)
		c.AddCondition("a", state.Mask{"x": state.Bool(true)})
		c.SetCost("a", 1)
		_, err := c.Validate()
		assertKind(t, err, KindMissingEffect)
	})

	t.Run("missing cost at validate", func(t *testing.T) {
		c := New(false)
		c.AddCondition("a", state.Mask{"x": state.Bool(true)})
		c.AddEffect("a", state.Effect{"y": state.Bool(true)})
		_, err := c.Validate()
		assertKind(t, err, KindMissingCost)
	})

	t.Run("validate returns sorted actions", func(t *testing.T) {
		c := New(false)
		for _, name := range []string{"zeta", "alpha", "mike"} {
			c.AddCondition(name, state.Mask{"x": state.Bool(true)})
			c.AddEffect(name, state.Effect{"y": state.Bool(true)})
			c.SetCost(name, 1)
		}
		actions, err := c.Validate()
		if err != nil {
			t.Fatalf("Validate: %v", err)
		}
		want := []string{"alpha", "mike", "zeta"}
		for i, name := range want {
			if actions[i].Name != name {
				t.Errorf("index %d: got %s, want %s", i, actions[i].Name, name)
			}
		}
	})
}

func assertKind(t *testing.T, err error, want Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error of kind %s, got nil", want)
	}
	ce, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *catalog.Error, got %T", err)
	}
	if ce.Kind != want {
		t.Fatalf("expected kind %s, got %s", want, ce.Kind)
	}
}
