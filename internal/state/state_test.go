package state

import "testing"

func TestCanonicalKey(t *testing.T) {
	t.Run("order independent", func(t *testing.T) {
		a := State{"b": Int(2), "a": Bool(true)}
		b := State{"a": Bool(true), "b": Int(2)}

		if a.CanonicalKey() != b.CanonicalKey() {
			t.Errorf("expected equal canonical keys, got %q and %q", a.CanonicalKey(), b.CanonicalKey())
		}
	})

	t.Run("differs on value", func(t *testing.T) {
		a := State{"hungry": Bool(true)}
		b := State{"hungry": Bool(false)}

		if a.CanonicalKey() == b.CanonicalKey() {
			t.Error("expected different canonical keys")
		}
	})

	t.Run("encoding", func(t *testing.T) {
		s := State{"atBuilding": Bool(true), "windowsRemaining": Int(3), "name": String("hall")}
		got := s.CanonicalKey()
		want := "atBuilding=1;name=hall;windowsRemaining=3"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})
}

func TestApply(t *testing.T) {
	s := State{"hungry": Bool(true), "has_food": Bool(false)}
	effect := Effect{"has_food": Bool(true)}

	out := s.Apply(effect)

	if got, _ := out.Get("has_food"); !got.BoolValue() {
		t.Error("expected has_food true after apply")
	}
	if got, _ := s.Get("has_food"); got.BoolValue() {
		t.Error("Apply must not mutate the receiver")
	}
	if got, _ := out.Get("hungry"); !got.BoolValue() {
		t.Error("unmentioned keys must be unchanged")
	}
}

func TestSatisfies(t *testing.T) {
	s := State{"a": Bool(true), "b": Int(1)}

	if !Satisfies(s, Mask{"a": Bool(true)}) {
		t.Error("expected satisfaction on matching concrete entry")
	}
	if !Satisfies(s, Mask{"a": Wildcard}) {
		t.Error("wildcard must always satisfy")
	}
	if Satisfies(s, Mask{"c": Bool(true)}) {
		t.Error("missing key must not satisfy")
	}
	if Satisfies(s, Mask{"b": Int(2)}) {
		t.Error("mismatched value must not satisfy")
	}
}

func TestMismatch(t *testing.T) {
	s := State{"a": Int(1), "b": Int(2)}
	goal := Mask{"a": Int(1), "b": Int(3), "c": Int(4), "d": Wildcard}

	if got := Mismatch(s, goal); got != 2 {
		t.Errorf("expected mismatch 2, got %d", got)
	}
}

func TestDiff(t *testing.T) {
	a := State{"hungry": Bool(true), "has_food": Bool(false), "only_a": Int(1)}
	b := State{"hungry": Bool(false), "has_food": Bool(false), "only_b": Int(2)}

	got := a.Diff(b)
	want := []string{"hungry", "only_a", "only_b"}

	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}

func TestStateEqual(t *testing.T) {
	a := State{"a": Bool(true)}
	b := State{"a": Bool(true)}
	c := State{"a": Bool(false)}

	if !a.Equal(b) {
		t.Error("expected equal states")
	}
	if a.Equal(c) {
		t.Error("expected unequal states")
	}
}
