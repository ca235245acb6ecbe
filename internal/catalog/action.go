package catalog

import (
	"math"

	"github.com/tomatolog/goap/internal/state"
)

// Action is a named (precondition, effect, cost) triple. Preconditions and
// goals use Mask (wildcards allowed); effects are always concrete.
type Action struct {
	Name          string
	Precondition  state.Mask
	Effect        state.Effect
	Cost          float64
}

// Applicable reports whether the action's precondition is satisfied by s.
func (a Action) Applicable(s state.State) bool {
	return state.Satisfies(s, a.Precondition)
}

// Apply returns the state resulting from executing the action against s,
// without checking applicability.
func (a Action) Apply(s state.State) state.State {
	return s.Apply(a.Effect)
}

// Clone returns a deep copy of the action so callers cannot observe the
// planner's internal mutation of its own snapshot.
func (a Action) Clone() Action {
	return Action{
		Name:         a.Name,
		Precondition: a.Precondition.Clone(),
		Effect:       a.Effect.Clone(),
		Cost:         a.Cost,
	}
}

func validCost(cost float64) bool {
	return !math.IsNaN(cost) && !math.IsInf(cost, 0) && cost > 0
}
