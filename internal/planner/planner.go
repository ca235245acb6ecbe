// Package planner implements the A* forward search over symbolic states
// described in spec §4.4: an open set ordered by (f, g, action name), a
// closed set keyed by canonical state, a node arena, deterministic
// tie-breaking, no-op successor suppression, and optional expansion/time
// budgets.
package planner

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomatolog/goap/internal/catalog"
	"github.com/tomatolog/goap/internal/heuristic"
	"github.com/tomatolog/goap/internal/state"
)

// Status reports how a Calculate call ended.
type Status int

const (
	// StatusFound means a plan was returned (possibly empty, if the goal
	// was already satisfied by the start state).
	StatusFound Status = iota
	// StatusNoPlan means the open set was exhausted without satisfying
	// the goal: the problem is infeasible from this start state.
	StatusNoPlan
	// StatusBudgetExhausted means max_expansions or time_budget_ms was
	// reached before a solution (or infeasibility) was determined.
	StatusBudgetExhausted
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNoPlan:
		return "no_plan"
	case StatusBudgetExhausted:
		return "budget_exhausted"
	default:
		return "unknown"
	}
}

// Step is one emitted plan entry: the action taken, the cumulative cost at
// that point, and the resulting state.
type Step struct {
	ActionName string
	G          float64
	State      state.State
}

// Plan is an ordered sequence of steps transforming the start state into
// one that satisfies the goal. An empty Plan is returned both when the
// goal is already satisfied and when no plan exists; callers distinguish
// via Status.
type Plan struct {
	Steps []Step
}

// Cost returns the total plan cost: the final step's cumulative g, or 0 for
// an empty plan.
func (p Plan) Cost() float64 {
	if len(p.Steps) == 0 {
		return 0
	}
	return p.Steps[len(p.Steps)-1].G
}

// Options bounds a single Calculate call. Zero value means unbounded.
type Options struct {
	MaxExpansions int
	TimeBudget    time.Duration
}

// Stats reports search diagnostics from the most recently completed
// Calculate call, for tools (the debug console, telemetry) that want more
// than the plan itself.
type Stats struct {
	Expansions int
	OpenLen    int
	ClosedLen  int
}

// Planner holds the configuration for one search: the universe of
// declared state keys, a start state, a goal mask, an action catalog, and
// a heuristic selection.
type Planner struct {
	universe      map[string]struct{}
	start         state.State
	haveStart     bool
	goal          state.Mask
	haveGoal      bool
	catalog       *catalog.Catalog
	heuristicName heuristic.Name
	lastStats     Stats
}

// Stats returns diagnostics from the most recently completed Calculate
// call. It is the zero Stats before Calculate has run.
func (p *Planner) Stats() Stats {
	return p.lastStats
}

// New creates a Planner whose universe is the given set of state keys.
func New(keys []string) *Planner {
	u := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		u[k] = struct{}{}
	}
	return &Planner{universe: u, heuristicName: heuristic.Zero}
}

// SetStartState validates every key in s against the universe and records
// it as the search's initial state.
func (p *Planner) SetStartState(s state.State) error {
	for k := range s {
		if _, ok := p.universe[k]; !ok {
			return catalog.UnknownKeyError(k)
		}
	}
	p.start = s.Clone()
	p.haveStart = true
	return nil
}

// SetGoalState validates every key in g against the universe and records
// it as the search goal. Universe keys absent from g are filled with the
// wildcard value internally, so the stored goal mask is always complete
// over the universe.
func (p *Planner) SetGoalState(g state.Mask) error {
	for k := range g {
		if _, ok := p.universe[k]; !ok {
			return catalog.UnknownKeyError(k)
		}
	}
	goal := g.Clone()
	for k := range p.universe {
		if _, ok := goal[k]; !ok {
			goal[k] = state.Wildcard
		}
	}
	p.goal = goal
	p.haveGoal = true
	return nil
}

// SetActionList assigns the action catalog to search over. The catalog is
// not copied here; Calculate deep-copies its validated snapshot on entry so
// the caller's table is never mutated by planning.
func (p *Planner) SetActionList(c *catalog.Catalog) {
	p.catalog = c
}

// SetHeuristic selects the named heuristic provider for the next
// Calculate call.
func (p *Planner) SetHeuristic(name heuristic.Name) {
	p.heuristicName = name
}

// Calculate runs A* search and returns the resulting plan and status.
// Validation failures (malformed catalog, unset start/goal) are returned
// as errors; NoPlan and BudgetExhausted are reported via Status with an
// empty Plan, never as errors.
func (p *Planner) Calculate(opts Options) (Plan, Status, error) {
	if !p.haveStart {
		return Plan{}, StatusNoPlan, fmt.Errorf("planner: start state not set")
	}
	if !p.haveGoal {
		return Plan{}, StatusNoPlan, fmt.Errorf("planner: goal state not set")
	}
	if p.catalog == nil {
		return Plan{}, StatusNoPlan, fmt.Errorf("planner: action list not set")
	}

	actions, err := p.catalog.Validate()
	if err != nil {
		return Plan{}, StatusNoPlan, err
	}

	log.Info("starting plan search", "start", p.start.CanonicalKey(), "actions", len(actions))

	if state.Satisfies(p.start, p.goal) {
		log.Info("goal already satisfied, no actions needed")
		p.lastStats = Stats{}
		return Plan{}, StatusFound, nil
	}

	hctx := heuristic.BuildContext(p.heuristicName, p.start, p.goal, actions)
	h := heuristic.New(p.heuristicName, hctx)

	var deadline time.Time
	if opts.TimeBudget > 0 {
		deadline = time.Now().Add(opts.TimeBudget)
	}

	arena := make([]*node, 0, 64)
	startKey := p.start.CanonicalKey()
	start := &node{id: 0, key: startKey, g: 0, h: h.Estimate(p.start), parentID: -1, actionName: "start"}
	arena = append(arena, start)
	statesByID := map[int]state.State{0: p.start.Clone()}

	open := newOpenSet()
	heap.Init(open)
	heap.Push(open, start)

	closed := make(map[string]*node)

	expansions := 0
	for open.Len() > 0 {
		if opts.MaxExpansions > 0 && expansions >= opts.MaxExpansions {
			log.Warn("plan search exhausted expansion budget", "maxExpansions", opts.MaxExpansions)
			p.lastStats = Stats{Expansions: expansions, OpenLen: open.Len(), ClosedLen: len(closed)}
			return Plan{}, StatusBudgetExhausted, nil
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			log.Warn("plan search exhausted time budget", "timeBudget", opts.TimeBudget)
			p.lastStats = Stats{Expansions: expansions, OpenLen: open.Len(), ClosedLen: len(closed)}
			return Plan{}, StatusBudgetExhausted, nil
		}

		current := heap.Pop(open).(*node)
		expansions++
		currentState := statesByID[current.id]

		if state.Satisfies(currentState, p.goal) {
			log.Info("plan found", "expansions", expansions, "cost", current.g)
			p.lastStats = Stats{Expansions: expansions, OpenLen: open.Len(), ClosedLen: len(closed) + 1}
			return reconstruct(arena, statesByID, current), StatusFound, nil
		}

		closed[current.key] = current

		for _, a := range actions {
			if !a.Applicable(currentState) {
				continue
			}
			succ := a.Apply(currentState)
			if succ.Equal(currentState) {
				continue // no-op suppression
			}

			succKey := succ.CanonicalKey()
			tentativeG := current.g + a.Cost

			if cn, ok := closed[succKey]; ok {
				if cn.g <= tentativeG {
					continue
				}
				delete(closed, succKey) // reopen: strictly cheaper path found
			}

			if on, ok := open.get(succKey); ok {
				if on.g <= tentativeG {
					continue
				}
				on.g = tentativeG
				on.parentID = current.id
				on.actionName = a.Name
				open.decreaseKey(on)
				continue
			}

			id := len(arena)
			n := &node{
				id:         id,
				key:        succKey,
				g:          tentativeG,
				h:          h.Estimate(succ),
				parentID:   current.id,
				actionName: a.Name,
			}
			arena = append(arena, n)
			statesByID[id] = succ
			heap.Push(open, n)
		}
	}

	log.Info("no plan found", "expansions", expansions)
	p.lastStats = Stats{Expansions: expansions, OpenLen: open.Len(), ClosedLen: len(closed)}
	return Plan{}, StatusNoPlan, nil
}

// reconstruct walks parent pointers from goalNode back to the start node
// and returns the emitted steps in forward order.
func reconstruct(arena []*node, statesByID map[int]state.State, goalNode *node) Plan {
	var steps []Step
	for n := goalNode; n.parentID != -1; n = arena[n.parentID] {
		steps = append(steps, Step{
			ActionName: n.actionName,
			G:          n.g,
			State:      statesByID[n.id].Clone(),
		})
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return Plan{Steps: steps}
}
