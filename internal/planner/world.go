package planner

// World aggregates several planner configurations — e.g. one per candidate
// goal, or one per agent in a scene — and runs Calculate on each,
// returning the minimum-cost successful plan. Ties are broken by the
// planner's index in the World, so repeated calls are deterministic.
type World struct {
	planners []*Planner
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{}
}

// Add registers a planner configuration with the world.
func (w *World) Add(p *Planner) {
	w.planners = append(w.planners, p)
}

// Len returns the number of registered planners.
func (w *World) Len() int {
	return len(w.planners)
}

// Result is the outcome of one planner within a World.Calculate call.
type Result struct {
	Index  int
	Plan   Plan
	Status Status
}

// Calculate runs every registered planner with opts and returns the
// minimum-cost Result among those that found a plan. If none found a
// plan, Status is StatusNoPlan regardless of why individual planners
// failed (budget exhaustion is treated the same as infeasibility for
// bucket selection purposes).
func (w *World) Calculate(opts Options) (Result, error) {
	var best *Result

	for i, p := range w.planners {
		plan, status, err := p.Calculate(opts)
		if err != nil {
			return Result{}, err
		}
		if status != StatusFound {
			continue
		}
		cost := plan.Cost()
		if best == nil || cost < best.Plan.Cost() {
			r := Result{Index: i, Plan: plan, Status: status}
			best = &r
		}
	}

	if best == nil {
		return Result{Status: StatusNoPlan}, nil
	}
	return *best, nil
}
