// Package rpg builds the Relaxed Planning Graph used by the rpg_add
// heuristic: a monotone, layered reachability graph over the start state
// and an action catalog, built by ignoring effect "deletions" per spec §4.5.
package rpg

import (
	"math"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tomatolog/goap/internal/catalog"
	"github.com/tomatolog/goap/internal/state"
)

// MaxLayers is the hard cap guarding against runaway construction; it is a
// guardrail, not a correctness requirement — the real terminating
// conditions are an empty applicable set or two structurally identical
// successive fact layers.
const MaxLayers = 50

// factEntry records the layer at which a (key, value) pair first appeared.
type factEntry struct {
	key   string
	value state.Value
	level int
}

// Graph is a built Relaxed Planning Graph, queryable via FirstLevel.
type Graph struct {
	layers []state.State // fact layer k, k = 0..n
	first  []factEntry   // first-appearance records, in discovery order
}

// Build constructs the graph from startState and actions, repeating layer
// construction until the applicable action set is empty, a fact layer
// repeats its predecessor (by canonical key), or MaxLayers is reached.
func Build(start state.State, actions []catalog.Action) *Graph {
	g := &Graph{
		layers: []state.State{start.Clone()},
	}
	g.recordNewFacts(state.New(), start, 0)

	sorted := make([]catalog.Action, len(actions))
	copy(sorted, actions)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	for level := 1; level <= MaxLayers; level++ {
		prev := g.layers[level-1]

		applicable := make([]catalog.Action, 0)
		for _, a := range sorted {
			if a.Applicable(prev) {
				applicable = append(applicable, a)
			}
		}
		if len(applicable) == 0 {
			log.Debug("rpg: no applicable actions, stopping", "level", level)
			break
		}

		next := prev.Clone()
		for _, a := range applicable {
			next = next.Apply(a.Effect)
		}

		if next.CanonicalKey() == prev.CanonicalKey() {
			log.Debug("rpg: fixed point reached", "level", level)
			break
		}

		g.recordNewFacts(prev, next, level)
		g.layers = append(g.layers, next)
	}

	if len(g.layers) >= MaxLayers+1 {
		log.Warn("rpg: hit hard layer cap", "cap", MaxLayers)
	}

	return g
}

// recordNewFacts appends a factEntry for every (key, value) in next that
// was absent, or held a different value, in prev.
func (g *Graph) recordNewFacts(prev, next state.State, level int) {
	for k, v := range next {
		if pv, ok := prev[k]; ok && pv.Equal(v) {
			continue
		}
		g.first = append(g.first, factEntry{key: k, value: v, level: level})
	}
}

// FirstLevel returns the smallest layer index where layer[key] == value, or
// +Inf if that (key, value) pair never appears.
func (g *Graph) FirstLevel(key string, value state.Value) float64 {
	best := math.Inf(1)
	for _, f := range g.first {
		if f.key == key && f.value.Equal(value) && float64(f.level) < best {
			best = float64(f.level)
		}
	}
	return best
}

// Layers returns the number of fact layers built, including layer 0.
func (g *Graph) Layers() int {
	return len(g.layers)
}
