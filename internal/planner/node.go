package planner

import "container/heap"

// node is a single search node in the planner's arena. Parent pointers are
// integer ids into the arena slice, not live pointers, so the search graph
// can never form a reference cycle and lifetime is trivial: the arena is
// the sole owner, released when Calculate returns.
type node struct {
	id         int
	key        string
	g          float64
	h          float64
	parentID   int // -1 for the start node
	actionName string
	heapIndex  int
}

func (n *node) f() float64 { return n.g + n.h }

// openSet is a binary min-heap over nodes ordered by (f, g, actionName)
// ascending, paired with a canonical-key index for O(1) membership checks
// and in-place decrease-key updates.
type openSet struct {
	items []*node
	byKey map[string]*node
}

func newOpenSet() *openSet {
	return &openSet{byKey: make(map[string]*node)}
}

func (o *openSet) Len() int { return len(o.items) }

func (o *openSet) Less(i, j int) bool {
	a, b := o.items[i], o.items[j]
	af, bf := a.f(), b.f()
	if af != bf {
		return af < bf
	}
	if a.g != b.g {
		return a.g < b.g
	}
	return a.actionName < b.actionName
}

func (o *openSet) Swap(i, j int) {
	o.items[i], o.items[j] = o.items[j], o.items[i]
	o.items[i].heapIndex = i
	o.items[j].heapIndex = j
}

func (o *openSet) Push(x interface{}) {
	n := x.(*node)
	n.heapIndex = len(o.items)
	o.items = append(o.items, n)
	o.byKey[n.key] = n
}

func (o *openSet) Pop() interface{} {
	old := o.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.heapIndex = -1
	o.items = old[:n-1]
	delete(o.byKey, item.key)
	return item
}

// get returns the open node for the given canonical key, if present.
func (o *openSet) get(key string) (*node, bool) {
	n, ok := o.byKey[key]
	return n, ok
}

// decreaseKey re-heapifies after a node's f/g has been lowered in place.
func (o *openSet) decreaseKey(n *node) {
	heap.Fix(o, n.heapIndex)
}
