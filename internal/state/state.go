package state

import (
	"sort"
	"strings"
)

// State is a finite, fully concrete key->Value mapping. No entry may hold
// the wildcard sentinel; that is reserved for Mask.
type State map[string]Value

// New creates an empty State.
func New() State {
	return make(State)
}

// Clone returns a shallow copy; Values are immutable so this is a full
// logical copy.
func (s State) Clone() State {
	clone := make(State, len(s))
	for k, v := range s {
		clone[k] = v
	}
	return clone
}

// Set assigns a concrete value to a key.
func (s State) Set(key string, v Value) {
	s[key] = v
}

// Get returns the value at key and whether it was present.
func (s State) Get(key string) (Value, bool) {
	v, ok := s[key]
	return v, ok
}

// Equal reports whether two states have identical key sets and values.
func (s State) Equal(other State) bool {
	if len(s) != len(other) {
		return false
	}
	for k, v := range s {
		ov, ok := other[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// CanonicalKey produces the deterministic byte-stable serialization used
// for hashing and equality: keys sorted ascending, each entry rendered as
// "key=value" with the Value encoding of §4.1, entries joined by ";". It is
// total. Over states sharing the same key set it is injective only while
// each key holds values of a single kind and no string value contains ";":
// Bool(true) and Int(1) both encode as "1", and strings are not escaped.
func (s State) CanonicalKey() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(s[k].Encode())
	}
	return b.String()
}

// Apply returns a new State identical to s with every (k, v) in effect
// overwritten. Keys absent from effect are left unchanged.
func (s State) Apply(effect Effect) State {
	out := s.Clone()
	for k, v := range effect {
		out[k] = v
	}
	return out
}

// Diff returns, sorted ascending, every key whose value differs between s
// and other, including keys present in only one of the two states. Used by
// the debug console to show what an action step actually changed.
func (s State) Diff(other State) []string {
	seen := make(map[string]struct{}, len(s)+len(other))
	var changed []string

	for k, v := range s {
		if ov, ok := other[k]; !ok || !v.Equal(ov) {
			changed = append(changed, k)
		}
		seen[k] = struct{}{}
	}
	for k := range other {
		if _, ok := seen[k]; ok {
			continue
		}
		changed = append(changed, k)
	}

	sort.Strings(changed)
	return changed
}
