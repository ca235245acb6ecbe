package state

// Mask is a key->Value mapping where Wildcard means "don't care". Masks
// describe preconditions, goals, and heuristic inputs; they are never
// applied directly to a state.
type Mask map[string]Value

// NewMask creates an empty Mask.
func NewMask() Mask {
	return make(Mask)
}

// Clone returns a shallow copy of the mask.
func (m Mask) Clone() Mask {
	clone := make(Mask, len(m))
	for k, v := range m {
		clone[k] = v
	}
	return clone
}

// Set assigns a value (possibly Wildcard) at key.
func (m Mask) Set(key string, v Value) {
	m[key] = v
}

// Merge overlays other onto m, last-write-wins per key, and returns m.
func (m Mask) Merge(other Mask) Mask {
	for k, v := range other {
		m[k] = v
	}
	return m
}

// Effect is a concrete key->Value mapping with no wildcard entries; applying
// it to a State overwrites every mentioned key.
type Effect map[string]Value

// NewEffect creates an empty Effect.
func NewEffect() Effect {
	return make(Effect)
}

// Clone returns a shallow copy of the effect.
func (e Effect) Clone() Effect {
	clone := make(Effect, len(e))
	for k, v := range e {
		clone[k] = v
	}
	return clone
}

// Merge overlays other onto e, last-write-wins per key, and returns e.
func (e Effect) Merge(other Effect) Effect {
	for k, v := range other {
		e[k] = v
	}
	return e
}

// Satisfies reports whether state satisfies mask: for every (k, v) in mask
// with v not wildcard, state[k] must exist and equal v. Wildcard entries are
// always satisfied; keys in state but absent from mask are ignored.
func Satisfies(s State, mask Mask) bool {
	for k, want := range mask {
		if want.IsWildcard() {
			continue
		}
		got, ok := s[k]
		if !ok || !got.Equal(want) {
			return false
		}
	}
	return true
}

// Mismatch counts keys in mask (ignoring wildcard entries) whose value
// differs from state, including keys missing from state entirely. Keys
// present in state but absent from mask are ignored.
func Mismatch(s State, mask Mask) int {
	count := 0
	for k, want := range mask {
		if want.IsWildcard() {
			continue
		}
		got, ok := s[k]
		if !ok || !got.Equal(want) {
			count++
		}
	}
	return count
}
