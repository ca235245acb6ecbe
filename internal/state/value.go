// Package state implements the symbolic state algebra the planner searches
// over: scalar Values, concrete States, and wildcard-bearing Masks used by
// preconditions and goals.
package state

import "fmt"

// Kind tags the scalar type a Value holds.
type Kind int

const (
	// KindWildcard marks a mask entry as "don't care". It is only ever
	// valid inside a Mask; a State must never hold it.
	KindWildcard Kind = iota
	KindBool
	KindInt
	KindString
)

// Value is a tagged scalar: boolean, integer, short string, or the
// wildcard sentinel. The historical Lua/C++ encoding used the integer -1
// as a magic wildcard; this sum type makes that distinction explicit so a
// real -1 integer in a state is never confused with "don't care".
type Value struct {
	kind Kind
	b    bool
	i    int64
	s    string
}

// Wildcard is the "don't care" Value. It may only appear in a Mask.
var Wildcard = Value{kind: KindWildcard}

// Bool constructs a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int constructs an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// String constructs a string Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Kind returns the tag of this Value.
func (v Value) Kind() Kind { return v.kind }

// IsWildcard reports whether this Value is the wildcard sentinel.
func (v Value) IsWildcard() bool { return v.kind == KindWildcard }

// BoolValue returns the boolean payload; only meaningful when Kind() == KindBool.
func (v Value) BoolValue() bool { return v.b }

// IntValue returns the integer payload; only meaningful when Kind() == KindInt.
func (v Value) IntValue() int64 { return v.i }

// StringValue returns the string payload; only meaningful when Kind() == KindString.
func (v Value) StringValue() string { return v.s }

// Equal compares two Values strictly: same kind and same payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindWildcard:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindString:
		return v.s == other.s
	default:
		return false
	}
}

// Encode renders a Value the way canonical_key does: booleans as "1"/"0",
// integers in decimal, strings verbatim.
func (v Value) Encode() string {
	switch v.kind {
	case KindBool:
		if v.b {
			return "1"
		}
		return "0"
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindString:
		return v.s
	default:
		return ""
	}
}

// String implements fmt.Stringer for debug logging.
func (v Value) String() string {
	switch v.kind {
	case KindWildcard:
		return "*"
	default:
		return v.Encode()
	}
}
